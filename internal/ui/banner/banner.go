// Package banner provides the transient success notice shown above the form.
package banner

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/signup/internal/ui/styles"
)

// DismissMsg asks the banner to hide. It only takes effect when Gen is the
// generation that scheduled it.
type DismissMsg struct {
	Gen uint64
}

// Model holds the banner state. Every Show starts a new generation.
type Model struct {
	title   string
	detail  string
	visible bool
	gen     uint64
	width   int
}

// New creates a hidden banner.
func New() Model {
	return Model{}
}

// Show displays the banner and returns the command that dismisses it after d.
// A non-positive d keeps the banner up until the next Show or Hide.
func (m Model) Show(title, detail string, d time.Duration) (Model, tea.Cmd) {
	m.gen++
	m.title = title
	m.detail = detail
	m.visible = true

	if d <= 0 {
		return m, nil
	}
	gen := m.gen
	return m, tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{Gen: gen}
	})
}

// Hide dismisses the banner immediately. Pending dismissals become stale.
func (m Model) Hide() Model {
	m.gen++
	m.visible = false
	m.title = ""
	m.detail = ""
	return m
}

// Update handles dismissal messages.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.Gen == m.gen && m.visible {
		m.visible = false
		m.title = ""
		m.detail = ""
	}
	return m
}

// Visible reports whether the banner is showing.
func (m Model) Visible() bool {
	return m.visible
}

// Generation returns the current generation.
func (m Model) Generation() uint64 {
	return m.gen
}

// SetWidth sets the rendered width including the border. Zero means fit content.
func (m Model) SetWidth(w int) Model {
	m.width = w
	return m
}

// View renders the banner box, or "" when hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BannerBorderSuccessColor).
		Padding(0, 1)
	if m.width > 2 {
		box = box.Width(m.width - 2)
	}

	content := lipgloss.NewStyle().Bold(true).Foreground(styles.StatusSuccessColor).Render("✅ " + m.title)
	if m.detail != "" {
		content += "\n" + styles.HintStyle.Render(m.detail)
	}
	return box.Render(content)
}
