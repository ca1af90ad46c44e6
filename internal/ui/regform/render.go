package regform

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/styles"
)

const submitZoneID = "regform-submit"

func fieldZoneID(f registration.Field) string {
	return "regform-field-" + string(f)
}

// View renders the banner, the form and the requirements checklist.
// Zones are marked but not scanned; the caller scans the full screen.
func (m Model) View() string {
	var b strings.Builder

	if m.banner.Visible() {
		b.WriteString(m.banner.View())
		b.WriteString("\n\n")
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor).Render(m.cfg.Catalog.FormTitle)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	for i, f := range registration.Fields {
		b.WriteString(m.renderField(i, f))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderButton())
	b.WriteString("\n\n")
	b.WriteString(m.requirements)

	return b.String()
}

func (m Model) renderField(i int, f registration.Field) string {
	errMsg := m.VisibleError(f)
	focused := m.focus == i

	section := styles.RenderFormSection(
		[]string{m.inputs[i].View()},
		m.cfg.Catalog.Fields[f].Label,
		m.cfg.Catalog.Required,
		m.width,
		styles.SectionBorderColor(focused, errMsg != ""),
	)
	section = zone.Mark(fieldZoneID(f), section)

	switch {
	case errMsg != "":
		wrapped := wordwrap.String(errMsg, max(m.width-2, 1))
		for _, line := range strings.Split(wrapped, "\n") {
			section += "\n " + styles.FieldErrorStyle.Render(line)
		}
	case f == registration.FieldPassword && m.PasswordOK():
		section += "\n " + styles.FieldOKStyle.Render(m.cfg.Catalog.PasswordOK)
	}
	return section
}

func (m Model) renderButton() string {
	label := m.cfg.Catalog.SubmitLabel
	style := styles.PrimaryButtonStyle
	switch {
	case m.phase == PhaseSubmitting:
		label = m.cfg.Catalog.BusyLabel
		style = styles.DisabledButtonStyle
	case !m.onInput():
		style = styles.PrimaryButtonFocusedStyle
	}

	button := style.Width(m.width).Align(lipgloss.Center).Render(label)
	return zone.Mark(submitZoneID, button)
}
