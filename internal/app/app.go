// Package app contains the root application model.
package app

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/signup/internal/i18n"
	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/pubsub"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/logoverlay"
	"github.com/zjrosen/signup/internal/ui/regform"
	"github.com/zjrosen/signup/internal/ui/styles"
)

const (
	maxFormWidth = 72
	minFormWidth = 24
)

// Config holds what the shell needs to build the page.
type Config struct {
	Catalog        i18n.Catalog
	Registrar      registration.Registrar
	BannerDuration time.Duration
	// Debug enables the log overlay (Ctrl+X toggle).
	Debug bool
}

// Model is the root application state.
type Model struct {
	catalog i18n.Catalog
	keys    keys.FormKeyMap
	form    regform.Model

	width  int
	height int

	// ctx bounds in-flight registrations; quitting cancels it.
	ctx    context.Context
	cancel context.CancelFunc

	debugMode   bool
	logOverlay  logoverlay.Model
	logListener *pubsub.ContinuousListener[string]
}

// New creates the application model.
func New(cfg Config) Model {
	ctx, cancel := context.WithCancel(context.Background())
	km := keys.DefaultFormKeyMap().WithDebug(cfg.Debug)

	var listener *pubsub.ContinuousListener[string]
	if cfg.Debug {
		// nil when logging was not initialized
		listener = log.NewListener(ctx)
	}

	return Model{
		catalog: cfg.Catalog,
		keys:    km,
		form: regform.New(regform.Config{
			Catalog:        cfg.Catalog,
			Registrar:      cfg.Registrar,
			BannerDuration: cfg.BannerDuration,
			Context:        ctx,
			Keys:           km,
		}),
		ctx:         ctx,
		cancel:      cancel,
		debugMode:   cfg.Debug,
		logOverlay:  logoverlay.New(),
		logListener: listener,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.form.Init()}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form = m.form.SetWidth(formWidth(msg.Width))
		m.logOverlay = m.logOverlay.SetSize(msg.Width, msg.Height)
		return m, nil

	case log.LogEvent:
		m.logOverlay = m.logOverlay.Refresh()
		if m.logListener == nil {
			return m, nil
		}
		return m, m.logListener.Listen()

	case logoverlay.CloseMsg:
		return m, nil

	case tea.MouseMsg:
		if m.logOverlay.Visible() {
			return m, nil
		}

	case tea.KeyMsg:
		// The overlay takes precedence so Esc closes it instead of quitting
		if m.logOverlay.Visible() {
			var cmd tea.Cmd
			m.logOverlay, cmd = m.logOverlay.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.LogOverlay):
			m.logOverlay = m.logOverlay.Toggle()
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.form.Phase() == regform.PhaseSubmitting {
		log.Info(log.CatUI, "Quitting with a registration in flight, cancelling")
	} else {
		log.Info(log.CatUI, "Quitting")
	}
	m.cancel()
	return m, tea.Quit
}

// View implements tea.Model.
func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = regform.DefaultWidth
	}

	header := lipgloss.JoinVertical(lipgloss.Center,
		styles.TitleStyle.Render(m.catalog.Title),
		styles.SubtitleStyle.Render(m.catalog.Subtitle),
	)
	footer := lipgloss.JoinVertical(lipgloss.Center,
		styles.FooterStyle.Render(keys.HintLine(m.keys.ShortHelp())),
		styles.FooterStyle.Render(m.catalog.Footer),
	)

	page := strings.Join([]string{header, m.form.View(), footer}, "\n\n")
	view := lipgloss.PlaceHorizontal(width, lipgloss.Center, page)

	if m.debugMode && m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}

	return zone.Scan(view)
}

// Close releases resources held by the application.
func (m Model) Close() {
	m.cancel()
}

// formWidth sizes the form for a terminal width.
func formWidth(termWidth int) int {
	return min(max(termWidth-4, minFormWidth), maxFormWidth)
}
