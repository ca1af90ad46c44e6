// Package regform implements the user registration form: five validated
// inputs, a phone mask, a guarded submit and a transient success banner.
package regform

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/signup/internal/i18n"
	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/banner"
	"github.com/zjrosen/signup/internal/ui/markdown"
)

// DefaultWidth is used until the shell reports a window size.
const DefaultWidth = 60

// Phase is the submit state of the form.
type Phase int

const (
	// PhaseIdle accepts edits and submit requests.
	PhaseIdle Phase = iota
	// PhaseSubmitting has one registration call in flight.
	PhaseSubmitting
)

func (p Phase) String() string {
	if p == PhaseSubmitting {
		return "submitting"
	}
	return "idle"
}

// SubmitResultMsg carries the outcome of one registration attempt.
type SubmitResultMsg struct {
	AttemptID string
	Err       error
}

// Config configures a registration form.
type Config struct {
	Catalog   i18n.Catalog
	Registrar registration.Registrar
	// BannerDuration is how long the success banner stays up.
	BannerDuration time.Duration
	// Context bounds registration calls; nil means context.Background().
	Context context.Context
	Keys    keys.FormKeyMap
	Width   int
	// NewAttemptID defaults to uuid.NewString.
	NewAttemptID func() string
}

// Model is the registration form state.
type Model struct {
	cfg       Config
	validator *registration.Validator

	inputs []textinput.Model
	focus  int // index into inputs; len(inputs) is the submit button

	touched   touchedSet
	attempted bool // a submit was tried; every error is shown
	errs      registration.Errors

	phase   Phase
	attempt string

	banner       banner.Model
	width        int
	requirements string
}

// New creates a form with focus on the first field.
func New(cfg Config) Model {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.NewAttemptID == nil {
		cfg.NewAttemptID = uuid.NewString
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}

	m := Model{
		cfg:       cfg,
		validator: registration.NewValidator(cfg.Catalog.Validation),
		inputs:    newInputs(cfg.Catalog, cfg.Width),
		touched:   touchedSet{},
		banner:    banner.New(),
	}
	m = m.SetWidth(cfg.Width)
	m.errs = m.validator.Validate(m.Input())
	m.inputs[0].Focus()
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SubmitResultMsg:
		return m.handleResult(msg)

	case banner.DismissMsg:
		m.banner = m.banner.Update(msg)
		return m, nil

	case tea.KeyMsg:
		if m.phase == PhaseSubmitting {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.phase == PhaseSubmitting {
			return m, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
			return m.handleClick(msg)
		}
		return m, nil
	}

	// Cursor blink and other input-internal messages
	if m.onInput() {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.cfg.Keys.Submit):
		return m.submit()
	case key.Matches(msg, m.cfg.Keys.Next):
		return m.focusAt((m.focus + 1) % (len(m.inputs) + 1))
	case key.Matches(msg, m.cfg.Keys.Prev):
		return m.focusAt((m.focus + len(m.inputs)) % (len(m.inputs) + 1))
	case key.Matches(msg, m.cfg.Keys.Enter):
		if m.onInput() {
			return m.focusAt(m.focus + 1)
		}
		return m.submit()
	}

	if !m.onInput() {
		return m, nil
	}
	return m.edit(msg)
}

// edit forwards a key to the focused input and revalidates on change.
func (m Model) edit(msg tea.KeyMsg) (Model, tea.Cmd) {
	field := registration.Fields[m.focus]
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	value := m.inputs[m.focus].Value()
	if field == registration.FieldPhone {
		if masked := registration.MaskPhone(value); masked != value {
			m.inputs[m.focus].SetValue(masked)
			m.inputs[m.focus].CursorEnd()
			value = masked
		}
	}
	if value == before {
		return m, cmd
	}

	m.touched = m.touched.with(field)
	m.errs = m.validator.Validate(m.Input())
	log.Debug(log.CatForm, "Field edited", "field", field, "valid", m.errs.Get(field) == "")
	return m, cmd
}

func (m Model) handleClick(msg tea.MouseMsg) (Model, tea.Cmd) {
	if z := zone.Get(submitZoneID); z != nil && z.InBounds(msg) {
		m, _ = m.focusAt(len(m.inputs))
		return m.submit()
	}
	for i, f := range registration.Fields {
		if z := zone.Get(fieldZoneID(f)); z != nil && z.InBounds(msg) {
			return m.focusAt(i)
		}
	}
	return m, nil
}

// focusAt moves focus to index i (len(inputs) is the submit button).
func (m Model) focusAt(i int) (Model, tea.Cmd) {
	if m.onInput() {
		m.inputs[m.focus].Blur()
	}
	m.focus = i
	if m.onInput() {
		return m, m.inputs[m.focus].Focus()
	}
	return m, nil
}

func (m Model) onInput() bool {
	return m.focus >= 0 && m.focus < len(m.inputs)
}

// submit validates and, from Idle with a valid input, starts one
// registration call.
func (m Model) submit() (Model, tea.Cmd) {
	if m.phase != PhaseIdle {
		log.Debug(log.CatSubmit, "Submit ignored while a registration is in flight", "attempt", m.attempt)
		return m, nil
	}

	in := m.Input()
	m.attempted = true
	m.errs = m.validator.Validate(in)
	if !m.errs.Valid() {
		log.Debug(log.CatSubmit, "Submit blocked by validation", "invalid_fields", len(m.errs))
		return m, nil
	}

	id := m.cfg.NewAttemptID()
	m.phase = PhaseSubmitting
	m.attempt = id
	if m.onInput() {
		m.inputs[m.focus].Blur()
	}
	log.Info(log.CatSubmit, "Submitting registration", "attempt", id)

	ctx := registration.WithAttemptID(m.cfg.Context, id)
	registrar := m.cfg.Registrar
	return m, func() tea.Msg {
		return SubmitResultMsg{AttemptID: id, Err: registrar.Register(ctx, in)}
	}
}

func (m Model) handleResult(msg SubmitResultMsg) (Model, tea.Cmd) {
	if m.phase != PhaseSubmitting || msg.AttemptID != m.attempt {
		log.Warn(log.CatSubmit, "Dropping stale registration result", "attempt", msg.AttemptID)
		return m, nil
	}
	m.phase = PhaseIdle
	m.attempt = ""

	if msg.Err != nil {
		if errors.Is(msg.Err, context.Canceled) {
			log.Warn(log.CatSubmit, "Registration cancelled", "attempt", msg.AttemptID)
		} else {
			log.ErrorErr(log.CatSubmit, "Registration failed", msg.Err, "attempt", msg.AttemptID)
		}
		var cmd tea.Cmd
		if m.onInput() {
			cmd = m.inputs[m.focus].Focus()
		}
		return m, cmd
	}

	log.Info(log.CatSubmit, "Registration succeeded", "attempt", msg.AttemptID)
	m = m.reset()
	var bannerCmd tea.Cmd
	m.banner, bannerCmd = m.banner.Show(m.cfg.Catalog.SuccessTitle, m.cfg.Catalog.SuccessDetail, m.cfg.BannerDuration)
	m, focusCmd := m.focusAt(0)
	return m, tea.Batch(focusCmd, bannerCmd)
}

// reset clears every input and the touched state.
func (m Model) reset() Model {
	inputs := make([]textinput.Model, len(m.inputs))
	copy(inputs, m.inputs)
	for i := range inputs {
		inputs[i].Reset()
	}
	m.inputs = inputs
	m.touched = touchedSet{}
	m.attempted = false
	m.errs = m.validator.Validate(m.Input())
	return m
}

// SetWidth resizes the form.
func (m Model) SetWidth(w int) Model {
	if w <= 0 {
		return m
	}
	m.width = w
	inputs := make([]textinput.Model, len(m.inputs))
	copy(inputs, m.inputs)
	for i := range inputs {
		inputs[i].Width = inputWidth(w)
	}
	m.inputs = inputs
	m.banner = m.banner.SetWidth(w)
	m.requirements = markdown.RenderOrRaw(m.cfg.Catalog.Requirements, w)
	return m
}

// Input snapshots the current field values.
func (m Model) Input() registration.Input {
	var in registration.Input
	for i, f := range registration.Fields {
		in = in.With(f, m.inputs[i].Value())
	}
	return in
}

// Phase returns the submit state.
func (m Model) Phase() Phase {
	return m.phase
}

// Focused returns the focused field, or "" when the submit button has focus.
func (m Model) Focused() registration.Field {
	if !m.onInput() {
		return ""
	}
	return registration.Fields[m.focus]
}

// Errors returns the current validation result for every field.
func (m Model) Errors() registration.Errors {
	return m.errs
}

// VisibleError returns the message displayed under f, if any.
func (m Model) VisibleError(f registration.Field) string {
	if !m.attempted && !m.touched[f] {
		return ""
	}
	return m.errs.Get(f)
}

// PasswordOK reports whether the password hint line is shown.
func (m Model) PasswordOK() bool {
	return m.Input().Password != "" && m.errs.Get(registration.FieldPassword) == ""
}

// BannerVisible reports whether the success banner is showing.
func (m Model) BannerVisible() bool {
	return m.banner.Visible()
}
