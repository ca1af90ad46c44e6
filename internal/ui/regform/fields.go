package regform

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/signup/internal/i18n"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/styles"
)

// newInputs builds one text input per registration field, in display order.
func newInputs(cat i18n.Catalog, width int) []textinput.Model {
	inputs := make([]textinput.Model, len(registration.Fields))
	for i, f := range registration.Fields {
		ti := textinput.New()
		ti.Prompt = " "
		ti.Placeholder = cat.Fields[f].Placeholder
		ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)
		ti.Width = inputWidth(width)

		switch f {
		case registration.FieldPassword, registration.FieldConfirmPassword:
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		case registration.FieldPhone:
			// Room for an over-long number so the max length error can show.
			ti.CharLimit = 20
		}
		inputs[i] = ti
	}
	return inputs
}

// inputWidth is the usable text width inside a form section.
func inputWidth(sectionWidth int) int {
	// borders, prompt, cursor
	return max(sectionWidth-4, 1)
}

// touchedSet records which fields the user has edited. Methods return copies
// so Model values stay independent.
type touchedSet map[registration.Field]bool

func (s touchedSet) with(f registration.Field) touchedSet {
	if s[f] {
		return s
	}
	next := make(touchedSet, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	next[f] = true
	return next
}
