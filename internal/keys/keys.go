// Package keys contains keybinding definitions.
package keys

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// FormKeyMap defines the keybindings for the registration form.
type FormKeyMap struct {
	// Navigation
	Next key.Binding
	Prev key.Binding

	// Actions
	Enter  key.Binding
	Submit key.Binding

	// General
	LogOverlay key.Binding
	Quit       key.Binding
}

// DefaultFormKeyMap returns the default form keybindings.
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next / submit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		LogOverlay: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "logs"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// WithDebug returns a copy of the keymap with debug-only bindings enabled.
func (k FormKeyMap) WithDebug(debug bool) FormKeyMap {
	k.LogOverlay.SetEnabled(debug)
	return k
}

// ShortHelp returns keybindings for the footer hint line.
func (k FormKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.LogOverlay, k.Quit}
}

// FullHelp returns keybindings grouped by purpose.
func (k FormKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},       // Navigation
		{k.Enter, k.Submit},    // Actions
		{k.LogOverlay, k.Quit}, // General
	}
}

// HintLine renders enabled bindings as "key action · key action".
func HintLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
