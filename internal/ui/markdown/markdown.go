// Package markdown renders the form's static markdown blocks.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// blockStyle returns the standard style for the terminal background with the
// document margins removed so blocks line up with the form.
func blockStyle() ansi.StyleConfig {
	style := glamourstyles.DarkStyleConfig
	if !lipgloss.HasDarkBackground() {
		style = glamourstyles.LightStyleConfig
	}
	var margin uint
	style.Document.Margin = &margin
	style.Document.BlockPrefix = ""
	style.Document.BlockSuffix = ""
	return style
}

// Renderer wraps a glamour renderer configured for a fixed wrap width.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a renderer that wraps at width.
func New(width int) (*Renderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(blockStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output with surrounding
// blank lines trimmed.
func (r *Renderer) Render(md string) (string, error) {
	out, err := r.renderer.Render(md)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

// RenderOrRaw renders md at width, returning md itself if rendering fails.
func RenderOrRaw(md string, width int) string {
	r, err := New(width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
