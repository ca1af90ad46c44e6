package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Border characters (rounded) used by RenderFormSection.
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// SectionBorderColor picks the border color for a form section.
// An error wins over focus.
func SectionBorderColor(focused, hasError bool) lipgloss.TerminalColor {
	switch {
	case hasError:
		return FormTextInputErrorBorderColor
	case focused:
		return FormTextInputFocusedBorderColor
	default:
		return BorderDefaultColor
	}
}

// RenderFormSection renders a bordered section with an inline title and hint:
//
//	╭─ Title (hint) ──────╮
//	│content              │
//	╰─────────────────────╯
//
// Rows wider than the section are truncated.
func RenderFormSection(content []string, title, hint string, width int, borderColor lipgloss.TerminalColor) string {
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(borderColor)

	innerWidth := max(width-2, 1)

	var top strings.Builder
	if title == "" {
		top.WriteString(borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight))
	} else {
		label := title
		if hint != "" {
			label = title + " (" + hint + ")"
		}
		dashesAfter := max(innerWidth-lipgloss.Width(label)-3, 0) // "─ " before and " " after

		top.WriteString(borderStyle.Render(borderTopLeft+borderHorizontal+" ") + titleStyle.Render(title))
		if hint != "" {
			top.WriteString(" " + HintStyle.Render("("+hint+")"))
		}
		top.WriteString(borderStyle.Render(" " + strings.Repeat(borderHorizontal, dashesAfter) + borderTopRight))
	}

	lines := make([]string, 0, len(content)+2)
	lines = append(lines, top.String())
	for _, row := range content {
		if ansi.StringWidth(row) > innerWidth {
			row = ansi.Truncate(row, innerWidth, "…")
		}
		padding := strings.Repeat(" ", max(innerWidth-ansi.StringWidth(row), 0))
		lines = append(lines, borderStyle.Render(borderVertical)+row+padding+borderStyle.Render(borderVertical))
	}
	lines = append(lines, borderStyle.Render(borderBottomLeft+strings.Repeat(borderHorizontal, innerWidth)+borderBottomRight))

	return strings.Join(lines, "\n")
}
