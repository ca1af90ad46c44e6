package markdown

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestRender_Checklist(t *testing.T) {
	r, err := New(60)
	require.NoError(t, err)
	require.Equal(t, 60, r.Width())

	out, err := r.Render("**Password requirements:**\n\n- At least 8 characters\n- At least one number\n")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.Contains(t, plain, "Password requirements:")
	require.Contains(t, plain, "At least 8 characters")
	require.Contains(t, plain, "At least one number")
	require.NotContains(t, plain, "**", "emphasis markers are rendered, not printed")
}

func TestRenderOrRaw(t *testing.T) {
	out := ansi.Strip(RenderOrRaw("- one\n- two\n", 40))
	require.Contains(t, out, "one")
	require.Contains(t, out, "two")
}
