package logoverlay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/signup/internal/log"
)

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "logoverlay-test")
	if err != nil {
		panic(err)
	}

	cleanup, err := log.Init(filepath.Join(tmpDir, "test.log"), 100)
	if err != nil {
		panic(err)
	}

	code := m.Run()
	cleanup()
	_ = os.RemoveAll(tmpDir)
	os.Exit(code)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func shown() Model {
	return New().SetSize(100, 30).Toggle()
}

func TestNew(t *testing.T) {
	m := New()
	require.False(t, m.Visible())
	require.Empty(t, m.View())
	require.Equal(t, log.LevelDebug, m.MinLevel())
}

func TestToggle(t *testing.T) {
	m := New().Toggle()
	require.True(t, m.Visible())
	require.False(t, m.Toggle().Visible())
}

func TestUpdate_IgnoredWhenHidden(t *testing.T) {
	m, cmd := New().Update(runes("e"))
	require.Nil(t, cmd)
	require.Equal(t, log.LevelDebug, m.MinLevel())
}

func TestUpdate_FilterKeys(t *testing.T) {
	tests := []struct {
		key  string
		want log.Level
	}{
		{"d", log.LevelDebug},
		{"i", log.LevelInfo},
		{"w", log.LevelWarn},
		{"e", log.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, _ := shown().Update(runes(tt.key))
			require.Equal(t, tt.want, m.MinLevel())
		})
	}
}

func TestUpdate_Close(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlX}} {
		t.Run(msg.String(), func(t *testing.T) {
			m, cmd := shown().Update(msg)
			require.False(t, m.Visible())
			require.NotNil(t, cmd)
			require.Equal(t, CloseMsg{}, cmd())
		})
	}
}

func TestUpdate_Clear(t *testing.T) {
	log.Info(log.CatUI, "to be cleared")
	require.NotEmpty(t, log.GetRecentLogs(10))

	m, _ := shown().Update(runes("c"))

	require.Empty(t, log.GetRecentLogs(10))
	require.Contains(t, ansi.Strip(m.View()), "No logs to display")
}

func TestView_FiltersByLevel(t *testing.T) {
	log.ClearBuffer()
	log.Debug(log.CatForm, "field edited", "field", "name")
	log.Error(log.CatSubmit, "registration failed", "attempt", "a-1")

	m := shown()
	view := ansi.Strip(m.View())
	require.Contains(t, view, "field edited")
	require.Contains(t, view, "registration failed")

	m, _ = m.Update(runes("e"))
	view = ansi.Strip(m.View())
	require.NotContains(t, view, "field edited")
	require.Contains(t, view, "registration failed")
}

func TestRefresh_PicksUpNewEntries(t *testing.T) {
	log.ClearBuffer()
	m := shown()
	require.NotContains(t, ansi.Strip(m.View()), "late entry")

	log.Warn(log.CatUI, "late entry")
	require.Contains(t, ansi.Strip(m.Refresh().View()), "late entry")
}

func TestView_ChromeAndHints(t *testing.T) {
	view := ansi.Strip(shown().View())
	for _, want := range []string{"Logs", "╭", "╯", "[c] Clear", "[d] Debug", "[i] Info", "[w] Warn", "[e] Error"} {
		require.Contains(t, view, want)
	}
}

func TestOverlay(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 100)+"\n", 30), "\n")

	require.Equal(t, bg, New().SetSize(100, 30).Overlay(bg))

	out := ansi.Strip(shown().Overlay(bg))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 30)
	require.Equal(t, strings.Repeat(".", 100), lines[0], "box is centered, top row untouched")
	require.Contains(t, out, "Logs")
}

func TestEntryLevel(t *testing.T) {
	tests := []struct {
		entry string
		want  log.Level
		ok    bool
	}{
		{"2026-01-02T15:04:05 [ERROR] [submit] boom", log.LevelError, true},
		{"2026-01-02T15:04:05 [WARN] [ui] hmm", log.LevelWarn, true},
		{"2026-01-02T15:04:05 [INFO] [form] ok", log.LevelInfo, true},
		{"2026-01-02T15:04:05 [DEBUG] [form] detail", log.LevelDebug, true},
		{"free text", log.LevelDebug, false},
	}
	for _, tt := range tests {
		level, ok := entryLevel(tt.entry)
		require.Equal(t, tt.ok, ok, tt.entry)
		require.Equal(t, tt.want, level, tt.entry)
	}
}

func TestColorize_Truncates(t *testing.T) {
	out := ansi.Strip(colorize(strings.Repeat("x", 50)+"\n", log.LevelInfo, true, 20))
	require.Equal(t, 20, ansi.StringWidth(out))
	require.True(t, strings.HasSuffix(out, "..."))
}
