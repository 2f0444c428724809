package progress

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/flowcheck/pkg/config"
	"github.com/umputun/flowcheck/pkg/flow"
	"github.com/umputun/flowcheck/pkg/status"
)

func testColors() *Colors {
	return NewColors(config.ColorConfig{
		Setup:     "192,192,192",
		Login:     "0,255,0",
		Task:      "0,255,255",
		Verify:    "255,0,255",
		Capture:   "255,215,0",
		Warn:      "255,255,0",
		Error:     "255,0,0",
		Timestamp: "138,138,138",
		Info:      "176,176,176",
	})
}

func newBufLogger(t *testing.T, cfg Config) (*Logger, *bytes.Buffer) {
	t.Helper()
	l, err := NewLogger(cfg, testColors())
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	var buf bytes.Buffer
	l.stdout = &buf
	return l, &buf
}

func TestNewLogger(t *testing.T) {
	t.Run("no log file", func(t *testing.T) {
		l, err := NewLogger(Config{NoColor: true}, testColors())
		require.NoError(t, err)
		assert.Empty(t, l.Path())
		require.NoError(t, l.Close())
	})

	t.Run("log file with header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "run.log")
		l, err := NewLogger(Config{LogFile: path, Target: "http://localhost:5173/login", Browser: "chromium", NoColor: true}, testColors())
		require.NoError(t, err)
		defer l.Close()

		assert.Equal(t, path, l.Path())
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "# Flowcheck Run Log")
		assert.Contains(t, string(content), "Target: http://localhost:5173/login")
		assert.Contains(t, string(content), "Browser: chromium")
	})

	t.Run("log dir is a file", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
		_, err := NewLogger(Config{LogFile: filepath.Join(blocker, "run.log")}, testColors())
		require.Error(t, err)
	})
}

func TestLogger_Print(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	l, buf := newBufLogger(t, Config{LogFile: path, NoColor: true})

	l.Print("open %s", "http://localhost:5173/login")
	assert.Contains(t, buf.String(), "open http://localhost:5173/login")
	assert.Regexp(t, `^\[\d{2}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] `, buf.String())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "open http://localhost:5173/login")
}

func TestLogger_PrintStep(t *testing.T) {
	l, buf := newBufLogger(t, Config{NoColor: true})
	l.SetPhase(status.PhaseLogin)
	l.PrintStep(3, 13, "click Login")
	assert.Contains(t, buf.String(), "--- [3/13] login: click Login ---")
}

func TestLogger_Debug(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		l, buf := newBufLogger(t, Config{NoColor: true, Debug: true})
		l.Debug("locator %q", "Title")
		assert.Contains(t, buf.String(), `[DEBUG] locator "Title"`)
	})
	t.Run("disabled", func(t *testing.T) {
		l, buf := newBufLogger(t, Config{NoColor: true})
		l.Debug("hidden")
		assert.Empty(t, buf.String())
	})
}

func TestLogger_Warn_KeepsBlankLines(t *testing.T) {
	t.Setenv("COLUMNS", "200")
	l, buf := newBufLogger(t, Config{NoColor: true})

	l.Warn("first line\nsecond line\n\nfourth line\n")
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Regexp(t, `^\[.*\] WARN: first line$`, lines[0])
	assert.Equal(t, indent+"second line", lines[1])
	assert.Empty(t, lines[2])
	assert.Equal(t, indent+"fourth line", lines[3])
}

func TestLogger_Warn_Empty(t *testing.T) {
	l, buf := newBufLogger(t, Config{NoColor: true})
	l.Warn("")
	l.Warn("\n\n")
	assert.Empty(t, buf.String())
}

func TestLogger_Error_WrapsLongLines(t *testing.T) {
	t.Setenv("COLUMNS", "60")
	l, buf := newBufLogger(t, Config{NoColor: true})

	l.Error("%s", strings.Repeat("word ", 30))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Greater(t, len(lines), 1)
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, indent), "continuation %q is indented", line)
	}
}

func TestLogger_Error(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	l, buf := newBufLogger(t, Config{LogFile: path, NoColor: true})

	l.Error("element not found: %s", "Add Task")
	assert.Contains(t, buf.String(), "ERROR: element not found: Add Task")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "ERROR: element not found: Add Task")
}

func TestLogger_Error_MultiLineStepError(t *testing.T) {
	t.Setenv("COLUMNS", "200")
	path := filepath.Join(t.TempDir(), "run.log")
	l, buf := newBufLogger(t, Config{LogFile: path, NoColor: true})

	cause := fmt.Errorf("wait visible text=%q: %w", "My New Test Task",
		errors.New("Locator expected to be visible\nCall log:\n  - waiting for getByText('My New Test Task', { exact: true })"))
	l.Error("%v", &flow.StepError{Index: 11, Name: "verify task title", Kind: flow.ErrVisibilityTimeout, Err: cause})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Regexp(t, `^\[.*\] ERROR: step 11 "verify task title": visibility timeout: wait visible`, lines[0])
	assert.Equal(t, indent+"Call log:", lines[1])
	assert.Equal(t, indent+"  - waiting for getByText('My New Test Task', { exact: true })", lines[2])

	require.NoError(t, l.Close())
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "ERROR: step 11")
	assert.Contains(t, string(content), "\n"+indent+"Call log:\n")
}

func TestLogger_Warn(t *testing.T) {
	l, buf := newBufLogger(t, Config{NoColor: true})
	l.Warn("git info unavailable")
	assert.Contains(t, buf.String(), "WARN: git info unavailable")

	buf.Reset()
	l.Warn("release browser: close page\nstop playwright")
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "WARN: release browser: close page")
	assert.Equal(t, indent+"stop playwright", lines[1])
}

func TestLogger_PhaseColors(t *testing.T) {
	origNoColor := color.NoColor
	defer func() { color.NoColor = origNoColor }()
	color.NoColor = false

	l, buf := newBufLogger(t, Config{})
	for _, p := range status.Phases() {
		buf.Reset()
		l.SetPhase(p)
		l.Print("phase %s", p)
		assert.Contains(t, buf.String(), "\033[", "phase %s should be colored", p)
		assert.Contains(t, buf.String(), "phase "+string(p))
	}
}

func TestLogger_ColorDisabled(t *testing.T) {
	origNoColor := color.NoColor
	defer func() { color.NoColor = origNoColor }()

	l, buf := newBufLogger(t, Config{NoColor: true})
	l.SetPhase(status.PhaseTask)
	l.Print("no color output")

	assert.NotContains(t, buf.String(), "\033[")
	assert.Contains(t, buf.String(), "no color output")
}

func TestLogger_Elapsed(t *testing.T) {
	l, _ := newBufLogger(t, Config{NoColor: true})
	// go-humanize returns "now" for very short durations
	assert.NotEmpty(t, l.Elapsed())
}

func TestLogger_Close(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	l, err := NewLogger(Config{LogFile: path, NoColor: true}, testColors())
	require.NoError(t, err)
	l.stdout = &bytes.Buffer{}

	l.Print("some output")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close(), "second close is a no-op")

	content, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	assert.Contains(t, string(content), "Completed:")
	assert.Contains(t, string(content), strings.Repeat("-", 60))
}

func TestColors_ForPhase(t *testing.T) {
	c := testColors()
	assert.Same(t, c.Info(), c.ForPhase(status.Phase("unknown")))
	assert.NotSame(t, c.Info(), c.ForPhase(status.PhaseLogin))
	assert.Same(t, c.ForPhase(status.PhaseSetup), c.ForPhase(status.PhaseTeardown))
}

func TestParseColor(t *testing.T) {
	origNoColor := color.NoColor
	defer func() { color.NoColor = origNoColor }()
	color.NoColor = false

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "rgb", in: "255,0,0", want: "\033[38;2;255;0;0m"},
		{name: "spaces", in: " 0, 255 ,0", want: "\033[38;2;0;255;0m"},
		{name: "too few parts", in: "255,0", want: "\033[37m"},
		{name: "out of range", in: "256,0,0", want: "\033[37m"},
		{name: "not a number", in: "a,b,c", want: "\033[37m"},
		{name: "empty", in: "", want: "\033[37m"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, parseColor(tc.in).Sprint("x"), tc.want)
		})
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "short", text: "fits fine", width: 40, want: "fits fine"},
		{name: "wraps on words", text: "aaa bbb ccc ddd", width: 7, want: "aaa bbb\nccc ddd"},
		{name: "long word kept", text: "abcdefghij k", width: 5, want: "abcdefghij\nk"},
		{name: "zero width", text: "anything goes", width: 0, want: "anything goes"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, wrapText(tc.text, tc.width))
		})
	}
}

func TestTerminalWidth(t *testing.T) {
	t.Setenv("COLUMNS", "120")
	assert.Equal(t, 120, TerminalWidth())
	assert.Equal(t, 100, terminalWidth())

	t.Setenv("COLUMNS", "30")
	assert.Equal(t, 40, terminalWidth())
}
