// Package progress provides timestamped step logging to stdout and an optional file, with color support.
package progress

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/umputun/flowcheck/pkg/status"
)

// timestampFormat is the format for timestamps: YY-MM-DD HH:MM:SS
const timestampFormat = "06-01-02 15:04:05"

// indent aligns continuation lines with "[YY-MM-DD HH:MM:SS] "
const indent = "                    "

// Config holds logger configuration.
type Config struct {
	LogFile string // optional plain-text log file, empty disables it
	Target  string // login URL being verified
	Browser string // browser engine name
	NoColor bool   // disable color output (sets color.NoColor globally)
	Debug   bool   // print debug messages
}

// Logger writes timestamped output to stdout and, optionally, a log file.
type Logger struct {
	file      *os.File
	path      string
	stdout    io.Writer
	colors    *Colors
	startTime time.Time
	phase     status.Phase
	debug     bool
}

// NewLogger creates a logger. the log file, when configured, is truncated and gets a header.
func NewLogger(cfg Config, colors *Colors) (*Logger, error) {
	if cfg.NoColor {
		color.NoColor = true
	}

	l := &Logger{
		stdout:    os.Stdout,
		colors:    colors,
		startTime: time.Now(),
		phase:     status.PhaseSetup,
		debug:     cfg.Debug,
	}

	if cfg.LogFile == "" {
		return l, nil
	}

	if dir := filepath.Dir(cfg.LogFile); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.Create(cfg.LogFile) //nolint:gosec // path from user config
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}
	l.file = f
	l.path = cfg.LogFile

	l.writeFile("# Flowcheck Run Log\n")
	l.writeFile("Target: %s\n", cfg.Target)
	l.writeFile("Browser: %s\n", cfg.Browser)
	l.writeFile("Started: %s\n", l.startTime.Format("2006-01-02 15:04:05"))
	l.writeFile("%s\n\n", strings.Repeat("-", 60))

	return l, nil
}

// Path returns the log file path, empty if file logging is disabled.
func (l *Logger) Path() string {
	return l.path
}

// SetPhase sets the current phase for color coding.
func (l *Logger) SetPhase(phase status.Phase) {
	l.phase = phase
}

// Print writes a timestamped message in the current phase color.
func (l *Logger) Print(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	ts := time.Now().Format(timestampFormat)

	l.writeFile("[%s] %s\n", ts, msg)
	l.writeStdout("%s %s\n", l.colors.Timestamp().Sprintf("[%s]", ts), l.colors.ForPhase(l.phase).Sprint(msg))
}

// PrintStep writes a step header like "--- [3/13] login: click Login ---".
func (l *Logger) PrintStep(index, total int, name string) {
	header := fmt.Sprintf("--- [%d/%d] %s: %s ---", index, total, l.phase, name)
	ts := time.Now().Format(timestampFormat)

	l.writeFile("[%s] %s\n", ts, header)
	l.writeStdout("%s %s\n", l.colors.Timestamp().Sprintf("[%s]", ts), l.colors.ForPhase(l.phase).Sprint(header))
}

// Debug writes a message only when debug output is enabled.
func (l *Logger) Debug(format string, args ...any) {
	if !l.debug {
		return
	}
	l.Print("[DEBUG] "+format, args...)
}

// Error writes an error message in the error color. continuation lines of multi-line
// messages, like playwright call logs, are indented under the first one.
func (l *Logger) Error(format string, args ...any) {
	l.printLines("ERROR: ", l.colors.Error(), fmt.Sprintf(format, args...))
}

// Warn writes a warning message in the warn color, aligned like Error.
func (l *Logger) Warn(format string, args ...any) {
	l.printLines("WARN: ", l.colors.Warn(), fmt.Sprintf(format, args...))
}

// printLines writes text with prefix on the timestamped first line and the remaining lines
// indented to the message column. blank lines are kept.
func (l *Logger) printLines(prefix string, c *color.Color, text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}

	ts := time.Now().Format(timestampFormat)
	width := terminalWidth()

	var lines []string
	for line := range strings.SplitSeq(text, "\n") {
		lines = append(lines, strings.Split(wrapText(line, width), "\n")...)
	}

	for i, line := range lines {
		switch {
		case i == 0:
			l.writeFile("[%s] %s%s\n", ts, prefix, line)
			l.writeStdout("%s %s\n", l.colors.Timestamp().Sprintf("[%s]", ts), c.Sprint(prefix+line))
		case line == "":
			l.writeFile("\n")
			l.writeStdout("\n")
		default:
			l.writeFile("%s%s\n", indent, line)
			l.writeStdout("%s%s\n", indent, c.Sprint(line))
		}
	}
}

// Elapsed returns formatted elapsed time since start.
func (l *Logger) Elapsed() string {
	return humanize.RelTime(l.startTime, time.Now(), "", "")
}

// Close writes the footer and closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}

	l.writeFile("\n%s\n", strings.Repeat("-", 60))
	l.writeFile("Completed: %s (%s)\n", time.Now().Format("2006-01-02 15:04:05"), l.Elapsed())

	err := l.file.Close()
	l.file = nil
	if err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

func (l *Logger) writeFile(format string, args ...any) {
	if l.file != nil {
		fmt.Fprintf(l.file, format, args...)
	}
}

func (l *Logger) writeStdout(format string, args ...any) {
	fmt.Fprintf(l.stdout, format, args...)
}

// TerminalWidth returns the stdout width in columns from COLUMNS, then the terminal size,
// falling back to 80.
func TerminalWidth() int {
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// terminalWidth returns the content width, the terminal minus the timestamp prefix.
func terminalWidth() int {
	const minWidth = 40
	return max(TerminalWidth()-len(indent), minWidth)
}

// wrapText wraps text to width, breaking on word boundaries. words longer than width stay intact.
func wrapText(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	lineLen := 0
	for i, word := range strings.Fields(text) {
		switch {
		case i == 0:
			lineLen = len(word)
		case lineLen+1+len(word) <= width:
			result.WriteString(" ")
			lineLen += 1 + len(word)
		default:
			result.WriteString("\n")
			lineLen = len(word)
		}
		result.WriteString(word)
	}
	return result.String()
}
