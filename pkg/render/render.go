// Package render prints run summaries for the terminal.
package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/umputun/flowcheck/pkg/report"
)

const defaultWidth = 80

// Options control terminal rendering.
type Options struct {
	NoColor bool // return markdown unchanged
	Width   int  // word wrap column, 80 when zero
	Style   string
}

// Markdown renders markdown for terminal display, auto-detecting the style unless Style is set.
func Markdown(content string, opts Options) (string, error) {
	if opts.NoColor {
		return content, nil
	}

	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	styleOpt := glamour.WithAutoStyle()
	if opts.Style != "" {
		styleOpt = glamour.WithStandardStyle(opts.Style)
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}

	out, err := renderer.Render(content)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// Summary renders the run report.
func Summary(r report.Report, opts Options) (string, error) {
	return Markdown(r.Markdown(), opts)
}
