package progress

import (
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/umputun/flowcheck/pkg/config"
	"github.com/umputun/flowcheck/pkg/status"
)

// Colors holds the terminal colors for each output role.
type Colors struct {
	phases    map[status.Phase]*color.Color
	warn      *color.Color
	err       *color.Color
	timestamp *color.Color
	info      *color.Color
}

// NewColors builds Colors from "r,g,b" strings; unparsable values fall back to plain white.
func NewColors(cfg config.ColorConfig) *Colors {
	return &Colors{
		phases: map[status.Phase]*color.Color{
			status.PhaseSetup:    parseColor(cfg.Setup),
			status.PhaseLogin:    parseColor(cfg.Login),
			status.PhaseTask:     parseColor(cfg.Task),
			status.PhaseVerify:   parseColor(cfg.Verify),
			status.PhaseCapture:  parseColor(cfg.Capture),
			status.PhaseTeardown: parseColor(cfg.Setup),
		},
		warn:      parseColor(cfg.Warn),
		err:       parseColor(cfg.Error),
		timestamp: parseColor(cfg.Timestamp),
		info:      parseColor(cfg.Info),
	}
}

// ForPhase returns the color for a phase, info color for unknown phases.
func (c *Colors) ForPhase(p status.Phase) *color.Color {
	if pc, ok := c.phases[p]; ok {
		return pc
	}
	return c.info
}

// Info returns the color for informational messages.
func (c *Colors) Info() *color.Color { return c.info }

// Warn returns the color for warnings.
func (c *Colors) Warn() *color.Color { return c.warn }

// Error returns the color for errors.
func (c *Colors) Error() *color.Color { return c.err }

// Timestamp returns the color for timestamps.
func (c *Colors) Timestamp() *color.Color { return c.timestamp }

// parseColor converts "r,g,b" into a 24-bit foreground color.
func parseColor(rgb string) *color.Color {
	parts := strings.Split(rgb, ",")
	if len(parts) != 3 {
		return color.New(color.FgWhite)
	}
	vals := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return color.New(color.FgWhite)
		}
		vals[i] = v
	}
	return color.RGB(vals[0], vals[1], vals[2])
}
