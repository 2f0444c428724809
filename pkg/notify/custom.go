package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// customChannel pipes the Result as JSON to a user script.
type customChannel struct {
	scriptPath string
}

func newCustomChannel(scriptPath string) *customChannel {
	return &customChannel{scriptPath: scriptPath}
}

// send runs the script with the marshaled result on stdin.
// script output is attached to the error on non-zero exit. on timeout the script's
// whole process group is killed.
func (c *customChannel) send(ctx context.Context, r Result) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.scriptPath) //nolint:gosec // path comes from user config
	setupProcessGroup(cmd)
	cmd.Stdin = bytes.NewReader(data)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		if text := strings.TrimSpace(out.String()); text != "" {
			return fmt.Errorf("script %s: %w, output: %s", c.scriptPath, err, text)
		}
		return fmt.Errorf("script %s: %w", c.scriptPath, err)
	}
	return nil
}
