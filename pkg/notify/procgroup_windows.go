//go:build windows

package notify

import "os/exec"

// setupProcessGroup is a no-op on windows, exec.CommandContext kills the direct child only.
func setupProcessGroup(*exec.Cmd) {}
