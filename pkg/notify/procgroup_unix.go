//go:build !windows

package notify

import (
	"errors"
	"os/exec"
	"syscall"
	"time"
)

// killGrace is the delay between SIGTERM and SIGKILL for a canceled script.
const killGrace = 100 * time.Millisecond

// setupProcessGroup runs cmd in its own process group and makes context cancellation
// terminate the whole group, so children spawned by the script (curl, mail) go too.
func setupProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error { return killProcessGroup(cmd) }
	cmd.WaitDelay = time.Second
}

// killProcessGroup sends SIGTERM to the group of cmd, then SIGKILL after killGrace.
// a group that already exited is not an error.
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	pgid := -cmd.Process.Pid

	if err := syscall.Kill(pgid, syscall.SIGTERM); err != nil {
		if errors.Is(err, syscall.ESRCH) {
			return nil
		}
		return err
	}

	time.Sleep(killGrace)
	if err := syscall.Kill(pgid, syscall.SIGKILL); err != nil && !errors.Is(err, syscall.ESRCH) {
		return err
	}
	return nil
}
