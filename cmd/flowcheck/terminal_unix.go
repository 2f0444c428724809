//go:build !windows

package main

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// quietInterrupt clears ECHOCTL on an interactive stdin so Ctrl+C does not print "^C"
// into the step log. the returned func restores the saved terminal state.
func quietInterrupt() func() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}
	}

	saved, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return func() {}
	}

	quiet := *saved
	quiet.Lflag &^= unix.ECHOCTL
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &quiet); err != nil {
		return func() {}
	}

	return func() {
		_ = unix.IoctlSetTermios(fd, ioctlWriteTermios, saved)
	}
}
