//go:build windows

package main

func quietInterrupt() func() {
	return func() {}
}
