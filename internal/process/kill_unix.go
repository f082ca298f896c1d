//go:build !windows

// Package process terminates the browser process tree started for printing.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid, which
// takes the renderer helpers down with the browser.
func KillProcessGroup(pid int) {
	// Error ignored: the group may already be gone, and launcher.Kill
	// still runs after this.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
