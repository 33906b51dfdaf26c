//go:build !windows

package launcher

import "syscall"

// sysProcAttr puts the child in its own session so its lifetime is
// independent of the parent process.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setsid: true,
	}
}

// shellArgv wraps a command for shell interpretation.
func shellArgv(command string) []string {
	return []string{"/bin/sh", "-c", command}
}
