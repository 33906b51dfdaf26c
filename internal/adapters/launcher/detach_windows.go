//go:build windows

package launcher

import "syscall"

const (
	createNewProcessGroup = 0x00000200
	detachedProcess       = 0x00000008
)

// sysProcAttr detaches the child from the parent's console and process
// group so its lifetime is independent of the parent process.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: createNewProcessGroup | detachedProcess,
	}
}

// shellArgv wraps a command for shell interpretation.
func shellArgv(command string) []string {
	return []string{"cmd", "/C", command}
}
