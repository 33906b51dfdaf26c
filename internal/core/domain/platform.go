// Package domain contains the core entities for leap.
package domain

import "runtime"

// Platform identifies a target operating system family for command
// construction and process launching. The set is closed: supporting a new
// family means adding a constant here and a strategy to the command builder.
type Platform int

const (
	// PlatformUnknown is the zero value for unrecognized operating systems.
	PlatformUnknown Platform = iota
	// PlatformWindows covers the Windows family.
	PlatformWindows
	// PlatformDarwin covers macOS.
	PlatformDarwin
	// PlatformLinux covers Linux and compatible systems.
	PlatformLinux
)

// String returns the GOOS-style name of the platform.
func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "windows"
	case PlatformDarwin:
		return "darwin"
	case PlatformLinux:
		return "linux"
	default:
		return "unknown"
	}
}

// Unix reports whether the platform belongs to the Unix-like family,
// which shares a single command-construction and detach strategy.
func (p Platform) Unix() bool {
	return p == PlatformDarwin || p == PlatformLinux
}

// PlatformFromGOOS maps a GOOS string to a Platform.
func PlatformFromGOOS(goos string) Platform {
	switch goos {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformDarwin
	case "linux":
		return PlatformLinux
	default:
		return PlatformUnknown
	}
}

// HostPlatform returns the platform leap is currently running on.
func HostPlatform() Platform {
	return PlatformFromGOOS(runtime.GOOS)
}
