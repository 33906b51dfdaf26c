package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyEditorPath is returned when an editor config has no executable path.
	ErrEmptyEditorPath = zerr.New("editor path cannot be empty")

	// ErrEmptyFilePath is returned when a jump target has no file path.
	ErrEmptyFilePath = zerr.New("file path cannot be empty")

	// ErrInvalidLine is returned when a line number is smaller than 1.
	ErrInvalidLine = zerr.New("line number must be 1 or greater")

	// ErrInvalidColumn is returned when a column number is smaller than 1.
	ErrInvalidColumn = zerr.New("column number must be 1 or greater")

	// ErrInvalidTTL is returned when a cache TTL is zero or negative.
	ErrInvalidTTL = zerr.New("ttl must be positive")

	// ErrInvalidWindow is returned when a debounce/throttle window is zero or negative.
	ErrInvalidWindow = zerr.New("time window must be positive")

	// ErrUnsupportedPlatform is returned when no command strategy exists for the platform.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")

	// ErrEditorNotFound is returned when the configured editor executable does not exist on disk.
	ErrEditorNotFound = zerr.New("editor executable not found")

	// ErrLaunchFailed is returned when the OS refused to start the editor process.
	ErrLaunchFailed = zerr.New("failed to launch editor process")

	// ErrEditorConfigNotFound is returned when no editor config matches the requested name.
	ErrEditorConfigNotFound = zerr.New("editor config not found")

	// ErrDuplicateEditorName is returned when adding or renaming an editor to a name already in use.
	ErrDuplicateEditorName = zerr.New("editor name already in use")

	// ErrNoDefaultEditor is returned when a jump needs a default editor but the registry is empty.
	ErrNoDefaultEditor = zerr.New("no default editor configured")

	// ErrNoEditorName is returned when an editor config has no name.
	ErrNoEditorName = zerr.New("editor name cannot be empty")

	// ErrRegistryReadFailed is returned when the editor registry file cannot be read.
	ErrRegistryReadFailed = zerr.New("failed to read editor registry")

	// ErrRegistryParseFailed is returned when the editor registry file cannot be parsed.
	ErrRegistryParseFailed = zerr.New("failed to parse editor registry")

	// ErrRegistryWriteFailed is returned when the editor registry file cannot be written.
	ErrRegistryWriteFailed = zerr.New("failed to write editor registry")

	// ErrRateLimited is returned when the jump path fires more often than its call budget allows.
	ErrRateLimited = zerr.New("jump rate limit exceeded")

	// ErrJumpFailed is returned by the CLI layer when a jump attempt reports failure.
	ErrJumpFailed = zerr.New("jump failed")
)
