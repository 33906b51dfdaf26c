package domain

import "time"

// LaunchResult is the outcome of one jump-command execution attempt.
// It is returned synchronously and never persisted. Failures are reported
// through Err; the launcher does not panic across its API boundary.
type LaunchResult struct {
	Success       bool          `json:"success"`
	Command       string        `json:"command"`
	ExecutionTime time.Duration `json:"execution_time"`
	Err           error         `json:"-"`
	// ProcessID is the OS pid of the launched child when available, 0 otherwise.
	ProcessID int `json:"process_id,omitempty"`
}

// ErrorMessage returns the failure message, or "" on success.
func (r LaunchResult) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
