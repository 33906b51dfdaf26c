package ports

import (
	"context"

	"go.trai.ch/leap/internal/core/domain"
)

// Launcher starts detached editor processes and reports the outcome.
//
// ExecuteJump resolves once the child is confirmed started (or, on the
// Windows family, once a short grace delay elapses) — not once the child
// exits. The launched editor is meant to outlive the triggering action.
// Failures are reported in the result, never as a panic.
//
//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	ExecuteJump(ctx context.Context, editor domain.EditorConfig, target domain.ProjectContext) domain.LaunchResult

	// Running returns the number of tracked live child processes.
	Running() int

	// KillAll terminates every tracked child process. Used at shutdown.
	KillAll() error

	// Stats returns the running execution totals.
	Stats() domain.ExecStats
}
