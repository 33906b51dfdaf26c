// Package launcher starts detached editor processes and tracks them until
// they exit.
package launcher

import (
	"context"
	"os"
	"os/exec"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/leap/internal/adapters/cache"
	"go.trai.ch/leap/internal/core/domain"
	"go.trai.ch/leap/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultGraceDelay is how long a Windows launch waits before it is
	// reported as started. GUI launch success there is not reliably
	// observable, so the delay stands in for a confirmation signal.
	DefaultGraceDelay = 500 * time.Millisecond

	tracerName = "go.trai.ch/leap/internal/adapters/launcher"
)

// Executor implements ports.Launcher. Children are launched detached and
// never awaited by the caller; a reaper goroutine per child keeps the
// process table in sync with actual exits.
type Executor struct {
	platform   domain.Platform
	logger     ports.Logger
	builder    ports.CommandBuilder
	procs      *table
	graceDelay time.Duration
	onError    func(error)
	exists     func(string) (bool, error)
	tracer     trace.Tracer

	mu    sync.Mutex
	stats domain.ExecStats
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithGraceDelay overrides the Windows launch grace delay.
func WithGraceDelay(d time.Duration) ExecutorOption {
	return func(e *Executor) { e.graceDelay = d }
}

// WithErrorHandler installs a callback invoked on every launch failure in
// addition to the returned result, so the host can surface a notification
// without this layer knowing about UI.
func WithErrorHandler(fn func(error)) ExecutorOption {
	return func(e *Executor) { e.onError = fn }
}

// NewExecutor creates an executor for the given platform. The paths scope,
// when non-nil, caches editor-path existence checks; executable locations
// rarely change mid-session.
func NewExecutor(
	platform domain.Platform,
	builder ports.CommandBuilder,
	paths *cache.Scope,
	logger ports.Logger,
	opts ...ExecutorOption,
) *Executor {
	e := &Executor{
		platform:   platform,
		logger:     logger,
		builder:    builder,
		procs:      newTable(),
		graceDelay: DefaultGraceDelay,
		exists:     statPath,
		tracer:     otel.Tracer(tracerName),
	}
	if paths != nil {
		e.exists = cache.Cached(paths,
			func(path string) string { return "exists:" + path },
			statPath,
		)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecuteJump builds the jump command for the editor and target and starts
// it as a detached child. The result reports whether the child was
// confirmed started, never whether it exited. Failures are returned in the
// result; no error crosses this boundary as a panic.
func (e *Executor) ExecuteJump(ctx context.Context, editor domain.EditorConfig, target domain.ProjectContext) domain.LaunchResult {
	ctx, span := e.tracer.Start(ctx, "launcher.jump", trace.WithAttributes(
		attribute.String("editor.id", editor.ID),
		attribute.String("jump.file", target.FilePath),
		attribute.Int("jump.line", target.Line),
	))
	defer span.End()

	started := time.Now()

	if err := e.preflight(editor, target); err != nil {
		return e.fail(span, started, "", err)
	}

	command, err := e.builder.Build(editor, target)
	if err != nil {
		return e.fail(span, started, "", err)
	}

	cmd, err := e.prepare(command)
	if err != nil {
		return e.fail(span, started, command, err)
	}

	if err := cmd.Start(); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrLaunchFailed.Error()), "command", command)
		return e.fail(span, started, command, wrapped)
	}

	pid := cmd.Process.Pid
	id := e.procs.add(cmd.Process)
	go func() {
		_ = cmd.Wait()
		e.procs.remove(id)
	}()

	if e.platform == domain.PlatformWindows {
		select {
		case <-ctx.Done():
		case <-time.After(e.graceDelay):
		}
	}

	elapsed := time.Since(started)
	e.record(true, elapsed)
	span.SetAttributes(attribute.Int("process.pid", pid))

	return domain.LaunchResult{
		Success:       true,
		Command:       command,
		ExecutionTime: elapsed,
		ProcessID:     pid,
	}
}

// Running returns the number of tracked live child processes.
func (e *Executor) Running() int {
	return e.procs.len()
}

// KillAll terminates every tracked child process.
func (e *Executor) KillAll() error {
	return e.procs.killAll()
}

// Stats returns a snapshot of the running execution totals.
func (e *Executor) Stats() domain.ExecStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// preflight validates the jump parameters and verifies the editor binary
// exists on disk, all before any process is started.
func (e *Executor) preflight(editor domain.EditorConfig, target domain.ProjectContext) error {
	if editor.Path == "" {
		return domain.ErrEmptyEditorPath
	}
	if target.FilePath == "" {
		return domain.ErrEmptyFilePath
	}
	if err := domain.ValidateLine(target.Line); err != nil {
		return err
	}

	ok, err := e.exists(editor.Path)
	if err != nil {
		return err
	}
	if !ok {
		return zerr.With(domain.ErrEditorNotFound, "path", editor.Path)
	}
	return nil
}

// prepare picks the execution strategy for the command: shell
// interpretation when the command relies on shell syntax, direct
// program+argv launch otherwise.
func (e *Executor) prepare(command string) (*exec.Cmd, error) {
	var argv []string
	if HasShellSyntax(command) {
		argv = shellArgv(command)
	} else {
		argv = splitArgs(command)
	}
	if len(argv) == 0 {
		return nil, zerr.With(domain.ErrLaunchFailed, "command", command)
	}

	// exec.Command rather than CommandContext: the child must outlive the
	// triggering call and whatever context rode in with it.
	//nolint:gosec // G204: the command comes from the builder, not raw user input
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = sysProcAttr()
	return cmd, nil
}

func (e *Executor) fail(span trace.Span, started time.Time, command string, err error) domain.LaunchResult {
	elapsed := time.Since(started)
	e.record(false, elapsed)

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	e.logger.Error(err)
	if e.onError != nil {
		e.onError(err)
	}

	return domain.LaunchResult{
		Command:       command,
		ExecutionTime: elapsed,
		Err:           err,
	}
}

func (e *Executor) record(success bool, elapsed time.Duration) {
	e.mu.Lock()
	e.stats.Record(success, elapsed)
	e.mu.Unlock()
}

// statPath reports whether path exists and is a regular file. Stat
// failures count as missing rather than erroring the jump.
func statPath(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, nil
	}
	return !info.IsDir(), nil
}
