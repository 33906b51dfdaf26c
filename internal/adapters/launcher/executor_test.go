package launcher_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/leap/internal/adapters/cache"
	"go.trai.ch/leap/internal/adapters/launcher"
	"go.trai.ch/leap/internal/core/domain"
	"go.trai.ch/zerr"
)

type noopLogger struct{}

func (noopLogger) Info(string)         {}
func (noopLogger) Warn(string)         {}
func (noopLogger) Error(error)         {}
func (noopLogger) SetJSON(bool)        {}
func (noopLogger) SetOutput(io.Writer) {}

// stubBuilder returns a fixed command regardless of input.
type stubBuilder struct {
	command string
	err     error
}

func (s stubBuilder) Build(domain.EditorConfig, domain.ProjectContext) (string, error) {
	return s.command, s.err
}

func requireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("spawns unix test processes")
	}
}

// editorFile creates a file standing in for an editor binary; only its
// existence matters to the pre-flight check.
func editorFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "idea")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	return path
}

func validTarget() domain.ProjectContext {
	return domain.ProjectContext{RootPath: "/proj", FilePath: "/proj/main.go", Line: 4, Column: 1}
}

func TestExecutor_DirectLaunchSucceeds(t *testing.T) {
	requireUnix(t)

	e := launcher.NewExecutor(domain.HostPlatform(), stubBuilder{command: "/bin/true"}, nil, noopLogger{})

	res := e.ExecuteJump(context.Background(), domain.EditorConfig{ID: "e", Path: editorFile(t)}, validTarget())

	assert.True(t, res.Success)
	assert.Equal(t, "/bin/true", res.Command)
	assert.Positive(t, res.ProcessID)
	assert.NoError(t, res.Err)

	stats := e.Stats()
	assert.Equal(t, int64(1), stats.Executions)
	assert.Equal(t, int64(1), stats.Successes)

	// The reaper removes the child from the table once it exits.
	require.Eventually(t, func() bool { return e.Running() == 0 },
		2*time.Second, 10*time.Millisecond)
}

func TestExecutor_ShellLaunchSucceeds(t *testing.T) {
	requireUnix(t)

	e := launcher.NewExecutor(domain.HostPlatform(),
		stubBuilder{command: "/bin/true > /dev/null 2>&1 &"}, nil, noopLogger{})

	res := e.ExecuteJump(context.Background(), domain.EditorConfig{ID: "e", Path: editorFile(t)}, validTarget())

	assert.True(t, res.Success)
	assert.Positive(t, res.ProcessID)
}

func TestExecutor_MissingEditorPath(t *testing.T) {
	e := launcher.NewExecutor(domain.HostPlatform(), stubBuilder{command: "/bin/true"}, nil, noopLogger{})

	res := e.ExecuteJump(context.Background(),
		domain.EditorConfig{ID: "e", Path: "/definitely/not/here/idea"}, validTarget())

	assert.False(t, res.Success)
	require.ErrorIs(t, res.Err, domain.ErrEditorNotFound)
	assert.Zero(t, res.ProcessID)
	assert.Equal(t, 0, e.Running())

	stats := e.Stats()
	assert.Equal(t, int64(1), stats.Executions)
	assert.Equal(t, int64(1), stats.Failures)
}

func TestExecutor_ValidationRejectedBeforeSpawn(t *testing.T) {
	e := launcher.NewExecutor(domain.HostPlatform(), stubBuilder{command: "/bin/true"}, nil, noopLogger{})

	tests := []struct {
		name    string
		editor  domain.EditorConfig
		target  domain.ProjectContext
		wantErr error
	}{
		{
			name:    "empty editor path",
			editor:  domain.EditorConfig{ID: "e"},
			target:  validTarget(),
			wantErr: domain.ErrEmptyEditorPath,
		},
		{
			name:    "empty file path",
			editor:  domain.EditorConfig{ID: "e", Path: "/bin/true"},
			target:  domain.ProjectContext{RootPath: "/proj", Line: 1},
			wantErr: domain.ErrEmptyFilePath,
		},
		{
			name:    "line below 1",
			editor:  domain.EditorConfig{ID: "e", Path: "/bin/true"},
			target:  domain.ProjectContext{RootPath: "/proj", FilePath: "/f", Line: 0},
			wantErr: domain.ErrInvalidLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.ExecuteJump(context.Background(), tt.editor, tt.target)
			assert.False(t, res.Success)
			require.ErrorIs(t, res.Err, tt.wantErr)
		})
	}

	assert.Equal(t, 0, e.Running())
}

func TestExecutor_BuilderFailureInvokesErrorHandler(t *testing.T) {
	boom := zerr.New("boom")
	var handled []error
	e := launcher.NewExecutor(domain.HostPlatform(),
		stubBuilder{err: boom}, nil, noopLogger{},
		launcher.WithErrorHandler(func(err error) { handled = append(handled, err) }),
	)

	res := e.ExecuteJump(context.Background(), domain.EditorConfig{ID: "e", Path: editorFile(t)}, validTarget())

	assert.False(t, res.Success)
	require.ErrorIs(t, res.Err, boom)
	require.Len(t, handled, 1)
	assert.ErrorIs(t, handled[0], boom)
}

func TestExecutor_LaunchRefusalReported(t *testing.T) {
	requireUnix(t)

	// The command names a program that does not exist, so Start fails.
	e := launcher.NewExecutor(domain.HostPlatform(),
		stubBuilder{command: "/definitely/not/a/program"}, nil, noopLogger{})

	res := e.ExecuteJump(context.Background(), domain.EditorConfig{ID: "e", Path: editorFile(t)}, validTarget())

	assert.False(t, res.Success)
	require.Error(t, res.Err)
	assert.Equal(t, int64(1), e.Stats().Failures)
}

func TestExecutor_KillAllTerminatesTrackedChildren(t *testing.T) {
	requireUnix(t)

	e := launcher.NewExecutor(domain.HostPlatform(), stubBuilder{command: "/bin/sleep 30"}, nil, noopLogger{})
	editor := domain.EditorConfig{ID: "e", Path: editorFile(t)}

	for range 3 {
		res := e.ExecuteJump(context.Background(), editor, validTarget())
		require.True(t, res.Success)
	}
	assert.Equal(t, 3, e.Running())

	require.NoError(t, e.KillAll())
	assert.Equal(t, 0, e.Running())
}

func TestExecutor_WindowsGraceDelay(t *testing.T) {
	requireUnix(t)

	e := launcher.NewExecutor(domain.PlatformWindows,
		stubBuilder{command: "/bin/true"}, nil, noopLogger{},
		launcher.WithGraceDelay(50*time.Millisecond),
	)

	res := e.ExecuteJump(context.Background(), domain.EditorConfig{ID: "e", Path: editorFile(t)}, validTarget())

	// Success is reported only after the grace delay elapses; the result
	// still carries a pid, not proof the editor actually opened.
	assert.True(t, res.Success)
	assert.Positive(t, res.ProcessID)
	assert.GreaterOrEqual(t, res.ExecutionTime, 50*time.Millisecond)
}

func TestExecutor_ExistenceCheckCached(t *testing.T) {
	requireUnix(t)

	store, err := cache.NewStore(noopLogger{})
	require.NoError(t, err)
	defer store.Stop()

	e := launcher.NewExecutor(domain.HostPlatform(),
		stubBuilder{command: "/bin/true"}, cache.ProjectPath(store), noopLogger{})

	path := filepath.Join(t.TempDir(), "idea")
	editor := domain.EditorConfig{ID: "e", Path: path}

	res := e.ExecuteJump(context.Background(), editor, validTarget())
	require.ErrorIs(t, res.Err, domain.ErrEditorNotFound)

	// The negative existence result is cached: creating the binary now
	// does not take effect until the entry's TTL expires.
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	res = e.ExecuteJump(context.Background(), editor, validTarget())
	assert.ErrorIs(t, res.Err, domain.ErrEditorNotFound)
}

func TestExecutor_AverageTimeTracksAttempts(t *testing.T) {
	requireUnix(t)

	e := launcher.NewExecutor(domain.HostPlatform(), stubBuilder{command: "/bin/true"}, nil, noopLogger{})
	editor := domain.EditorConfig{ID: "e", Path: editorFile(t)}

	for range 4 {
		res := e.ExecuteJump(context.Background(), editor, validTarget())
		require.True(t, res.Success)
	}

	stats := e.Stats()
	assert.Equal(t, int64(4), stats.Executions)
	assert.Equal(t, stats.TotalTime/4, stats.AverageTime)
}
