package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/leap/cmd/leap/commands"
	"go.trai.ch/leap/internal/adapters/cache"
	"go.trai.ch/leap/internal/adapters/telemetry"
	"go.trai.ch/leap/internal/app"
	"go.trai.ch/leap/internal/core/domain"
	"go.trai.ch/leap/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Info(string)         {}
func (noopLogger) Warn(string)         {}
func (noopLogger) Error(error)         {}
func (noopLogger) SetJSON(bool)        {}
func (noopLogger) SetOutput(io.Writer) {}

type fixture struct {
	cli      *commands.CLI
	registry *mocks.MockEditorRegistry
	launcher *mocks.MockLauncher
	out      *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockEditorRegistry(ctrl)
	launcher := mocks.NewMockLauncher(ctrl)

	store, err := cache.NewStore(noopLogger{})
	require.NoError(t, err)
	t.Cleanup(store.Stop)

	a := app.New(registry, launcher, store, telemetry.NewRecorder(), noopLogger{})
	cli := commands.New(a, registry)

	out := new(bytes.Buffer)
	cli.SetOutput(out, io.Discard)

	return &fixture{cli: cli, registry: registry, launcher: launcher, out: out}
}

func TestVersionCommand(t *testing.T) {
	f := newFixture(t)

	f.cli.SetArgs([]string{"version"})
	require.NoError(t, f.cli.Execute(context.Background()))

	assert.Contains(t, f.out.String(), "leap version")
}

func TestJumpCommand_Success(t *testing.T) {
	f := newFixture(t)

	editor := domain.EditorConfig{ID: "1", Name: "idea", Path: "/opt/idea", IsDefault: true}
	f.registry.EXPECT().Default().Return(editor, nil)
	f.launcher.EXPECT().ExecuteJump(gomock.Any(), editor, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.EditorConfig, target domain.ProjectContext) domain.LaunchResult {
			assert.Equal(t, 42, target.Line)
			assert.Equal(t, 3, target.Column)
			assert.True(t, filepath.IsAbs(target.FilePath))
			return domain.LaunchResult{Success: true, ProcessID: 99}
		})

	f.cli.SetArgs([]string{"jump", "main.go", "--line", "42", "--column", "3"})
	require.NoError(t, f.cli.Execute(context.Background()))

	assert.Contains(t, f.out.String(), "opened")
	assert.Contains(t, f.out.String(), "pid 99")
}

func TestJumpCommand_NamedEditor(t *testing.T) {
	f := newFixture(t)

	editor := domain.EditorConfig{ID: "2", Name: "goland", Path: "/opt/goland"}
	f.registry.EXPECT().Get("goland").Return(editor, nil)
	f.launcher.EXPECT().ExecuteJump(gomock.Any(), editor, gomock.Any()).
		Return(domain.LaunchResult{Success: true})

	f.cli.SetArgs([]string{"jump", "main.go", "-l", "7", "-e", "goland"})
	require.NoError(t, f.cli.Execute(context.Background()))
}

func TestJumpCommand_FailureMapsToJumpError(t *testing.T) {
	f := newFixture(t)

	editor := domain.EditorConfig{ID: "1", Name: "idea", Path: "/missing"}
	f.registry.EXPECT().Default().Return(editor, nil)
	f.launcher.EXPECT().ExecuteJump(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.LaunchResult{Success: false, Err: domain.ErrEditorNotFound})

	f.cli.SetArgs([]string{"jump", "main.go", "-l", "7"})
	err := f.cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrJumpFailed)
}

func TestEditorsList_Empty(t *testing.T) {
	f := newFixture(t)

	f.registry.EXPECT().List().Return(nil, nil)

	f.cli.SetArgs([]string{"editors", "list"})
	require.NoError(t, f.cli.Execute(context.Background()))

	assert.Contains(t, f.out.String(), "no editors configured")
}

func TestEditorsList_MarksDefault(t *testing.T) {
	f := newFixture(t)

	f.registry.EXPECT().List().Return([]domain.EditorConfig{
		{ID: "1", Name: "idea", Path: "/opt/idea", Type: "jetbrains", IsDefault: true},
		{ID: "2", Name: "goland", Path: "/opt/goland"},
	}, nil)

	f.cli.SetArgs([]string{"editors", "list"})
	require.NoError(t, f.cli.Execute(context.Background()))

	out := f.out.String()
	assert.Contains(t, out, "idea (jetbrains)")
	assert.Contains(t, out, "goland")
	assert.Contains(t, out, "●")
}

func TestEditorsList_JSON(t *testing.T) {
	f := newFixture(t)

	f.registry.EXPECT().List().Return([]domain.EditorConfig{
		{ID: "1", Name: "idea", Path: "/opt/idea", IsDefault: true},
	}, nil)

	f.cli.SetArgs([]string{"editors", "list", "--json"})
	require.NoError(t, f.cli.Execute(context.Background()))

	var configs []domain.EditorConfig
	require.NoError(t, json.Unmarshal(f.out.Bytes(), &configs))
	require.Len(t, configs, 1)
	assert.Equal(t, "idea", configs[0].Name)
}

func TestEditorsAdd(t *testing.T) {
	f := newFixture(t)

	f.registry.EXPECT().Add("idea", "/opt/idea", "jetbrains", true).
		Return(domain.EditorConfig{ID: "1", Name: "idea", Path: "/opt/idea", IsDefault: true}, nil)

	f.cli.SetArgs([]string{"editors", "add", "idea", "/opt/idea", "--type", "jetbrains", "--default"})
	require.NoError(t, f.cli.Execute(context.Background()))

	assert.Contains(t, f.out.String(), "added idea (default)")
}

func TestEditorsUpdate_OnlyChangedFlags(t *testing.T) {
	f := newFixture(t)

	newPath := "/opt/idea-ce"
	f.registry.EXPECT().Update("idea", domain.EditorUpdate{Path: &newPath}).
		Return(domain.EditorConfig{ID: "1", Name: "idea", Path: newPath}, nil)

	f.cli.SetArgs([]string{"editors", "update", "idea", "--path", "/opt/idea-ce"})
	require.NoError(t, f.cli.Execute(context.Background()))
}

func TestEditorsRemoveAndSetDefault(t *testing.T) {
	f := newFixture(t)

	f.registry.EXPECT().Delete("idea").Return(nil)
	f.cli.SetArgs([]string{"editors", "remove", "idea"})
	require.NoError(t, f.cli.Execute(context.Background()))

	f.registry.EXPECT().SetDefault("goland").Return(nil)
	f.cli.SetArgs([]string{"editors", "set-default", "goland"})
	require.NoError(t, f.cli.Execute(context.Background()))
}

func TestStatsCommand_EmitsJSON(t *testing.T) {
	f := newFixture(t)

	f.registry.EXPECT().List().Return([]domain.EditorConfig{}, nil)
	f.launcher.EXPECT().Stats().Return(domain.ExecStats{Executions: 2, Successes: 2})
	f.launcher.EXPECT().Running().Return(0)

	f.cli.SetArgs([]string{"stats"})
	require.NoError(t, f.cli.Execute(context.Background()))

	var diag map[string]any
	require.NoError(t, json.Unmarshal(f.out.Bytes(), &diag))
	assert.Contains(t, diag, "cache")
	assert.Contains(t, diag, "executions")
	assert.Contains(t, diag, "running_processes")
}
