package registry_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/leap/internal/adapters/cache"
	"go.trai.ch/leap/internal/adapters/registry"
	"go.trai.ch/leap/internal/core/domain"
	"go.trai.ch/leap/internal/core/ports"
)

type noopLogger struct{}

func (noopLogger) Info(string)         {}
func (noopLogger) Warn(string)         {}
func (noopLogger) Error(error)         {}
func (noopLogger) SetJSON(bool)        {}
func (noopLogger) SetOutput(io.Writer) {}

func newRegistry(t *testing.T) (*registry.Registry, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), registry.FileName)
	r, err := registry.NewRegistry(path, nil, noopLogger{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r, path
}

func countDefaults(t *testing.T, r ports.EditorRegistry) int {
	t.Helper()
	configs, err := r.List()
	require.NoError(t, err)
	n := 0
	for _, cfg := range configs {
		if cfg.IsDefault {
			n++
		}
	}
	return n
}

func TestRegistry_FirstAddBecomesDefault(t *testing.T) {
	r, _ := newRegistry(t)

	cfg, err := r.Add("idea", "/opt/idea/bin/idea", "jetbrains", false)
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.ID)
	assert.True(t, cfg.IsDefault)
	assert.False(t, cfg.CreatedAt.IsZero())
	assert.Equal(t, cfg.CreatedAt, cfg.UpdatedAt)

	got, err := r.Default()
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, got.ID)
}

func TestRegistry_AddValidation(t *testing.T) {
	r, _ := newRegistry(t)

	_, err := r.Add("", "/opt/idea", "", false)
	require.ErrorIs(t, err, domain.ErrNoEditorName)

	_, err = r.Add("idea", "", "", false)
	require.ErrorIs(t, err, domain.ErrEmptyEditorPath)

	_, err = r.Add("idea", "/opt/idea", "", false)
	require.NoError(t, err)
	_, err = r.Add("idea", "/other/idea", "", false)
	require.ErrorIs(t, err, domain.ErrDuplicateEditorName)
}

func TestRegistry_DefaultInvariantAcrossOperations(t *testing.T) {
	r, _ := newRegistry(t)

	_, err := r.Add("idea", "/opt/idea", "", false)
	require.NoError(t, err)
	assert.Equal(t, 1, countDefaults(t, r))

	// makeDefault on a later add moves the flag.
	_, err = r.Add("goland", "/opt/goland", "", true)
	require.NoError(t, err)
	assert.Equal(t, 1, countDefaults(t, r))
	def, err := r.Default()
	require.NoError(t, err)
	assert.Equal(t, "goland", def.Name)

	_, err = r.Add("clion", "/opt/clion", "", false)
	require.NoError(t, err)
	assert.Equal(t, 1, countDefaults(t, r))

	require.NoError(t, r.SetDefault("clion"))
	assert.Equal(t, 1, countDefaults(t, r))
	def, err = r.Default()
	require.NoError(t, err)
	assert.Equal(t, "clion", def.Name)

	// Deleting the default promotes the first remaining config.
	require.NoError(t, r.Delete("clion"))
	assert.Equal(t, 1, countDefaults(t, r))
	def, err = r.Default()
	require.NoError(t, err)
	assert.Equal(t, "idea", def.Name)

	require.NoError(t, r.Delete("idea"))
	require.NoError(t, r.Delete("goland"))
	assert.Equal(t, 0, countDefaults(t, r))
	_, err = r.Default()
	require.ErrorIs(t, err, domain.ErrNoDefaultEditor)
}

func TestRegistry_Get(t *testing.T) {
	r, _ := newRegistry(t)

	added, err := r.Add("idea", "/opt/idea", "", false)
	require.NoError(t, err)

	got, err := r.Get("idea")
	require.NoError(t, err)
	assert.Equal(t, added, got)

	_, err = r.Get("missing")
	require.ErrorIs(t, err, domain.ErrEditorConfigNotFound)
}

func TestRegistry_Update(t *testing.T) {
	r, _ := newRegistry(t)

	added, err := r.Add("idea", "/opt/idea", "", false)
	require.NoError(t, err)
	_, err = r.Add("goland", "/opt/goland", "", false)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	newName := "idea-ce"
	newPath := "/opt/idea-ce/bin/idea"
	updated, err := r.Update("idea", domain.EditorUpdate{Name: &newName, Path: &newPath})
	require.NoError(t, err)

	assert.Equal(t, added.ID, updated.ID)
	assert.Equal(t, added.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "idea-ce", updated.Name)
	assert.Equal(t, newPath, updated.Path)
	assert.True(t, updated.UpdatedAt.After(added.UpdatedAt))

	// Renaming onto an existing name is rejected.
	taken := "goland"
	_, err = r.Update("idea-ce", domain.EditorUpdate{Name: &taken})
	require.ErrorIs(t, err, domain.ErrDuplicateEditorName)

	empty := ""
	_, err = r.Update("idea-ce", domain.EditorUpdate{Path: &empty})
	require.ErrorIs(t, err, domain.ErrEmptyEditorPath)

	_, err = r.Update("missing", domain.EditorUpdate{})
	require.ErrorIs(t, err, domain.ErrEditorConfigNotFound)
}

func TestRegistry_PersistsAcrossInstances(t *testing.T) {
	r, path := newRegistry(t)

	_, err := r.Add("idea", "/opt/idea", "jetbrains", false)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	reopened, err := registry.NewRegistry(path, nil, noopLogger{})
	require.NoError(t, err)
	defer reopened.Close()

	configs, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, "idea", configs[0].Name)
	assert.Equal(t, "jetbrains", configs[0].Type)
	assert.True(t, configs[0].IsDefault)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRegistry_CorruptFileRejectedAtOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), registry.FileName)
	require.NoError(t, os.WriteFile(path, []byte("editors: [not: valid: yaml"), 0o600))

	_, err := registry.NewRegistry(path, nil, noopLogger{})
	require.Error(t, err)
}

func TestRegistry_RepairsExternallyBrokenDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), registry.FileName)
	raw := `editors:
  - id: a
    name: idea
    path: /opt/idea
    default: true
  - id: b
    name: goland
    path: /opt/goland
    default: true
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	r, err := registry.NewRegistry(path, nil, noopLogger{})
	require.NoError(t, err)
	defer r.Close()

	// Two defaults on disk; the first marked entry wins.
	assert.Equal(t, 1, countDefaults(t, r))
	def, err := r.Default()
	require.NoError(t, err)
	assert.Equal(t, "idea", def.Name)
}

func TestRegistry_WatcherInvalidatesCachedReads(t *testing.T) {
	path := filepath.Join(t.TempDir(), registry.FileName)

	store, err := cache.NewStore(noopLogger{})
	require.NoError(t, err)
	defer store.Stop()

	cached, err := registry.NewRegistry(path, store, noopLogger{})
	require.NoError(t, err)
	defer cached.Close()

	configs, err := cached.List()
	require.NoError(t, err)
	assert.Empty(t, configs)

	// A second instance writing the same file stands in for an external
	// editor of the config.
	writer, err := registry.NewRegistry(path, nil, noopLogger{})
	require.NoError(t, err)
	defer writer.Close()
	_, err = writer.Add("idea", "/opt/idea", "", false)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		configs, err := cached.List()
		return err == nil && len(configs) == 1
	}, 3*time.Second, 25*time.Millisecond)
}
