// Package registry persists the ordered editor config list and keeps it
// in sync with on-disk edits.
package registry

import (
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/leap/internal/adapters/cache"
	"go.trai.ch/leap/internal/core/domain"
	"go.trai.ch/leap/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the registry file name inside the config directory.
	FileName = "editors.yaml"

	filePerm = 0o600
	cacheKey = "editors"
)

// editorFile is the on-disk yaml layout.
type editorFile struct {
	Editors []domain.EditorConfig `yaml:"editors"`
}

// Registry implements ports.EditorRegistry on top of a single yaml file.
//
// The decoded file is cached in the settings scope so read-heavy callers
// do not hit the disk on every lookup; the scope's short TTL bounds how
// stale a read can be. A file watcher invalidates the cache when the file
// changes underneath us.
type Registry struct {
	mu       sync.Mutex
	path     string
	logger   ports.Logger
	settings *cache.Scope
	watch    *watcher
}

// NewRegistry opens (or initializes) the registry at path. The store, when
// non-nil, backs the settings read cache. The containing directory is
// watched for external edits.
func NewRegistry(path string, store *cache.Store, logger ports.Logger) (*Registry, error) {
	r := &Registry{
		path:   path,
		logger: logger,
	}
	if store != nil {
		r.settings = cache.Settings(store)
	}

	// Surface unreadable or corrupt files at construction, not first use.
	if _, err := r.load(); err != nil {
		return nil, err
	}

	w, err := newWatcher(r)
	if err != nil {
		logger.Warn("editor registry file watching disabled: " + err.Error())
	} else {
		r.watch = w
	}
	return r, nil
}

// List returns all configs in stored order.
func (r *Registry) List() ([]domain.EditorConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	configs, err := r.load()
	if err != nil {
		return nil, err
	}
	return slices.Clone(configs), nil
}

// Get returns the config with the given name.
func (r *Registry) Get(name string) (domain.EditorConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	configs, err := r.load()
	if err != nil {
		return domain.EditorConfig{}, err
	}
	for _, cfg := range configs {
		if cfg.Name == name {
			return cfg, nil
		}
	}
	return domain.EditorConfig{}, zerr.With(domain.ErrEditorConfigNotFound, "name", name)
}

// Default returns the default config.
func (r *Registry) Default() (domain.EditorConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	configs, err := r.load()
	if err != nil {
		return domain.EditorConfig{}, err
	}
	for _, cfg := range configs {
		if cfg.IsDefault {
			return cfg, nil
		}
	}
	return domain.EditorConfig{}, domain.ErrNoDefaultEditor
}

// Add creates a config. The first config in an empty registry becomes the
// default regardless of makeDefault.
func (r *Registry) Add(name, path, editorType string, makeDefault bool) (domain.EditorConfig, error) {
	if name == "" {
		return domain.EditorConfig{}, domain.ErrNoEditorName
	}
	if path == "" {
		return domain.EditorConfig{}, domain.ErrEmptyEditorPath
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	configs, err := r.load()
	if err != nil {
		return domain.EditorConfig{}, err
	}
	for _, cfg := range configs {
		if cfg.Name == name {
			return domain.EditorConfig{}, zerr.With(domain.ErrDuplicateEditorName, "name", name)
		}
	}

	now := time.Now().UTC()
	cfg := domain.EditorConfig{
		ID:        uuid.NewString(),
		Name:      name,
		Path:      path,
		Type:      editorType,
		IsDefault: makeDefault || len(configs) == 0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := domain.ValidateStruct(cfg); err != nil {
		return domain.EditorConfig{}, err
	}

	if cfg.IsDefault {
		for i := range configs {
			configs[i].IsDefault = false
		}
	}
	configs = append(configs, cfg)

	if err := r.persist(configs); err != nil {
		return domain.EditorConfig{}, err
	}
	return cfg, nil
}

// Update applies the non-nil fields of upd and bumps UpdatedAt. ID and
// CreatedAt are immutable.
func (r *Registry) Update(name string, upd domain.EditorUpdate) (domain.EditorConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	configs, err := r.load()
	if err != nil {
		return domain.EditorConfig{}, err
	}

	idx := slices.IndexFunc(configs, func(c domain.EditorConfig) bool { return c.Name == name })
	if idx < 0 {
		return domain.EditorConfig{}, zerr.With(domain.ErrEditorConfigNotFound, "name", name)
	}

	cfg := configs[idx]
	if upd.Name != nil && *upd.Name != cfg.Name {
		if *upd.Name == "" {
			return domain.EditorConfig{}, domain.ErrNoEditorName
		}
		for _, other := range configs {
			if other.Name == *upd.Name {
				return domain.EditorConfig{}, zerr.With(domain.ErrDuplicateEditorName, "name", *upd.Name)
			}
		}
		cfg.Name = *upd.Name
	}
	if upd.Path != nil {
		if *upd.Path == "" {
			return domain.EditorConfig{}, domain.ErrEmptyEditorPath
		}
		cfg.Path = *upd.Path
	}
	if upd.Type != nil {
		cfg.Type = *upd.Type
	}
	cfg.UpdatedAt = time.Now().UTC()

	configs[idx] = cfg
	if err := r.persist(configs); err != nil {
		return domain.EditorConfig{}, err
	}
	return cfg, nil
}

// Delete removes a config. If it was the default, the first remaining
// config (if any) becomes the default.
func (r *Registry) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	configs, err := r.load()
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(configs, func(c domain.EditorConfig) bool { return c.Name == name })
	if idx < 0 {
		return zerr.With(domain.ErrEditorConfigNotFound, "name", name)
	}

	wasDefault := configs[idx].IsDefault
	configs = slices.Delete(configs, idx, idx+1)
	if wasDefault && len(configs) > 0 {
		configs[0].IsDefault = true
		configs[0].UpdatedAt = time.Now().UTC()
	}

	return r.persist(configs)
}

// SetDefault marks the named config as the single default.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	configs, err := r.load()
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(configs, func(c domain.EditorConfig) bool { return c.Name == name })
	if idx < 0 {
		return zerr.With(domain.ErrEditorConfigNotFound, "name", name)
	}

	for i := range configs {
		configs[i].IsDefault = i == idx
	}
	configs[idx].UpdatedAt = time.Now().UTC()

	return r.persist(configs)
}

// Close stops the file watcher.
func (r *Registry) Close() error {
	if r.watch == nil {
		return nil
	}
	return r.watch.close()
}

// load returns the decoded registry, consulting the settings cache first.
// Callers must hold r.mu.
func (r *Registry) load() ([]domain.EditorConfig, error) {
	if r.settings != nil {
		if v, ok := r.settings.Get(cacheKey); ok {
			if configs, ok := v.([]domain.EditorConfig); ok {
				return configs, nil
			}
		}
	}

	configs, err := r.read()
	if err != nil {
		return nil, err
	}
	if r.settings != nil {
		r.settings.Set(cacheKey, configs)
	}
	return configs, nil
}

// read decodes the registry file. A missing file is an empty registry.
// External edits may violate the single-default invariant; read repairs it
// in memory, first marked entry winning.
func (r *Registry) read() ([]domain.EditorConfig, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrRegistryReadFailed.Error())
	}

	var file editorFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryParseFailed.Error())
	}

	configs := file.Editors
	seenDefault := false
	for i := range configs {
		if configs[i].IsDefault {
			if seenDefault {
				configs[i].IsDefault = false
			}
			seenDefault = true
		}
	}
	if !seenDefault && len(configs) > 0 {
		configs[0].IsDefault = true
	}
	return configs, nil
}

// persist writes the registry atomically (temp file + rename) and
// refreshes the settings cache. Callers must hold r.mu.
func (r *Registry) persist(configs []domain.EditorConfig) error {
	raw, err := yaml.Marshal(editorFile{Editors: configs})
	if err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".editors-*.yaml")
	if err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}

	if r.settings != nil {
		r.settings.Set(cacheKey, configs)
	}
	return nil
}

// invalidate drops the cached decode after an external file change.
func (r *Registry) invalidate() {
	if r.settings != nil {
		r.settings.Delete(cacheKey)
	}
	r.logger.Info("editor registry changed on disk, cache invalidated")
}
