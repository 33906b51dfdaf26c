package ports

import "go.trai.ch/leap/internal/core/domain"

// EditorRegistry manages the persisted, ordered list of editor configs.
//
// Invariant: after any sequence of operations a non-empty registry has
// exactly one default config; an empty registry has none.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type EditorRegistry interface {
	// List returns all configs in stored order.
	List() ([]domain.EditorConfig, error)

	// Get returns the config with the given name.
	Get(name string) (domain.EditorConfig, error)

	// Default returns the default config, or ErrNoDefaultEditor when the
	// registry is empty.
	Default() (domain.EditorConfig, error)

	// Add creates a config. The first config added to an empty registry
	// becomes the default regardless of makeDefault.
	Add(name, path, editorType string, makeDefault bool) (domain.EditorConfig, error)

	// Update applies the non-nil fields of upd and bumps UpdatedAt.
	// ID and CreatedAt are immutable.
	Update(name string, upd domain.EditorUpdate) (domain.EditorConfig, error)

	// Delete removes a config. If it was the default, the first remaining
	// config (if any) becomes the default.
	Delete(name string) error

	// SetDefault marks the named config as the single default.
	SetDefault(name string) error

	// Close releases registry resources (file watcher).
	Close() error
}
