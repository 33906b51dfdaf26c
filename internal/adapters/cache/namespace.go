package cache

import (
	"time"

	"go.trai.ch/leap/internal/core/domain"
	"go.trai.ch/leap/internal/core/ports"
)

// Component default TTLs. Settings change often and must be observed
// quickly; resolved paths and built commands are stable for a few seconds.
const (
	SettingsTTL    = time.Second
	ProjectPathTTL = 5 * time.Second
	EditorStateTTL = 5 * time.Second
)

// Scope is a namespaced view of a cache with a component default TTL.
// Keys from different scopes never collide.
type Scope struct {
	cache ports.Cache
	name  string
	ttl   time.Duration
}

// NewScope creates a scope over c with the given namespace and default TTL.
func NewScope(c ports.Cache, name string, ttl time.Duration) (*Scope, error) {
	if err := domain.ValidateTTL(ttl); err != nil {
		return nil, err
	}
	return &Scope{cache: c, name: name, ttl: ttl}, nil
}

// Settings returns the scope for host-settings lookups.
func Settings(c ports.Cache) *Scope {
	return &Scope{cache: c, name: "settings", ttl: SettingsTTL}
}

// ProjectPath returns the scope for resolved filesystem path lookups.
func ProjectPath(c ports.Cache) *Scope {
	return &Scope{cache: c, name: "project_path", ttl: ProjectPathTTL}
}

// EditorState returns the scope for built commands and editor state.
func EditorState(c ports.Cache) *Scope {
	return &Scope{cache: c, name: "editor_state", ttl: EditorStateTTL}
}

// Key returns the fully qualified cache key for the given suffix.
func (s *Scope) Key(suffix string) string {
	return s.name + ":" + suffix
}

// TTL returns the scope's default TTL.
func (s *Scope) TTL() time.Duration {
	return s.ttl
}

// Set stores data under the scoped key with the scope TTL.
func (s *Scope) Set(key string, data any) bool {
	return s.cache.Set(s.Key(key), data, s.ttl)
}

// Get returns the scoped value if present and unexpired.
func (s *Scope) Get(key string) (any, bool) {
	return s.cache.Get(s.Key(key))
}

// Has reports scoped presence without refreshing the access timestamp.
func (s *Scope) Has(key string) bool {
	return s.cache.Has(s.Key(key))
}

// Delete removes the scoped entry.
func (s *Scope) Delete(key string) bool {
	return s.cache.Delete(s.Key(key))
}
