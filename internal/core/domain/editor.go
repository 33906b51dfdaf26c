package domain

import "time"

// EditorConfig describes one externally launchable editor.
//
// ID and CreatedAt are assigned on creation and never change afterwards.
// At most one config in a registry has IsDefault set.
type EditorConfig struct {
	ID        string    `json:"id" yaml:"id" validate:"required"`
	Name      string    `json:"name" yaml:"name" validate:"required"`
	Path      string    `json:"path" yaml:"path" validate:"required"`
	Type      string    `json:"type,omitempty" yaml:"type,omitempty"`
	IsDefault bool      `json:"default" yaml:"default"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// EditorUpdate carries the mutable fields of an EditorConfig.
// Nil fields are left untouched.
type EditorUpdate struct {
	Name *string
	Path *string
	Type *string
}
