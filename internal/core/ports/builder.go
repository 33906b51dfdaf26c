package ports

import "go.trai.ch/leap/internal/core/domain"

// CommandBuilder turns an (editor, file, line) tuple into an exact,
// platform-idiomatic command string.
//
// Invalid input (empty editor path, empty file path, line < 1) is rejected
// before any construction is attempted.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type CommandBuilder interface {
	Build(editor domain.EditorConfig, target domain.ProjectContext) (string, error)
}
