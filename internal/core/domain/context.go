package domain

// ProjectContext is an immutable snapshot of the trigger position: where
// the user currently is and what file/line the external editor should open.
// It is derived per trigger event and never persisted.
//
// Line and Column are 1-based.
type ProjectContext struct {
	RootPath      string `json:"root_path"`
	FilePath      string `json:"file_path" validate:"required"`
	Line          int    `json:"line" validate:"min=1"`
	Column        int    `json:"column" validate:"min=1"`
	WorkspaceName string `json:"workspace_name,omitempty"`
	ProjectType   string `json:"project_type,omitempty"`
}
