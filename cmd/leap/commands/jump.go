package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/leap/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newJumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jump <file>",
		Short: "Open the file at the given position in an external editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, _ := cmd.Flags().GetInt("line")
			column, _ := cmd.Flags().GetInt("column")
			editor, _ := cmd.Flags().GetString("editor")
			root, _ := cmd.Flags().GetString("root")

			file, err := filepath.Abs(args[0])
			if err != nil {
				return zerr.Wrap(err, "failed to resolve file path")
			}
			if root == "" {
				if root, err = os.Getwd(); err != nil {
					return zerr.Wrap(err, "failed to resolve project root")
				}
			}

			target := domain.ProjectContext{
				RootPath: root,
				FilePath: file,
				Line:     line,
				Column:   column,
			}

			result, err := c.app.Jump(cmd.Context(), editor, target)
			if err != nil {
				return err
			}
			if !result.Success {
				// The launcher already logged the failure with its cause.
				return zerr.With(domain.ErrJumpFailed, "command", result.Command)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "opened %s:%d (pid %d, %s)\n",
				file, line, result.ProcessID, result.ExecutionTime.Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().IntP("line", "l", 1, "1-based line number to jump to")
	cmd.Flags().IntP("column", "c", 1, "1-based column number to jump to")
	cmd.Flags().StringP("editor", "e", "", "Editor config name (defaults to the registry default)")
	cmd.Flags().StringP("root", "r", "", "Project root path (defaults to the working directory)")
	return cmd
}
