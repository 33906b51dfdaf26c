// Package commands implements the CLI commands for the leap jump tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/leap/internal/app"
	"go.trai.ch/leap/internal/build"
	"go.trai.ch/leap/internal/core/domain"
	"go.trai.ch/leap/internal/core/ports"
)

// CLI represents the command line interface for leap.
type CLI struct {
	app     Application
	editors ports.EditorRegistry
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Jump(ctx context.Context, editorName string, target domain.ProjectContext) (domain.LaunchResult, error)
	Diagnostics() (app.Diagnostics, error)
}

// New creates a new CLI instance with the given app and editor registry.
func New(a Application, editors ports.EditorRegistry) *CLI {
	rootCmd := &cobra.Command{
		Use:           "leap",
		Short:         "Jump to the same file and line in an external editor",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		editors: editors,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newJumpCmd())
	rootCmd.AddCommand(c.newEditorsCmd())
	rootCmd.AddCommand(c.newStatsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
