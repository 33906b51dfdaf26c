package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print a diagnostics snapshot as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			diag, err := c.app.Diagnostics()
			if err != nil {
				return err
			}

			raw, err := json.MarshalIndent(diag, "", "  ")
			if err != nil {
				return zerr.Wrap(err, "failed to encode diagnostics")
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return nil
		},
	}
}
