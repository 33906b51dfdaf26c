package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/leap/internal/core/domain"
	"go.trai.ch/leap/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newEditorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "editors",
		Short: "Manage the editor configs",
	}
	cmd.AddCommand(c.newEditorsListCmd())
	cmd.AddCommand(c.newEditorsAddCmd())
	cmd.AddCommand(c.newEditorsRemoveCmd())
	cmd.AddCommand(c.newEditorsUpdateCmd())
	cmd.AddCommand(c.newEditorsSetDefaultCmd())
	return cmd
}

func (c *CLI) newEditorsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured editors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configs, err := c.editors.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				raw, err := json.MarshalIndent(configs, "", "  ")
				if err != nil {
					return zerr.Wrap(err, "failed to encode editor configs")
				}
				_, _ = fmt.Fprintln(out, string(raw))
				return nil
			}
			if len(configs) == 0 {
				_, _ = fmt.Fprintln(out, "no editors configured; add one with 'leap editors add'")
				return nil
			}
			for _, cfg := range configs {
				marker := " "
				if cfg.IsDefault {
					marker = style.Dot
				}
				label := cfg.Name
				if cfg.Type != "" {
					label += " (" + cfg.Type + ")"
				}
				_, _ = fmt.Fprintf(out, "%s %-24s %s\n", marker, label, cfg.Path)
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Emit the editor configs as JSON")
	return cmd
}

func (c *CLI) newEditorsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name> <path>",
		Short: "Add an editor config",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			editorType, _ := cmd.Flags().GetString("type")
			makeDefault, _ := cmd.Flags().GetBool("default")

			cfg, err := c.editors.Add(args[0], args[1], editorType, makeDefault)
			if err != nil {
				return err
			}

			suffix := ""
			if cfg.IsDefault {
				suffix = " (default)"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s added %s%s\n", style.Check, cfg.Name, suffix)
			return nil
		},
	}
	cmd.Flags().StringP("type", "t", "", "Editor type label, e.g. jetbrains")
	cmd.Flags().BoolP("default", "d", false, "Make this the default editor")
	return cmd
}

func (c *CLI) newEditorsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an editor config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.editors.Delete(args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s removed %s\n", style.Check, args[0])
			return nil
		},
	}
}

func (c *CLI) newEditorsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Update an editor config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd domain.EditorUpdate
			if cmd.Flags().Changed("name") {
				name, _ := cmd.Flags().GetString("name")
				upd.Name = &name
			}
			if cmd.Flags().Changed("path") {
				path, _ := cmd.Flags().GetString("path")
				upd.Path = &path
			}
			if cmd.Flags().Changed("type") {
				editorType, _ := cmd.Flags().GetString("type")
				upd.Type = &editorType
			}

			cfg, err := c.editors.Update(args[0], upd)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s updated %s\n", style.Check, cfg.Name)
			return nil
		},
	}
	cmd.Flags().String("name", "", "New editor name")
	cmd.Flags().String("path", "", "New executable path")
	cmd.Flags().String("type", "", "New editor type label")
	return cmd
}

func (c *CLI) newEditorsSetDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-default <name>",
		Short: "Make the named editor the default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.editors.SetDefault(args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s default is now %s\n", style.Check, args[0])
			return nil
		},
	}
}
