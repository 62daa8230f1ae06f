package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/cellfn/internal/cli"
	"github.com/aretw0/cellfn/internal/presentation/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered functions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		all, _ := cmd.Flags().GetBool("all")
		asJSON, _ := cmd.Flags().GetBool("json")
		plain, _ := cmd.Flags().GetBool("plain")

		descs := cli.Filter(app.registry.Descriptors(), category, all)
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(descs)
		}
		if len(descs) == 0 {
			return fmt.Errorf("no functions in category %q (known: %v)", category, app.registry.Categories())
		}

		render, err := tui.NewRenderer(plain)
		if err != nil {
			return err
		}
		out, err := render(cli.ListMarkdown(descs))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("category", "c", "", "Only list functions of this category")
	listCmd.Flags().Bool("all", false, "Include hidden functions")
	listCmd.Flags().Bool("json", false, "Print descriptors as JSON")
	listCmd.Flags().Bool("plain", false, "Print raw markdown")
}
