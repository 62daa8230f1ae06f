package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/cellfn/internal/cli"
	"github.com/aretw0/cellfn/internal/presentation/tui"
)

var describeCmd = &cobra.Command{
	Use:   "describe [function]",
	Short: "Show the documentation of a function",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		plain, _ := cmd.Flags().GetBool("plain")

		if _, err := app.registry.Lookup(args[0]); err != nil {
			return err
		}
		d, _ := app.registry.Get(args[0])

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		}

		render, err := tui.NewRenderer(plain)
		if err != nil {
			return err
		}
		out, err := render(cli.DescribeMarkdown(d))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().Bool("json", false, "Print the descriptor as JSON")
	describeCmd.Flags().Bool("plain", false, "Print raw markdown")
}
