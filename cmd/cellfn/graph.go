package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/cellfn/internal/cli"
	"github.com/aretw0/cellfn/internal/presentation/graph"
)

var graphCmd = &cobra.Command{
	Use:   "graph [functions to highlight...]",
	Short: "Print the function catalogue as a Mermaid diagram",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		var overlay *graph.Overlay
		if len(args) > 0 {
			for _, name := range args {
				if _, err := app.registry.Lookup(name); err != nil {
					return err
				}
			}
			overlay = &graph.Overlay{Highlight: args}
		}

		descs := cli.Filter(app.registry.Descriptors(), "", all)
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(descs, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("all", false, "Include hidden functions")
}
