package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/aretw0/cellfn/internal/cli"
	"github.com/aretw0/cellfn/internal/presentation/tui"
	"github.com/aretw0/cellfn/pkg/pipeline"
)

var evalCmd = &cobra.Command{
	Use:   "eval [function] [args...]",
	Short: "Call a function",
	Long: `Calls a function with arguments given as JSON words:

  cellfn eval SUM 1 2 3
  cellfn eval UPPER hello
  cellfn eval VLOOKUP b '[["a","b"],[1,2]]' 2
  cellfn eval ROUND 2.5 null

Ranges are arrays of columns. Words that are not valid JSON are text.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		call, err := app.registry.Lookup(args[0])
		if err != nil {
			return err
		}
		callArgs, err := cli.ParseArgs(args[1:])
		if err != nil {
			return err
		}

		out := call(pipeline.StaticContext{LocaleName: app.cfg.Locale}, callArgs...)
		if asJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
		}
		return tui.NewPrinter(cmd.OutOrStdout()).Print(out)
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Bool("json", false, "Print the output as JSON")
}
