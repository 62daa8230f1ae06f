package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/cellfn"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cellfn",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cellfn version %s\n", strings.TrimSpace(cellfn.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
