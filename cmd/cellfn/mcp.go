package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/cellfn"
	"github.com/aretw0/cellfn/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Serves the function registry as an MCP server over standard input and output.
AI agents can list, describe and invoke functions as tools.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := mcp.NewServer(app.registry, strings.TrimSpace(cellfn.Version), app.cfg.Locale)

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		app.logger.Info("starting cellfn MCP server (stdio)")
		if err := srv.ServeStdio(); err != nil {
			return fmt.Errorf("MCP server failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
