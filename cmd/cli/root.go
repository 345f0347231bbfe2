package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	flagDebug     = "debug"
	flagEnvFile   = "env-file"
	flagTransport = "transport"
	flagAddr      = "addr"
	flagLogFormat = "log-format"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cosmosdb-mcp",
		Short: "Azure Cosmos DB and Key Vault MCP server",
		Long: `cosmosdb-mcp exposes Azure Cosmos DB item operations, container queries, Key Vault
secrets and certificate expiry checks as Model Context Protocol tools.

Without a subcommand it serves MCP on stdio.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	rootCmd.PersistentFlags().Bool(flagDebug, false, "Enable debug logging")
	rootCmd.PersistentFlags().String(flagEnvFile, ".env", "Path to a dotenv file (ignored when missing)")
	rootCmd.PersistentFlags().String(flagLogFormat, "", "Override log format (auto, console, json)")
	rootCmd.PersistentFlags().String(flagTransport, "", "Override transport (stdio, http)")
	rootCmd.PersistentFlags().String(flagAddr, "", "Override HTTP listen address")

	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewToolsCommand())
	rootCmd.AddCommand(NewCallCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
