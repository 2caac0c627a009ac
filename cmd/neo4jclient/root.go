package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "neo4jclient",
	Short: "Connect to a Neo4j server over HTTP and inspect its capabilities",
	Long: `neo4jclient negotiates a session against a Neo4j server's HTTP API:
it fetches the root discovery resource, resolves the server version, and
reports the Cypher capability set and advertised endpoints.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to configuration file (YAML)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command with signal-aware context cancellation.
func Execute(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}
