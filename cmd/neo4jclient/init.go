package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JohnTheGray/Neo4jClient/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().String("path", "", "Destination path (default: ~/.neo4jclient/config.yaml)")
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	if path == "" {
		path = defaultConfigPath()
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		cmd.Printf("Configuration already exists at %s (use --force to overwrite)\n", path)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	if err := config.WriteDefault(path); err != nil {
		return err
	}

	cmd.Printf("Wrote default configuration to %s\n", path)
	return nil
}
