package main

import (
	"github.com/spf13/cobra"

	"github.com/JohnTheGray/Neo4jClient/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build version information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("json", false, "Output version info in JSON format")
}

func runVersion(cmd *cobra.Command, args []string) error {
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(cmd, version.Info())
	}
	cmd.Println(version.String())
	return nil
}
