package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/JohnTheGray/Neo4jClient/internal/client"
	"github.com/JohnTheGray/Neo4jClient/internal/config"
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Negotiate a connection and report server version and capabilities",
	RunE:  runConnect,
}

// ConnectionStatus is the reported outcome of a negotiation.
type ConnectionStatus struct {
	RootURI       string            `json:"root_uri"`
	ServerVersion string            `json:"server_version"`
	Capabilities  string            `json:"capabilities"`
	RootNodeID    *int64            `json:"root_node_id,omitempty"`
	Endpoints     map[string]string `json:"endpoints"`
	Duration      time.Duration     `json:"duration"`
}

func init() {
	connectCmd.Flags().Bool("json", false, "Output status in JSON format")
	connectCmd.Flags().String("root-uri", "", "Override the configured root URI")
	connectCmd.Flags().Bool("no-streaming", false, "Disable the X-Stream request header")
}

func runConnect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if rootURI, _ := cmd.Flags().GetString("root-uri"); rootURI != "" {
		cfg.Server.RootURI = rootURI
	}
	if noStreaming, _ := cmd.Flags().GetBool("no-streaming"); noStreaming {
		cfg.Server.Streaming = false
	}

	logger := cfg.Logging.NewLogger(os.Stderr)

	gc, err := client.NewGraphClient(cfg.Server.ClientConfig(), client.WithLogger(logger))
	if err != nil {
		return err
	}

	var attemptDuration time.Duration
	gc.OnOperationCompleted(func(ev client.OperationCompletedEvent) {
		attemptDuration = ev.Duration
		logger.Debug("connection attempt completed",
			"attempt_id", ev.ID.String(),
			"has_exception", ev.HasException,
			"duration", ev.Duration)
	})

	if err := gc.Connect(ctx); err != nil {
		return err
	}

	status, err := buildConnectionStatus(gc, cfg.Server.RootURI, attemptDuration)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(cmd, status)
	}
	printConnectionStatus(cmd, status)
	return nil
}

func buildConnectionStatus(gc *client.GraphClient, rootURI string, duration time.Duration) (*ConnectionStatus, error) {
	serverVersion, err := gc.ServerVersion()
	if err != nil {
		return nil, err
	}
	capabilities, err := gc.Capabilities()
	if err != nil {
		return nil, err
	}
	descriptor, err := gc.RootDescriptor()
	if err != nil {
		return nil, err
	}

	status := &ConnectionStatus{
		RootURI:       rootURI,
		ServerVersion: serverVersion.String(),
		Capabilities:  capabilities.String(),
		Endpoints:     map[string]string{},
		Duration:      duration,
	}

	if rootNode, ok, err := gc.RootNode(); err != nil {
		return nil, err
	} else if ok {
		status.RootNodeID = &rootNode.ID
	}

	for name, uri := range map[string]string{
		"node":               descriptor.Node,
		"node_index":         descriptor.NodeIndex,
		"relationship_index": descriptor.RelationshipIndex,
		"batch":              descriptor.Batch,
		"extensions_info":    descriptor.ExtensionsInfo,
		"cypher":             descriptor.Cypher,
		"transaction":        descriptor.Transaction,
	} {
		if uri != "" {
			status.Endpoints[name] = uri
		}
	}

	return status, nil
}

func printConnectionStatus(cmd *cobra.Command, status *ConnectionStatus) {
	cmd.Printf("Connected to %s\n", status.RootURI)
	cmd.Printf("  Server version: %s\n", status.ServerVersion)
	cmd.Printf("  Capabilities:   %s\n", status.Capabilities)
	if status.RootNodeID != nil {
		cmd.Printf("  Root node:      %d\n", *status.RootNodeID)
	}
	cmd.Printf("  Endpoints:\n")
	for name, uri := range status.Endpoints {
		cmd.Printf("    %-18s %s\n", name, uri)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}

// loadConfig resolves the configuration for a command invocation, honoring
// the --config and --verbose flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("NEO4JCLIENT_CONFIG")
	}
	if path == "" {
		path = defaultConfigPath()
	}

	loader := config.NewConfigLoader(config.NewConfigValidator())
	cfg, err := loader.LoadWithDefaults(path)
	if err != nil {
		return nil, err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Logging.Level = "debug"
	}

	return cfg, nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "neo4jclient.yaml"
	}
	return fmt.Sprintf("%s/.neo4jclient/config.yaml", home)
}
