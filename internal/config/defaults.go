package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/JohnTheGray/Neo4jClient/internal/client"
	"github.com/JohnTheGray/Neo4jClient/internal/types"
)

// DefaultConfig returns the default CLI configuration: a local server with
// streaming enabled and text logging at info level.
func DefaultConfig() *Config {
	serverDefaults := client.DefaultConfig()
	return &Config{
		Server: ServerConfig{
			RootURI:   serverDefaults.RootURI,
			Username:  serverDefaults.Username,
			Password:  serverDefaults.Password,
			Streaming: serverDefaults.Streaming,
			Timeout:   serverDefaults.Timeout,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// defaultFileHeader is prepended to generated configuration files.
const defaultFileHeader = `# neo4jclient configuration.
# String values support ${VAR_NAME} environment variable interpolation.
`

// WriteDefault renders the default configuration as YAML and writes it to
// path. The file is created with owner-only permissions since it may later
// hold credentials.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return types.WrapError(types.CONFIG_PARSE_FAILED,
			"failed to render default configuration", err)
	}

	if err := os.WriteFile(path, append([]byte(defaultFileHeader), data...), 0o600); err != nil {
		return types.WrapError(types.CONFIG_LOAD_FAILED,
			"failed to write default configuration file", err)
	}

	return nil
}
