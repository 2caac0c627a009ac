// Package config loads and validates file-based configuration for the
// neo4jclient CLI. Configuration is YAML, loaded through Viper, with
// ${VAR_NAME} environment variable interpolation in string values.
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/JohnTheGray/Neo4jClient/internal/client"
)

// Config is the root configuration for the neo4jclient CLI.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig contains connection settings for the graph server.
type ServerConfig struct {
	RootURI   string        `mapstructure:"root_uri" yaml:"root_uri"`
	Username  string        `mapstructure:"username" yaml:"username,omitempty"`
	Password  string        `mapstructure:"password" yaml:"password,omitempty"`
	Streaming bool          `mapstructure:"streaming" yaml:"streaming"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// ClientConfig converts the server section into a client.Config.
func (s ServerConfig) ClientConfig() client.Config {
	return client.Config{
		RootURI:   s.RootURI,
		Username:  s.Username,
		Password:  s.Password,
		Streaming: s.Streaming,
		Timeout:   s.Timeout,
	}
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `mapstructure:"level" yaml:"level"`

	// Format is "text" or "json".
	Format string `mapstructure:"format" yaml:"format"`
}

// NewLogger builds a slog.Logger honoring the configured level and format.
func (l LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(l.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
