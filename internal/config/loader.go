package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/JohnTheGray/Neo4jClient/internal/types"
)

// ConfigLoader handles loading configuration from files.
type ConfigLoader interface {
	Load(path string) (*Config, error)
	LoadWithDefaults(path string) (*Config, error)
}

// viperConfigLoader implements ConfigLoader using Viper.
type viperConfigLoader struct {
	validator ConfigValidator
}

// NewConfigLoader creates a new ConfigLoader instance.
func NewConfigLoader(validator ConfigValidator) ConfigLoader {
	return &viperConfigLoader{
		validator: validator,
	}
}

// Load loads configuration from the specified file path.
// Returns an error if the file doesn't exist or cannot be parsed.
func (l *viperConfigLoader) Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults keep absent keys from collapsing to zero values; streaming
	// in particular defaults to enabled.
	defaults := DefaultConfig()
	v.SetDefault("server.root_uri", defaults.Server.RootURI)
	v.SetDefault("server.streaming", defaults.Server.Streaming)
	v.SetDefault("server.timeout", defaults.Server.Timeout)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	if err := v.ReadInConfig(); err != nil {
		return nil, types.WrapError(types.CONFIG_LOAD_FAILED,
			"failed to read config file", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, types.WrapError(types.CONFIG_PARSE_FAILED,
			"failed to unmarshal config", err)
	}

	interpolateConfig(&cfg)

	if err := l.validator.Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration from the specified file path.
// If the file doesn't exist, returns the default configuration.
func (l *viperConfigLoader) LoadWithDefaults(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := l.validator.Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return l.Load(path)
}

// interpolateConfig applies ${VAR_NAME} environment variable interpolation
// to the string-valued configuration fields.
func interpolateConfig(cfg *Config) {
	cfg.Server.RootURI = interpolateString(cfg.Server.RootURI)
	cfg.Server.Username = interpolateString(cfg.Server.Username)
	cfg.Server.Password = interpolateString(cfg.Server.Password)
	cfg.Logging.Level = interpolateString(cfg.Logging.Level)
	cfg.Logging.Format = interpolateString(cfg.Logging.Format)
}

// envVarPattern matches ${VAR_NAME} references.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// interpolateString replaces ${VAR_NAME} with environment variable values.
// Unset variables interpolate to the empty string.
func interpolateString(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		return os.Getenv(varName)
	})
}
