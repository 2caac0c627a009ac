package config

import (
	"fmt"
	"strings"

	"github.com/JohnTheGray/Neo4jClient/internal/types"
)

// ConfigValidator validates a loaded configuration.
type ConfigValidator interface {
	Validate(cfg *Config) error
}

// defaultValidator implements ConfigValidator.
type defaultValidator struct{}

// NewConfigValidator creates a new ConfigValidator instance.
func NewConfigValidator() ConfigValidator {
	return &defaultValidator{}
}

// Validate checks the configuration for structural problems. The server
// section delegates to the client configuration's own validation.
func (v *defaultValidator) Validate(cfg *Config) error {
	if cfg == nil {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "configuration is nil")
	}

	if err := cfg.Server.ClientConfig().Validate(); err != nil {
		return types.WrapError(types.CONFIG_VALIDATION_FAILED,
			"invalid server configuration", err)
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("invalid logging level: %q", cfg.Logging.Level))
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case "text", "json":
	default:
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("invalid logging format: %q", cfg.Logging.Format))
	}

	return nil
}
