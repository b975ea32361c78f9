package config

import (
	"fmt"

	"github.com/kbukum/launchkit/logger"
	"github.com/kbukum/launchkit/validation"
)

// Config is the launchkit supervisor configuration.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging    logger.Config    `yaml:"logging" mapstructure:"logging"`
	Dependency DependencyConfig `yaml:"dependency" mapstructure:"dependency"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Telemetry  TelemetryConfig  `yaml:"telemetry" mapstructure:"telemetry"`
}

// DependencyConfig names the external binary the host must provide before
// the application server can start.
type DependencyConfig struct {
	Name string `yaml:"name" mapstructure:"name" validate:"required"`
}

// ServerConfig describes the application server the supervisor hands off to.
type ServerConfig struct {
	// Binary is the application server entry point.
	Binary string `yaml:"binary" mapstructure:"binary" validate:"required"`
	// Port is the raw bind port value from the PORT environment variable.
	// It has no default and is validated at launch time, not here: missing
	// and malformed values must surface as one launch error kind.
	Port string `yaml:"port" mapstructure:"port"`
	// Handoff selects the handoff strategy: "exec" replaces the process
	// image, "spawn" runs the server as a child and forwards its exit status.
	Handoff string `yaml:"handoff" mapstructure:"handoff" validate:"oneof=exec spawn"`
}

// TelemetryConfig controls optional OpenTelemetry tracing of the bootstrap.
type TelemetryConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "launchkit"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Dependency.Name == "" {
		c.Dependency.Name = "ffmpeg"
	}
	if c.Server.Binary == "" {
		c.Server.Binary = "/app/server"
	}
	if c.Server.Handoff == "" {
		c.Server.Handoff = "exec"
	}
	if c.Telemetry.Endpoint == "" {
		c.Telemetry.Endpoint = "localhost:4318"
	}
	if c.Telemetry.SampleRate == 0 {
		c.Telemetry.SampleRate = 1.0
	}
	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration. The bind port is exempt: its
// resolution is a launch-time concern with its own error kind.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return validation.Validate(c)
}
