package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that override
// them. PORT deliberately has no corresponding default: the hosting
// environment is the only source for it.
var envBindings = map[string]string{
	"environment":        "LAUNCHKIT_ENV",
	"server.port":        "PORT",
	"server.binary":      "LAUNCHKIT_SERVER_BINARY",
	"server.handoff":     "LAUNCHKIT_HANDOFF",
	"dependency.name":    "LAUNCHKIT_DEPENDENCY",
	"logging.level":      "LOG_LEVEL",
	"logging.format":     "LOG_FORMAT",
	"logging.output":     "LOG_OUTPUT",
	"logging.no_color":   "LOG_NO_COLOR",
	"telemetry.enabled":  "LAUNCHKIT_TELEMETRY",
	"telemetry.endpoint": "LAUNCHKIT_OTLP_ENDPOINT",
}

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load resolves configuration for a service into cfg. Precedence, lowest
// to highest: struct defaults, config.yml, .env file, process environment.
func Load(serviceName string, cfg *Config, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.ConfigFile == "" {
		lc.ConfigFile = findFile(serviceName, "config.yml")
	}
	if lc.EnvFile == "" {
		lc.EnvFile = findFile(serviceName, ".env")
	}

	// Load .env before binding so its variables are visible to viper.
	if lc.EnvFile != "" && exists(lc.EnvFile) {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			return fmt.Errorf("load env file %s: %w", lc.EnvFile, err)
		}
	}

	v := viper.New()

	if lc.ConfigFile != "" && exists(lc.ConfigFile) {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", lc.ConfigFile, err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config for service %s: %w", serviceName, err)
	}

	cfg.ApplyDefaults()
	return nil
}

// findFile searches standard locations for a config artifact.
func findFile(serviceName, name string) string {
	searchPaths := []string{
		"./" + name,
		fmt.Sprintf("./cmd/%s/%s", serviceName, name),
		"../" + name,
	}
	for _, path := range searchPaths {
		if exists(path) {
			return path
		}
	}
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
