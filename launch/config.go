package launch

import (
	"strconv"
	"strings"

	"github.com/kbukum/launchkit/errors"
)

// WildcardHost is the fixed bind address: the server listens on all
// interfaces for this deployment target.
const WildcardHost = "0.0.0.0"

// Workers is the fixed worker concurrency. A single-process execution
// model is a deliberate policy for this deployment target, not an
// environment-derived value.
const Workers = 1

// Config is the resolved runtime configuration handed to the application
// server. Created once, immutable, discarded when the server takes over.
type Config struct {
	// Binary is the application server entry point.
	Binary string
	// BindHost is the bind address, always WildcardHost.
	BindHost string
	// BindPort is the environment-provided bind port.
	BindPort int
	// Workers is the worker concurrency, always Workers.
	Workers int
}

// Args returns the server's startup arguments.
func (c Config) Args() []string {
	return []string{
		"--host", c.BindHost,
		"--port", strconv.Itoa(c.BindPort),
		"--workers", strconv.Itoa(c.Workers),
	}
}

// ResolveConfig builds the launch configuration from the raw port value.
// Missing, blank, non-numeric, and non-positive ports all fail with the
// same MISSING_OR_INVALID_PORT kind: the environment either provided a
// usable port or it did not, and no default is ever substituted.
func ResolveConfig(binary, rawPort string) (Config, error) {
	if binary == "" {
		return Config{}, errors.InvalidConfig("server binary is required")
	}

	trimmed := strings.TrimSpace(rawPort)
	if trimmed == "" {
		return Config{}, errors.MissingOrInvalidPort("")
	}

	port, err := strconv.Atoi(trimmed)
	if err != nil || port <= 0 {
		return Config{}, errors.MissingOrInvalidPort(trimmed)
	}

	return Config{
		Binary:   binary,
		BindHost: WildcardHost,
		BindPort: port,
		Workers:  Workers,
	}, nil
}
