package bootstrap

import (
	"github.com/kbukum/launchkit/launch"
	"github.com/kbukum/launchkit/logger"
	"github.com/kbukum/launchkit/provision"
)

// Option configures the App during creation.
type Option func(*appOptions)

// appOptions collects all option values before applying to App.
type appOptions struct {
	logger   *logger.Logger
	manager  provision.PackageManager
	executor launch.Executor
}

// resolveOptions applies all options and returns the collected values.
func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger for the application.
// If not set, the logger is auto-initialized from the config's Logging field.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.logger = l
	}
}

// WithPackageManager sets a custom package manager. Defaults to apt-get.
// Tests substitute a fake to exercise provisioning without touching the host.
func WithPackageManager(m provision.PackageManager) Option {
	return func(o *appOptions) {
		o.manager = m
	}
}

// WithExecutor sets a custom handoff executor, overriding the strategy
// selected by the server.handoff config key.
func WithExecutor(e launch.Executor) Option {
	return func(o *appOptions) {
		o.executor = e
	}
}
