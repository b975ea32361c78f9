package provision

import (
	"context"
	"fmt"

	"github.com/kbukum/launchkit/logger"
	"github.com/kbukum/launchkit/process"
)

// Dependency identifies one external binary that must resolve on PATH.
type Dependency struct {
	// Name is the binary name, e.g. "ffmpeg".
	Name string
}

// PackageManager is the capability interface over the host's
// installed-software state. Implementations mutate host-wide state;
// fakes of this interface drive the provisioner tests.
type PackageManager interface {
	// Name identifies the manager for error reporting.
	Name() string
	// Available reports whether the manager itself can be invoked.
	Available(ctx context.Context) bool
	// Detect reports whether the named binary resolves to an executable
	// on PATH. It must be side-effect free.
	Detect(ctx context.Context, name string) bool
	// Install installs the named package, blocking until the manager
	// returns. The returned error carries the manager's exit status.
	Install(ctx context.Context, name string) error
}

const aptBinary = "apt-get"

// AptGet drives the Debian package manager. Update and install run as
// external commands with inherited stdio, so installer progress streams
// to the operator; their combined exit status decides success.
type AptGet struct {
	log *logger.Logger
}

// NewAptGet creates an apt-get backed package manager.
func NewAptGet(log *logger.Logger) *AptGet {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &AptGet{log: log.WithComponent("apt-get")}
}

// Name returns the manager's binary name.
func (a *AptGet) Name() string { return aptBinary }

// Available reports whether apt-get resolves on PATH.
func (a *AptGet) Available(ctx context.Context) bool {
	_, ok := process.LookPath(aptBinary)
	return ok
}

// Detect reports whether the named binary resolves on PATH.
func (a *AptGet) Detect(ctx context.Context, name string) bool {
	_, ok := process.LookPath(name)
	return ok
}

// Install refreshes the package index and installs the named package
// non-interactively. There is no timeout: installation blocks the
// bootstrap until apt-get returns.
func (a *AptGet) Install(ctx context.Context, name string) error {
	a.log.Info("updating package index")
	if _, err := process.RunAttached(ctx, process.Command{
		Binary: aptBinary,
		Args:   []string{"update"},
	}); err != nil {
		return fmt.Errorf("apt-get update: %w", err)
	}

	a.log.Info("installing package", logger.Fields(logger.FieldDependency, name))
	if _, err := process.RunAttached(ctx, process.Command{
		Binary: aptBinary,
		Args:   []string{"install", "-y", name},
		Env:    []string{"DEBIAN_FRONTEND=noninteractive"},
	}); err != nil {
		return fmt.Errorf("apt-get install %s: %w", name, err)
	}

	return nil
}
