package provision

import (
	"context"

	"github.com/kbukum/launchkit/errors"
	"github.com/kbukum/launchkit/logger"
)

// Provisioner verifies that required dependencies resolve on the host,
// installing them through the package manager when they do not.
type Provisioner struct {
	manager PackageManager
	log     *logger.Logger
}

// New creates a Provisioner backed by the given package manager.
func New(manager PackageManager, log *logger.Logger) *Provisioner {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &Provisioner{
		manager: manager,
		log:     log.WithComponent("provisioner"),
	}
}

// Ensure makes the dependency resolvable on the host. Detection first:
// when the binary is already on PATH, no installation is attempted and
// the call is a no-op, keeping repeated bootstrap runs idempotent. When
// it is absent, the package manager's update-and-install sequence runs
// synchronously; its failure is fatal for the whole bootstrap.
func (p *Provisioner) Ensure(ctx context.Context, dep Dependency) error {
	if dep.Name == "" {
		return errors.InvalidConfig("dependency name is required")
	}

	if p.manager.Detect(ctx, dep.Name) {
		p.log.Debug("dependency already present", logger.Fields(logger.FieldDependency, dep.Name))
		return nil
	}

	p.log.Info("dependency not found, installing", logger.Fields(logger.FieldDependency, dep.Name))

	if !p.manager.Available(ctx) {
		return errors.PackageManagerUnavailable(p.manager.Name())
	}

	if err := p.manager.Install(ctx, dep.Name); err != nil {
		return errors.InstallFailed(dep.Name).WithCause(err)
	}

	p.log.Info("dependency installed", logger.Fields(logger.FieldDependency, dep.Name))
	return nil
}
