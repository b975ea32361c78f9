package launch

import (
	"context"

	"github.com/kbukum/launchkit/logger"
)

// Supervisor performs the launch phase: it announces the startup and
// delegates the terminal handoff to its executor.
type Supervisor struct {
	executor Executor
	log      *logger.Logger
}

// NewSupervisor creates a Supervisor with the given executor.
func NewSupervisor(executor Executor, log *logger.Logger) *Supervisor {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &Supervisor{
		executor: executor,
		log:      log.WithComponent("launch"),
	}
}

// Launch hands control to the application server. With ExecHandoff this
// call does not return on success; any error it reports is fatal and no
// retry is attempted.
func (s *Supervisor) Launch(ctx context.Context, cfg Config) error {
	s.log.Info("starting application server", logger.Fields(
		logger.FieldBinary, cfg.Binary,
		logger.FieldHost, cfg.BindHost,
		logger.FieldPort, cfg.BindPort,
		logger.FieldWorkers, cfg.Workers,
	))

	return s.executor.Handoff(ctx, cfg)
}
