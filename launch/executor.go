package launch

import (
	"context"

	"github.com/kbukum/launchkit/errors"
	"github.com/kbukum/launchkit/process"
)

// Executor transfers control to the application server. Handoff returns
// only when the transfer fails or, in spawn mode, after the server itself
// has exited.
type Executor interface {
	Handoff(ctx context.Context, cfg Config) error
}

// ExecHandoff replaces the supervisor's process image with the server.
// On success nothing after Handoff ever runs; the server inherits the
// process identity, so its eventual exit status is the process's own.
type ExecHandoff struct{}

// Handoff execs the server binary. A return always means failure.
func (ExecHandoff) Handoff(_ context.Context, cfg Config) error {
	err := process.Exec(cfg.Binary, cfg.Args())
	return errors.ServerStartFailed(cfg.Binary).WithCause(err)
}

// SpawnHandoff runs the server as a child process with inherited stdio
// and waits for it, forwarding the server's exit status. It satisfies
// the same contract on platforms or harnesses where replacing the
// process image is not an option.
type SpawnHandoff struct{}

// Handoff spawns the server and blocks until it exits. A nil return
// means the server ran and exited cleanly.
func (SpawnHandoff) Handoff(ctx context.Context, cfg Config) error {
	result, err := process.RunAttached(ctx, process.Command{
		Binary: cfg.Binary,
		Args:   cfg.Args(),
	})
	if err == nil {
		return nil
	}
	if result != nil && result.ExitCode > 0 {
		return errors.ServerExit(cfg.Binary, result.ExitCode).WithCause(err)
	}
	return errors.ServerStartFailed(cfg.Binary).WithCause(err)
}
