package bootstrap

import (
	"context"
	"fmt"
)

// Hook is a lifecycle callback that runs during the bootstrap sequence.
type Hook func(ctx context.Context) error

// OnStart registers a hook that runs after configuration is validated and
// logging is ready, before the provisioning phase.
func (a *App) OnStart(hooks ...Hook) {
	a.onStart = append(a.onStart, hooks...)
}

// OnLaunch registers a hook that runs after provisioning and configuration
// resolution succeed, immediately before the process handoff. This is the
// last supervisor code to run on the success path.
func (a *App) OnLaunch(hooks ...Hook) {
	a.onLaunch = append(a.onLaunch, hooks...)
}

// runHooks executes a slice of hooks sequentially, returning the first error.
func runHooks(ctx context.Context, hooks []Hook) error {
	for i, h := range hooks {
		if err := h(ctx); err != nil {
			return fmt.Errorf("hook %d failed: %w", i, err)
		}
	}
	return nil
}
