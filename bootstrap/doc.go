// Package bootstrap orchestrates the launchkit supervisor lifecycle.
//
// A bootstrap run is two strictly sequential phases: Phase 1 provisions
// the required dependency, Phase 2 resolves the launch configuration and
// hands the process over to the application server. Every failure is
// fatal — the bootstrap is a deployment-time gate, and an unmet
// precondition must fail loudly rather than start a degraded server.
//
//	app, err := bootstrap.New(&cfg)
//	if err != nil {
//	    // config was rejected
//	}
//	err = app.Run(ctx) // does not return after a successful exec handoff
package bootstrap
