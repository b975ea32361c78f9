package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/launchkit/config"
	"github.com/kbukum/launchkit/launch"
	"github.com/kbukum/launchkit/logger"
	"github.com/kbukum/launchkit/observability"
	"github.com/kbukum/launchkit/provision"
	"github.com/kbukum/launchkit/version"
)

// App is the bootstrap supervisor. It owns no long-lived state: every
// field is fixed at creation and the whole struct is discarded when the
// application server takes over the process.
type App struct {
	Name    string
	Version string
	Cfg     *config.Config
	Logger  *logger.Logger
	// RunID tags every log line and span of one bootstrap run.
	RunID string

	manager  provision.PackageManager
	executor launch.Executor

	onStart  []Hook
	onLaunch []Hook
}

// New creates a supervisor from config. It applies defaults, validates the
// config, and initializes the logger.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	app := &App{
		Name:    cfg.Name,
		Version: version.Get().String(),
		Cfg:     cfg,
		RunID:   uuid.NewString(),
	}

	o := resolveOptions(opts)

	// Logger: use custom if provided, otherwise init from config.
	if o.logger != nil {
		app.Logger = o.logger
	} else {
		logger.Init(cfg.Logging)
		app.Logger = logger.GetGlobalLogger()
	}
	app.Logger = app.Logger.WithFields(logger.Fields(logger.FieldRunID, app.RunID))

	if o.manager != nil {
		app.manager = o.manager
	} else {
		app.manager = provision.NewAptGet(app.Logger)
	}

	if o.executor != nil {
		app.executor = o.executor
	} else if cfg.Server.Handoff == "spawn" {
		app.executor = launch.SpawnHandoff{}
	} else {
		app.executor = launch.ExecHandoff{}
	}

	return app, nil
}

// Run executes the bootstrap sequence: OnStart hooks → Phase 1 provision →
// launch config resolution → OnLaunch hooks → Phase 2 handoff. With the
// exec strategy a successful run never returns; every returned error is
// fatal and the caller must exit non-zero.
func (a *App) Run(ctx context.Context) error {
	start := time.Now()

	a.Logger.Info("starting bootstrap", logger.Fields(
		"name", a.Name,
		"version", a.Version,
		logger.FieldDependency, a.Cfg.Dependency.Name,
		logger.FieldBinary, a.Cfg.Server.Binary,
	))

	tp := a.initTelemetry(ctx)

	if err := runHooks(ctx, a.onStart); err != nil {
		return fmt.Errorf("onStart hook failed: %w", err)
	}

	// Phase 1: provision. Must complete before any launch work begins.
	if err := a.provision(ctx); err != nil {
		a.flushTelemetry(ctx, tp)
		return err
	}

	// Phase 2: resolve launch configuration, then hand off.
	launchCfg, err := launch.ResolveConfig(a.Cfg.Server.Binary, a.Cfg.Server.Port)
	if err != nil {
		a.flushTelemetry(ctx, tp)
		return err
	}

	if err := runHooks(ctx, a.onLaunch); err != nil {
		a.flushTelemetry(ctx, tp)
		return fmt.Errorf("onLaunch hook failed: %w", err)
	}

	a.recordLaunch(ctx, launchCfg)
	a.Logger.Info("bootstrap complete, handing off to server", logger.Fields(
		logger.FieldHost, launchCfg.BindHost,
		logger.FieldPort, launchCfg.BindPort,
		logger.FieldWorkers, launchCfg.Workers,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))

	// Nothing runs after a successful exec handoff, so spans must be
	// flushed now rather than deferred.
	a.flushTelemetry(ctx, tp)

	supervisor := launch.NewSupervisor(a.executor, a.Logger)
	return supervisor.Launch(ctx, launchCfg)
}

// provision runs Phase 1 under a span.
func (a *App) provision(ctx context.Context) error {
	ctx, span := observability.StartSpan(ctx, observability.SpanProvision)
	span.SetAttributes(
		attribute.String(observability.AttrRunID, a.RunID),
		attribute.String(observability.AttrDependency, a.Cfg.Dependency.Name),
	)
	defer span.End()

	prov := provision.New(a.manager, a.Logger)
	if err := prov.Ensure(ctx, provision.Dependency{Name: a.Cfg.Dependency.Name}); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// recordLaunch emits the launch-phase span. The span ends here: with the
// exec strategy there is no supervisor code left to end it later.
func (a *App) recordLaunch(ctx context.Context, cfg launch.Config) {
	_, span := observability.StartSpan(ctx, observability.SpanLaunch)
	span.SetAttributes(
		attribute.String(observability.AttrRunID, a.RunID),
		attribute.String(observability.AttrBinary, cfg.Binary),
		attribute.Int(observability.AttrPort, cfg.BindPort),
	)
	span.End()
}

// initTelemetry starts the tracer provider when telemetry is enabled.
// Telemetry failures are logged and ignored: observability must never
// gate a deployment.
func (a *App) initTelemetry(ctx context.Context) *sdktrace.TracerProvider {
	if !a.Cfg.Telemetry.Enabled {
		return nil
	}

	tp, err := observability.InitTracer(ctx, observability.TracerConfig{
		ServiceName:    a.Name,
		ServiceVersion: a.Version,
		Environment:    a.Cfg.Environment,
		Endpoint:       a.Cfg.Telemetry.Endpoint,
		Insecure:       a.Cfg.Telemetry.Insecure,
		SampleRate:     a.Cfg.Telemetry.SampleRate,
	})
	if err != nil {
		a.Logger.Warn("telemetry disabled", logger.ErrorFields("init_tracer", err))
		return nil
	}
	return tp
}

// flushTelemetry exports pending spans and shuts the provider down.
func (a *App) flushTelemetry(ctx context.Context, tp *sdktrace.TracerProvider) {
	if tp == nil {
		return
	}
	flushCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := tp.ForceFlush(flushCtx); err != nil {
		a.Logger.Warn("telemetry flush failed", logger.ErrorFields("force_flush", err))
	}
	if err := tp.Shutdown(flushCtx); err != nil {
		a.Logger.Warn("telemetry shutdown failed", logger.ErrorFields("shutdown", err))
	}
}
