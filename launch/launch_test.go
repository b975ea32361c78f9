package launch_test

import (
	"context"
	"testing"

	"github.com/kbukum/launchkit/errors"
	"github.com/kbukum/launchkit/launch"
	"github.com/kbukum/launchkit/logger"
)

func TestResolveConfig(t *testing.T) {
	cfg, err := launch.ResolveConfig("/app/server", "8000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BindHost != "0.0.0.0" {
		t.Errorf("expected wildcard host, got %q", cfg.BindHost)
	}
	if cfg.BindPort != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.BindPort)
	}
	if cfg.Workers != 1 {
		t.Errorf("expected 1 worker, got %d", cfg.Workers)
	}
	if cfg.Binary != "/app/server" {
		t.Errorf("expected binary preserved, got %q", cfg.Binary)
	}
}

func TestResolveConfigInvalidPort(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing", ""},
		{"blank", "   "},
		{"non-numeric", "abc"},
		{"negative", "-1"},
		{"zero", "0"},
		{"trailing garbage", "8000x"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := launch.ResolveConfig("/app/server", tc.raw)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.IsCode(err, errors.ErrCodeMissingOrInvalidPort) {
				t.Fatalf("expected MISSING_OR_INVALID_PORT, got %v", err)
			}
		})
	}
}

func TestResolveConfigTrimsWhitespace(t *testing.T) {
	cfg, err := launch.ResolveConfig("/app/server", " 8000 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BindPort != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.BindPort)
	}
}

func TestResolveConfigMissingBinary(t *testing.T) {
	_, err := launch.ResolveConfig("", "8000")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestConfigArgs(t *testing.T) {
	cfg, err := launch.ResolveConfig("/app/server", "8000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	args := cfg.Args()
	want := []string{"--host", "0.0.0.0", "--port", "8000", "--workers", "1"}
	if len(args) != len(want) {
		t.Fatalf("expected %d args, got %d: %v", len(want), len(args), args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("arg %d: expected %q, got %q", i, want[i], args[i])
		}
	}
}

// recordingExecutor captures handoff requests without transferring control.
type recordingExecutor struct {
	handoffs []launch.Config
	err      error
}

func (r *recordingExecutor) Handoff(_ context.Context, cfg launch.Config) error {
	r.handoffs = append(r.handoffs, cfg)
	return r.err
}

func TestSupervisorLaunch(t *testing.T) {
	exec := &recordingExecutor{}
	sup := launch.NewSupervisor(exec, logger.NewDefault("test"))

	cfg, err := launch.ResolveConfig("/app/server", "8000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sup.Launch(context.Background(), cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exec.handoffs) != 1 {
		t.Fatalf("expected one handoff, got %d", len(exec.handoffs))
	}
	if exec.handoffs[0].BindPort != 8000 {
		t.Errorf("expected port 8000 handed off, got %d", exec.handoffs[0].BindPort)
	}
}

func TestSupervisorLaunchPropagatesFailure(t *testing.T) {
	exec := &recordingExecutor{err: errors.ServerStartFailed("/app/server")}
	sup := launch.NewSupervisor(exec, logger.NewDefault("test"))

	cfg := launch.Config{Binary: "/app/server", BindHost: launch.WildcardHost, BindPort: 8000, Workers: 1}
	err := sup.Launch(context.Background(), cfg)
	if !errors.IsCode(err, errors.ErrCodeServerStartFailed) {
		t.Fatalf("expected SERVER_START_FAILED, got %v", err)
	}
}

func TestExecHandoffMissingBinary(t *testing.T) {
	cfg := launch.Config{
		Binary:   "definitely-not-a-real-binary-xyz",
		BindHost: launch.WildcardHost,
		BindPort: 8000,
		Workers:  launch.Workers,
	}
	err := launch.ExecHandoff{}.Handoff(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error for nonexistent binary")
	}
	if !errors.IsCode(err, errors.ErrCodeServerStartFailed) {
		t.Fatalf("expected SERVER_START_FAILED, got %v", err)
	}
	if errors.ExitCode(err) != 127 {
		t.Errorf("expected exit code 127, got %d", errors.ExitCode(err))
	}
}

func TestSpawnHandoffCleanExit(t *testing.T) {
	cfg := launch.Config{Binary: "true", BindHost: launch.WildcardHost, BindPort: 8000, Workers: 1}
	if err := (launch.SpawnHandoff{}).Handoff(context.Background(), cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSpawnHandoffForwardsExitStatus(t *testing.T) {
	// `false` ignores its arguments and exits 1, standing in for a server
	// that started and later terminated with a failure status.
	cfg := launch.Config{Binary: "false", BindHost: launch.WildcardHost, BindPort: 8000, Workers: 1}
	err := (launch.SpawnHandoff{}).Handoff(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error for failing server")
	}
	if !errors.IsCode(err, errors.ErrCodeServerExit) {
		t.Fatalf("expected SERVER_EXIT, got %v", err)
	}
	if errors.ExitCode(err) != 1 {
		t.Errorf("expected forwarded exit code 1, got %d", errors.ExitCode(err))
	}
}

func TestSpawnHandoffMissingBinary(t *testing.T) {
	cfg := launch.Config{Binary: "definitely-not-a-real-binary-xyz", BindHost: launch.WildcardHost, BindPort: 8000, Workers: 1}
	err := (launch.SpawnHandoff{}).Handoff(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error for nonexistent binary")
	}
	if !errors.IsCode(err, errors.ErrCodeServerStartFailed) {
		t.Fatalf("expected SERVER_START_FAILED, got %v", err)
	}
}
