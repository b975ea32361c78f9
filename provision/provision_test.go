package provision_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/kbukum/launchkit/errors"
	"github.com/kbukum/launchkit/logger"
	"github.com/kbukum/launchkit/provision"
)

// fakeManager is a PackageManager test double tracking invocations.
type fakeManager struct {
	present     bool
	available   bool
	installErr  error
	detectCalls int
	installs    []string
}

func (f *fakeManager) Name() string                         { return "fake-mgr" }
func (f *fakeManager) Available(_ context.Context) bool     { return f.available }
func (f *fakeManager) Detect(_ context.Context, _ string) bool {
	f.detectCalls++
	return f.present
}
func (f *fakeManager) Install(_ context.Context, name string) error {
	f.installs = append(f.installs, name)
	return f.installErr
}

func TestEnsureAlreadyPresent(t *testing.T) {
	mgr := &fakeManager{present: true, available: true}
	prov := provision.New(mgr, logger.NewDefault("test"))

	err := prov.Ensure(context.Background(), provision.Dependency{Name: "ffmpeg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mgr.installs) != 0 {
		t.Fatalf("expected zero install invocations, got %d", len(mgr.installs))
	}
	if mgr.detectCalls != 1 {
		t.Fatalf("expected one detection probe, got %d", mgr.detectCalls)
	}
}

func TestEnsureInstallsWhenAbsent(t *testing.T) {
	mgr := &fakeManager{present: false, available: true}
	prov := provision.New(mgr, logger.NewDefault("test"))

	err := prov.Ensure(context.Background(), provision.Dependency{Name: "ffmpeg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mgr.installs) != 1 {
		t.Fatalf("expected exactly one install invocation, got %d", len(mgr.installs))
	}
	if mgr.installs[0] != "ffmpeg" {
		t.Errorf("expected install of 'ffmpeg', got %q", mgr.installs[0])
	}
}

func TestEnsureInstallFailure(t *testing.T) {
	mgr := &fakeManager{
		present:    false,
		available:  true,
		installErr: fmt.Errorf("exit status 100"),
	}
	prov := provision.New(mgr, logger.NewDefault("test"))

	err := prov.Ensure(context.Background(), provision.Dependency{Name: "ffmpeg"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsCode(err, errors.ErrCodeInstallFailed) {
		t.Fatalf("expected INSTALL_FAILED, got %v", err)
	}

	appErr, _ := errors.AsAppError(err)
	if appErr.Cause == nil {
		t.Error("expected install exit status preserved as cause")
	}
}

func TestEnsurePackageManagerUnavailable(t *testing.T) {
	mgr := &fakeManager{present: false, available: false}
	prov := provision.New(mgr, logger.NewDefault("test"))

	err := prov.Ensure(context.Background(), provision.Dependency{Name: "ffmpeg"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsCode(err, errors.ErrCodePackageManagerUnavailable) {
		t.Fatalf("expected PACKAGE_MANAGER_UNAVAILABLE, got %v", err)
	}
	if len(mgr.installs) != 0 {
		t.Fatal("no install should be attempted without a package manager")
	}
}

func TestEnsureEmptyDependencyName(t *testing.T) {
	mgr := &fakeManager{present: true, available: true}
	prov := provision.New(mgr, logger.NewDefault("test"))

	err := prov.Ensure(context.Background(), provision.Dependency{})
	if err == nil {
		t.Fatal("expected error for empty dependency name")
	}
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestEnsureIdempotentAcrossRuns(t *testing.T) {
	mgr := &fakeManager{present: true, available: true}
	prov := provision.New(mgr, logger.NewDefault("test"))

	for i := 0; i < 3; i++ {
		if err := prov.Ensure(context.Background(), provision.Dependency{Name: "ffmpeg"}); err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
	}
	if len(mgr.installs) != 0 {
		t.Fatalf("expected zero installs across repeated runs, got %d", len(mgr.installs))
	}
}

func TestAptGetDetect(t *testing.T) {
	mgr := provision.NewAptGet(logger.NewDefault("test"))

	if !mgr.Detect(context.Background(), "sh") {
		t.Error("expected 'sh' to be detected on PATH")
	}
	if mgr.Detect(context.Background(), "definitely-not-a-real-binary-xyz") {
		t.Error("expected detection miss for nonexistent binary")
	}
}

func TestAptGetName(t *testing.T) {
	mgr := provision.NewAptGet(nil)
	if mgr.Name() != "apt-get" {
		t.Errorf("expected 'apt-get', got %q", mgr.Name())
	}
}
