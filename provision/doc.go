// Package provision ensures required external binaries are present on the
// host before the application server starts.
//
// The host's installed-software registry is external mutable state, so it
// is reached only through the narrow PackageManager capability interface
// (Detect, Install, Available). The provisioner itself holds no state:
// detection is a pure PATH probe, and installation is attempted at most
// once per bootstrap run. Re-running the bootstrap on a host that already
// satisfies the dependency performs no privileged operations at all.
//
//	prov := provision.New(provision.NewAptGet(log), log)
//	if err := prov.Ensure(ctx, provision.Dependency{Name: "ffmpeg"}); err != nil {
//	    // fatal: the deployment gate failed
//	}
package provision
