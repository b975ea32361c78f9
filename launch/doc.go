// Package launch resolves the application server's runtime configuration
// and transfers process control to it.
//
// The handoff is terminal: on success the supervisor's process identity,
// file descriptors, and signal handling pass to the server and no
// supervisor code runs afterward. Two Executor implementations satisfy
// that contract — ExecHandoff replaces the process image, SpawnHandoff
// runs the server as a child and forwards its exit status.
package launch
