// Package process executes external commands for the bootstrap supervisor.
//
// Three execution modes cover the supervisor's needs:
//
//   - Run captures output and waits, with SIGTERM-then-SIGKILL cleanup on
//     context cancellation.
//   - RunAttached inherits the parent's stdio so long installer output
//     streams to the operator, and blocks until the command exits.
//   - Exec replaces the current process image (terminal handoff); it only
//     returns on failure.
//
// LookPath probes PATH resolution without side effects.
package process
