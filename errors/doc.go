// Package errors provides unified error handling for the launchkit
// bootstrap supervisor. It implements structured error types with
// machine-readable codes and process exit-code mapping, so a failed
// bootstrap terminates with a status that names the precondition
// that was not met.
package errors
