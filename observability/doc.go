// Package observability provides optional OpenTelemetry tracing for the
// bootstrap sequence. Tracing is off by default; when enabled, each
// bootstrap phase (provision, launch) is recorded as a span and flushed
// before process handoff, since nothing runs after the exec.
package observability
