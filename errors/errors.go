package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// ExitCode is the process exit code the bootstrap should terminate with.
	ExitCode int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with the exit code derived from its code.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		ExitCode: ExitCodeFor(code),
	}
}

// --- Common Error Constructors ---

// PackageManagerUnavailable creates an AppError for a package manager that
// cannot be invoked on this host.
func PackageManagerUnavailable(manager string) *AppError {
	return &AppError{
		Code:     ErrCodePackageManagerUnavailable,
		Message:  fmt.Sprintf("package manager %q is not available on this host", manager),
		ExitCode: ExitCodeFor(ErrCodePackageManagerUnavailable),
		Details:  map[string]any{"manager": manager},
	}
}

// InstallFailed creates an AppError for a dependency installation that was
// attempted and reported failure.
func InstallFailed(dependency string) *AppError {
	return &AppError{
		Code:     ErrCodeInstallFailed,
		Message:  fmt.Sprintf("installation of dependency %q failed", dependency),
		ExitCode: ExitCodeFor(ErrCodeInstallFailed),
		Details:  map[string]any{"dependency": dependency},
	}
}

// MissingOrInvalidPort creates an AppError for a bind port that is unset or
// not a positive integer. Missing and malformed values share one code; the
// hosting environment is authoritative and no default is substituted.
func MissingOrInvalidPort(raw string) *AppError {
	msg := "bind port environment variable is not set"
	if raw != "" {
		msg = fmt.Sprintf("bind port %q is not a positive integer", raw)
	}
	return &AppError{
		Code:     ErrCodeMissingOrInvalidPort,
		Message:  msg,
		ExitCode: ExitCodeFor(ErrCodeMissingOrInvalidPort),
		Details:  map[string]any{"raw": raw},
	}
}

// ServerStartFailed creates an AppError for an application server entry
// point that could not be started.
func ServerStartFailed(binary string) *AppError {
	return &AppError{
		Code:     ErrCodeServerStartFailed,
		Message:  fmt.Sprintf("failed to start application server %q", binary),
		ExitCode: ExitCodeFor(ErrCodeServerStartFailed),
		Details:  map[string]any{"binary": binary},
	}
}

// ServerExit creates an AppError carrying the application server's own
// non-zero exit status, so the supervisor terminates with the same code.
func ServerExit(binary string, exitCode int) *AppError {
	return &AppError{
		Code:     ErrCodeServerExit,
		Message:  fmt.Sprintf("application server %q exited with status %d", binary, exitCode),
		ExitCode: exitCode,
		Details:  map[string]any{"binary": binary, "exit_code": exitCode},
	}
}

// InvalidConfig creates an AppError for supervisor configuration that failed
// validation.
func InvalidConfig(reason string) *AppError {
	return &AppError{
		Code:     ErrCodeInvalidConfig,
		Message:  fmt.Sprintf("invalid configuration: %s", reason),
		ExitCode: ExitCodeFor(ErrCodeInvalidConfig),
	}
}

// Internal creates an AppError for an unexpected internal failure.
func Internal(message string) *AppError {
	return &AppError{
		Code:     ErrCodeInternal,
		Message:  message,
		ExitCode: ExitCodeFor(ErrCodeInternal),
	}
}

// --- Inspection helpers ---

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the error code of err, or ErrCodeInternal for errors that
// are not AppErrors. A nil error has no code and returns the empty string.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// ExitCode returns the process exit code for err: 0 for nil, the AppError's
// mapped code when available, and 1 for any other error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr.ExitCode
	}
	return 1
}
