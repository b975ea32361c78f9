package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Provisioning errors
const (
	// ErrCodePackageManagerUnavailable indicates the host package manager
	// could not be invoked (not present or not executable).
	ErrCodePackageManagerUnavailable ErrorCode = "PACKAGE_MANAGER_UNAVAILABLE"
	// ErrCodeInstallFailed indicates an attempted dependency installation
	// exited with a failure status.
	ErrCodeInstallFailed ErrorCode = "INSTALL_FAILED"
)

// Launch errors
const (
	// ErrCodeMissingOrInvalidPort indicates the bind port variable is
	// unset, blank, non-numeric, or not a positive integer.
	ErrCodeMissingOrInvalidPort ErrorCode = "MISSING_OR_INVALID_PORT"
	// ErrCodeServerStartFailed indicates the application server entry
	// point could not be started.
	ErrCodeServerStartFailed ErrorCode = "SERVER_START_FAILED"
	// ErrCodeServerExit carries a non-zero exit status reported by the
	// application server after a successful handoff in spawn mode.
	ErrCodeServerExit ErrorCode = "SERVER_EXIT"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates the supervisor configuration itself
	// failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// exitCodes maps error codes to process exit codes, loosely following
// sysexits conventions so operators can tell failed preconditions apart.
var exitCodes = map[ErrorCode]int{
	ErrCodePackageManagerUnavailable: 69,  // EX_UNAVAILABLE
	ErrCodeInstallFailed:             70,  // EX_SOFTWARE
	ErrCodeMissingOrInvalidPort:      78,  // EX_CONFIG
	ErrCodeInvalidConfig:             78,  // EX_CONFIG
	ErrCodeServerStartFailed:         127, // shell convention: command not found
	ErrCodeInternal:                  1,
}

// ExitCodeFor returns the process exit code associated with a code.
// Unknown codes map to 1.
func ExitCodeFor(code ErrorCode) int {
	if ec, ok := exitCodes[code]; ok {
		return ec
	}
	return 1
}
