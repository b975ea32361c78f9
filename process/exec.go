package process

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// Exec replaces the current process image with the given binary. On success
// it never returns: the binary inherits this process's identity, file
// descriptors, environment, and signal handling. It returns an error only
// when the replacement could not be performed (binary not found, not
// executable).
func Exec(binary string, args []string) error {
	path, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Errorf("process: resolve %q: %w", binary, err)
	}

	argv := append([]string{path}, args...)
	if err := syscall.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("process: exec %q: %w", path, err)
	}

	// Unreachable: syscall.Exec does not return on success.
	return nil
}
