package process

import "os/exec"

// LookPath reports whether name resolves to an executable on PATH.
// It is a pure probe with no side effects.
func LookPath(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
