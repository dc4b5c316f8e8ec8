package terminal

import (
	"os"
	"testing"
)

// setupCleanEnv clears every CI indicator and sets only the specified ones,
// so tests are not affected by the environment they run in.
func setupCleanEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	for _, v := range ciEnvVars {
		if value, specified := envVars[v]; specified {
			t.Setenv(v, value)
		} else {
			t.Setenv(v, "") // Empty is treated as unset
		}
	}
}

// newStubDetector returns a detector whose terminal check reports isTTY.
func newStubDetector(options DetectorOptions, isTTY bool) *DefaultInteractiveDetector {
	d := NewInteractiveDetectorFor(os.Stdin, options)
	d.isTerminal = func(int) bool { return isTTY }
	return d
}
