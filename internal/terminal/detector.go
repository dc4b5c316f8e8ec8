// Package terminal decides whether the current process is talking to a
// person at a terminal or running in a pipeline/CI environment. Commands use
// it to decide whether prompting for input makes sense.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"TRAVIS",                 // Travis CI
	"CIRCLECI",               // Circle CI
	"JENKINS_URL",            // Jenkins
	"BUILD_NUMBER",           // Jenkins/TeamCity/etc
	"GITLAB_CI",              // GitLab CI
	"APPVEYOR",               // AppVeyor
	"BUILDKITE",              // Buildkite
	"DRONE",                  // Drone CI
	"TF_BUILD",               // Azure DevOps
}

// DetectorOptions contains options for controlling interactive detection
type DetectorOptions struct {
	ForceInteractive    bool // Force interactive mode regardless of environment
	ForceNonInteractive bool // Force non-interactive mode regardless of environment
}

// InteractiveDetector reports whether input comes from a person at a terminal
type InteractiveDetector interface {
	IsInteractive() bool
	IsTerminal() bool
	IsCIEnvironment() bool
}

// DefaultInteractiveDetector implements InteractiveDetector for a given input file
type DefaultInteractiveDetector struct {
	options    DetectorOptions
	input      *os.File
	isTerminal func(fd int) bool
}

// NewInteractiveDetector creates a detector for standard input
func NewInteractiveDetector(options DetectorOptions) *DefaultInteractiveDetector {
	return NewInteractiveDetectorFor(os.Stdin, options)
}

// NewInteractiveDetectorFor creates a detector for the given input file
func NewInteractiveDetectorFor(input *os.File, options DetectorOptions) *DefaultInteractiveDetector {
	return &DefaultInteractiveDetector{
		options:    options,
		input:      input,
		isTerminal: term.IsTerminal,
	}
}

// IsInteractive returns true if the current environment is interactive
func (d *DefaultInteractiveDetector) IsInteractive() bool {
	// Priority 1: Command line options (highest priority)
	if d.options.ForceInteractive {
		return true
	}
	if d.options.ForceNonInteractive {
		return false
	}

	// Priority 2: CI environment detection
	if d.IsCIEnvironment() {
		return false
	}

	// Priority 3: Terminal detection
	return d.IsTerminal()
}

// IsTerminal checks if the input file is connected to a terminal
func (d *DefaultInteractiveDetector) IsTerminal() bool {
	if d.input == nil {
		return false
	}
	return d.isTerminal(int(d.input.Fd())) //nolint:gosec // file descriptors fit in int
}

// IsCIEnvironment checks if the current environment is a CI/CD system
func (d *DefaultInteractiveDetector) IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		if value := os.Getenv(envVar); value != "" {
			// Special handling for CI variable - should be truthy
			if envVar == "CI" {
				return isCITruthy(value)
			}
			// For other CI variables, presence indicates CI environment
			return true
		}
	}

	return false
}

// isCITruthy checks if a CI environment variable value should be considered "true"
// CI=false or CI=0 should not be considered a CI environment
func isCITruthy(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return lower != "false" && lower != "0" && lower != "no"
}
