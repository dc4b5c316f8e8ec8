// Package config defines the logging settings record and loads it from TOML
// or YAML files. Nothing in this module consumes the record; interpreting it
// is left to whichever logger the caller sets up.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// LogLevel represents the desired logging severity.
// Valid values: debug, info, warning, error. No ordering is defined.
type LogLevel string

const (
	// LogLevelDebug requests debug output
	LogLevelDebug LogLevel = "debug"

	// LogLevelInfo requests informational output (default)
	LogLevelInfo LogLevel = "info"

	// LogLevelWarning requests warnings
	LogLevelWarning LogLevel = "warning"

	// LogLevelError requests errors only
	LogLevelError LogLevel = "error"
)

// Error definitions for the config package
var (
	// ErrInvalidLogLevel is returned when an invalid log level is provided
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidLogOutput is returned when a log destination cannot be parsed
	ErrInvalidLogOutput = errors.New("invalid log output")
)

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// This enables validation during TOML and YAML parsing.
func (l *LogLevel) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	switch LogLevel(s) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		*l = LogLevel(s)
		return nil
	case "warn":
		*l = LogLevelWarning
		return nil
	case "":
		// Empty string defaults to info level
		*l = LogLevelInfo
		return nil
	default:
		return fmt.Errorf("%w: %q (must be one of: debug, info, warning, error)", ErrInvalidLogLevel, string(text))
	}
}

// Validate reports whether l is one of the defined levels.
func (l LogLevel) Validate() error {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, string(l))
	}
}

// String returns the string representation of LogLevel.
func (l LogLevel) String() string {
	return string(l)
}

// OutputKind identifies the variant of a LogOutput.
type OutputKind int

const (
	// OutputStdout writes to standard output
	OutputStdout OutputKind = iota
	// OutputStderr writes to standard error
	OutputStderr
	// OutputFile writes to a file path
	OutputFile
)

const filePrefix = "file:"

// LogOutput is the destination of log records: stdout, stderr or a file.
// The zero value is stdout. Values are comparable with ==.
type LogOutput struct {
	kind OutputKind
	path string
}

// Stdout returns the standard output destination.
func Stdout() LogOutput { return LogOutput{kind: OutputStdout} }

// Stderr returns the standard error destination.
func Stderr() LogOutput { return LogOutput{kind: OutputStderr} }

// File returns a destination writing to path.
func File(path string) LogOutput { return LogOutput{kind: OutputFile, path: path} }

// Kind returns the destination variant.
func (o LogOutput) Kind() OutputKind { return o.kind }

// Path returns the file path for OutputFile destinations and "" otherwise.
func (o LogOutput) Path() string { return o.path }

// String returns "stdout", "stderr" or "file:<path>".
func (o LogOutput) String() string {
	switch o.kind {
	case OutputStdout:
		return "stdout"
	case OutputStderr:
		return "stderr"
	case OutputFile:
		return filePrefix + o.path
	default:
		return fmt.Sprintf("LogOutput(%d)", int(o.kind))
	}
}

// Validate reports whether o is a well-formed destination.
func (o LogOutput) Validate() error {
	switch o.kind {
	case OutputStdout, OutputStderr:
		return nil
	case OutputFile:
		if o.path == "" {
			return fmt.Errorf("%w: file destination requires a path", ErrInvalidLogOutput)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidLogOutput, int(o.kind))
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (o LogOutput) MarshalText() ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Accepted forms are "stdout", "stderr" and "file:<path>".
func (o *LogOutput) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	switch strings.ToLower(s) {
	case "stdout", "":
		*o = Stdout()
		return nil
	case "stderr":
		*o = Stderr()
		return nil
	}

	if len(s) >= len(filePrefix) && strings.EqualFold(s[:len(filePrefix)], filePrefix) {
		out := File(strings.TrimSpace(s[len(filePrefix):]))
		if err := out.Validate(); err != nil {
			return err
		}
		*o = out
		return nil
	}

	return fmt.Errorf("%w: %q (must be one of: stdout, stderr, file:<path>)", ErrInvalidLogOutput, s)
}

// Logging describes whether logging is enabled, at which level and where to.
type Logging struct {
	Enabled     bool      `toml:"enabled" yaml:"enabled"`
	Level       LogLevel  `toml:"level" yaml:"level"`
	Destination LogOutput `toml:"destination" yaml:"destination"`
}

// NewLogging returns the default settings: disabled, info level, stdout.
func NewLogging() Logging {
	return Logging{
		Enabled:     false,
		Level:       LogLevelInfo,
		Destination: Stdout(),
	}
}

// Validate checks that every field holds a defined variant.
func (l Logging) Validate() error {
	if err := l.Level.Validate(); err != nil {
		return err
	}
	return l.Destination.Validate()
}
