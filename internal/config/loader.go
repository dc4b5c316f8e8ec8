package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file syntax.
type Format string

const (
	// FormatTOML is TOML syntax
	FormatTOML Format = "toml"
	// FormatYAML is YAML syntax
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned when the file format cannot be determined
var ErrUnsupportedFormat = errors.New("unsupported config format")

// FormatFromPath determines the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (expected .toml, .yaml or .yml)", ErrUnsupportedFormat, path)
	}
}

// Load reads logging settings from path. The format follows the extension.
func Load(path string) (Logging, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Logging{}, err
	}

	content, err := os.ReadFile(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return Logging{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(content, format)
	if err != nil {
		return Logging{}, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes logging settings. Keys absent from content keep the values
// of NewLogging; unknown keys are rejected.
func Parse(content []byte, format Format) (Logging, error) {
	cfg := NewLogging()

	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(content))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Logging{}, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF and leaves the defaults in place.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Logging{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return Logging{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}

	if err := cfg.Validate(); err != nil {
		return Logging{}, err
	}
	return cfg, nil
}

// Marshal encodes settings in the given format.
func Marshal(cfg Logging, format Format) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch format {
	case FormatTOML:
		return toml.Marshal(cfg)
	case FormatYAML:
		return yaml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}
