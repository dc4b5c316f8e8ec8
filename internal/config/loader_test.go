package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"logging.toml", FormatTOML},
		{"/etc/app/logging.TOML", FormatTOML},
		{"logging.yaml", FormatYAML},
		{"logging.yml", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}

	_, err := FormatFromPath("logging.json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParse_TOML(t *testing.T) {
	content := `
enabled = true
level = "debug"
destination = "file:/var/log/app.log"
`
	cfg, err := Parse([]byte(content), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, Logging{Enabled: true, Level: LogLevelDebug, Destination: File("/var/log/app.log")}, cfg)
}

func TestParse_YAML(t *testing.T) {
	content := `
enabled: true
level: warning
destination: stderr
`
	cfg, err := Parse([]byte(content), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Logging{Enabled: true, Level: LogLevelWarning, Destination: Stderr()}, cfg)
}

func TestParse_MissingKeysKeepDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
	}{
		{"empty TOML", "", FormatTOML},
		{"empty YAML", "", FormatYAML},
		{"comment only YAML", "# nothing here\n", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.content), tt.format)
			require.NoError(t, err)
			assert.Equal(t, NewLogging(), cfg)
		})
	}

	cfg, err := Parse([]byte("enabled = true\n"), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, Logging{Enabled: true, Level: LogLevelInfo, Destination: Stdout()}, cfg)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
		errText string
	}{
		{"unknown TOML key", "colour = true\n", FormatTOML, "failed to parse TOML"},
		{"unknown YAML key", "colour: true\n", FormatYAML, "colour"},
		{"invalid TOML level", "level = \"loud\"\n", FormatTOML, "failed to parse TOML"},
		{"invalid YAML level", "level: loud\n", FormatYAML, "invalid log level"},
		{"invalid TOML destination", "destination = \"syslog\"\n", FormatTOML, "failed to parse TOML"},
		{"invalid YAML destination", "destination: \"file:\"\n", FormatYAML, "invalid log output"},
		{"malformed TOML", "enabled = \n", FormatTOML, "failed to parse TOML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content), tt.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("{}"), Format("json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "logging.yml", "enabled: true\ndestination: file:/tmp/out.log\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Logging{Enabled: true, Level: LogLevelInfo, Destination: File("/tmp/out.log")}, cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "logging.ini", "enabled=true"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeConfig(t, "logging.toml", "level = \"x\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}

func TestMarshal_RoundTripsThroughParse(t *testing.T) {
	cfg := Logging{Enabled: true, Level: LogLevelError, Destination: File("/tmp/errors.log")}

	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(cfg, format)
			require.NoError(t, err)
			assert.Contains(t, string(data), "file:/tmp/errors.log")

			parsed, err := Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, cfg, parsed)
		})
	}
}

func TestMarshal_Errors(t *testing.T) {
	_, err := Marshal(Logging{Level: "nope"}, FormatTOML)
	require.ErrorIs(t, err, ErrInvalidLogLevel)

	_, err = Marshal(NewLogging(), Format("ini"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
