package color

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStyle(t *testing.T) {
	testStyle := NewStyle("\033[31m") // Red
	result := testStyle("ERROR")
	expected := "\033[31mERROR\033[0m"

	if result != expected {
		t.Errorf("NewStyle() = %q, want %q", result, expected)
	}
}

func TestPredefinedStyles(t *testing.T) {
	tests := []struct {
		name     string
		style    Style
		input    string
		expected string
	}{
		{"Red", Red, "fail", "\x1b[31mfail\x1b[0m"},
		{"Green", Green, "ok", "\x1b[32mok\x1b[0m"},
		{"Blue", Blue, "info", "\x1b[34minfo\x1b[0m"},
		{"Bold", Bold, "title", "\x1b[1mtitle\x1b[0m"},
		{"Cyan", Cyan, "hint", "\x1b[36mhint\x1b[0m"},
		{"Reset", Reset, "plain", "\x1b[0mplain\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.style(tt.input))
		})
	}
}

func TestStylesWrapAnyInput(t *testing.T) {
	inputs := []string{"", " ", "multi\nline", "\x1b[32malready green\x1b[0m", "日本語"}
	styles := map[string]struct {
		style Style
		code  string
	}{
		"red":   {Red, "31"},
		"green": {Green, "32"},
		"blue":  {Blue, "34"},
		"bold":  {Bold, "1"},
		"cyan":  {Cyan, "36"},
		"reset": {Reset, "0"},
	}

	for name, s := range styles {
		for _, in := range inputs {
			want := "\x1b[" + s.code + "m" + in + "\x1b[0m"
			assert.Equal(t, want, s.style(in), "%s(%q)", name, in)
		}
	}
}

func TestStyleResetHandling(t *testing.T) {
	// Concatenated fragments each terminate their own styling
	redText := Red("ERROR")
	greenText := Green("INFO")
	line := redText + " " + greenText

	if !strings.HasSuffix(redText, resetCode) {
		t.Error("Red text does not end with reset code")
	}
	if !strings.HasPrefix(greenText, greenCode) {
		t.Error("Green text does not start with green code")
	}
	assert.Equal(t, 2, strings.Count(line, resetCode))
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "text", Plain("text"))
	assert.Empty(t, Plain(""))
}
