// Package color provides small helpers for coloring terminal output using
// ANSI escape sequences. Every style wraps its whole input and terminates it
// with a reset sequence, so differently styled fragments can be concatenated.
//
//nolint:revive // package name conflicts with standard library
package color

// ANSI SGR sequences
const (
	resetCode = "\033[0m"
	boldCode  = "\033[1m"
	redCode   = "\033[31m"
	greenCode = "\033[32m"
	blueCode  = "\033[34m"
	cyanCode  = "\033[36m"
)

// Style wraps text with ANSI escape sequences.
type Style func(text string) string

// NewStyle creates a style that prefixes text with the given escape sequence
// and appends the reset sequence.
func NewStyle(ansiCode string) Style {
	return func(text string) string {
		return ansiCode + text + resetCode
	}
}

// Predefined styles
var (
	// Red colors text in red
	Red = NewStyle(redCode)

	// Green colors text in green
	Green = NewStyle(greenCode)

	// Blue colors text in blue
	Blue = NewStyle(blueCode)

	// Bold renders text in bold
	Bold = NewStyle(boldCode)

	// Cyan colors text in cyan
	Cyan = NewStyle(cyanCode)

	// Reset surrounds text with the reset sequence on both sides
	Reset = NewStyle(resetCode)
)

// Plain returns text unchanged.
func Plain(text string) string {
	return text
}
