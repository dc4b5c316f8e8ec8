package color

import (
	"errors"
	"fmt"
	"strings"
)

// Color selects one of the predefined styles.
type Color int

const (
	// ColorRed selects Red
	ColorRed Color = iota
	// ColorGreen selects Green
	ColorGreen
	// ColorBlue selects Blue
	ColorBlue
	// ColorBold selects Bold
	ColorBold
	// ColorCyan selects Cyan
	ColorCyan

	numColors
)

// ErrInvalidColor is returned when a color name is not recognized
var ErrInvalidColor = errors.New("invalid color")

// palette is the single mapping site between colors and their styles.
// Adding a Color without extending it trips TestPaletteIsComplete.
var palette = [numColors]struct {
	name  string
	style Style
}{
	ColorRed:   {"red", Red},
	ColorGreen: {"green", Green},
	ColorBlue:  {"blue", Blue},
	ColorBold:  {"bold", Bold},
	ColorCyan:  {"cyan", Cyan},
}

// Colors returns every color in declaration order.
func Colors() []Color {
	colors := make([]Color, 0, numColors)
	for c := Color(0); c < numColors; c++ {
		colors = append(colors, c)
	}
	return colors
}

func (c Color) valid() bool {
	return c >= 0 && c < numColors
}

// Style returns the style selected by c. Out-of-range values return Plain.
func (c Color) Style() Style {
	if !c.valid() {
		return Plain
	}
	return palette[c].style
}

// String returns the lowercase name of the color.
func (c Color) String() string {
	if !c.valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return palette[c].name
}

// ParseColor converts a case-insensitive color name into a Color.
func ParseColor(name string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for c := Color(0); c < numColors; c++ {
		if palette[c].name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (must be one of: %s)", ErrInvalidColor, name, strings.Join(names(), ", "))
}

func names() []string {
	out := make([]string, 0, numColors)
	for _, p := range palette {
		out = append(out, p.name)
	}
	return out
}

// Set implements pflag.Value.
func (c *Color) Set(name string) error {
	parsed, err := ParseColor(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Type implements pflag.Value.
func (c *Color) Type() string {
	return "color"
}

// ColorString pairs raw text with a color. Colorized is only populated by
// Paint or Reset; it is not kept in sync with Text or Color.
type ColorString struct {
	// Color is the style applied by Paint
	Color Color
	// Text is the original unformatted text
	Text string
	// Colorized is the formatted text
	Colorized string
}

// NewColorString creates a ColorString with an empty Colorized field.
func NewColorString(c Color, text string) *ColorString {
	return &ColorString{Color: c, Text: text}
}

// Paint applies the style selected by Color to Text and stores the result in Colorized.
func (s *ColorString) Paint() {
	s.Colorized = s.Color.Style()(s.Text)
}

// Reset stores Text wrapped in reset sequences in Colorized, regardless of Color.
func (s *ColorString) Reset() {
	s.Colorized = Reset(s.Text)
}
