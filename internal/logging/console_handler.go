// Package logging provides the slog handler used by the command-line tools.
// It prints one human-readable line per record with the level highlighted.
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/isseis/go-cli-utils/internal/color"
)

// ErrConsoleHandlerWriterRequired is returned when no writer is configured
var ErrConsoleHandlerWriterRequired = errors.New("ConsoleHandler: Writer is required")

// ConsoleHandlerOptions configures the ConsoleHandler.
type ConsoleHandlerOptions struct {
	// Level is the minimum log level to handle
	Level slog.Leveler

	// Writer is the output destination (typically os.Stderr)
	Writer io.Writer

	// UseColor highlights the level with ANSI escape sequences
	UseColor bool
}

// ConsoleHandler is a slog handler writing "LEVEL message key=value ..." lines.
type ConsoleHandler struct {
	mu       *sync.Mutex
	writer   io.Writer
	level    slog.Leveler
	useColor bool
	attrs    []slog.Attr
	groups   []string
}

// NewConsoleHandler creates a new ConsoleHandler with the given options.
func NewConsoleHandler(opts ConsoleHandlerOptions) (*ConsoleHandler, error) {
	if opts.Writer == nil {
		return nil, ErrConsoleHandlerWriterRequired
	}

	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	return &ConsoleHandler{
		mu:       &sync.Mutex{},
		writer:   opts.Writer,
		level:    level,
		useColor: opts.UseColor,
	}, nil
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes a log record.
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	sb.WriteString(h.formatLevel(r.Level))
	sb.WriteString(" ")
	sb.WriteString(r.Message)

	for _, attr := range h.attrs {
		appendAttr(&sb, "", attr)
	}
	prefix := h.groupPrefix()
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(&sb, prefix, attr)
		return true
	})
	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, sb.String())
	return err
}

// WithAttrs returns a new handler with additional attributes.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	// Attributes are qualified by the groups open at the time they are added.
	prefix := h.groupPrefix()
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, attr := range attrs {
		attr.Key = prefix + attr.Key
		clone.attrs = append(clone.attrs, attr)
	}
	return &clone
}

// WithGroup returns a new handler with an additional group.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.groups = make([]string, 0, len(h.groups)+1)
	clone.groups = append(clone.groups, h.groups...)
	clone.groups = append(clone.groups, name)
	return &clone
}

func (h *ConsoleHandler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

// formatLevel formats the log level with visual distinction
func (h *ConsoleHandler) formatLevel(level slog.Level) string {
	var label string
	var style color.Style
	switch {
	case level >= slog.LevelError:
		label, style = "ERROR", color.Red
	case level >= slog.LevelWarn:
		label, style = "WARN ", color.Cyan
	case level >= slog.LevelInfo:
		label, style = "INFO ", color.Green
	default:
		label, style = "DEBUG", color.Blue
	}

	if !h.useColor {
		return "[" + label + "]"
	}
	return style(label)
}

func appendAttr(sb *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	sb.WriteString(" ")
	sb.WriteString(prefix)
	sb.WriteString(attr.Key)
	sb.WriteString("=")
	sb.WriteString(formatValue(attr.Value))
}

// formatValue formats a slog.Value for display
func formatValue(value slog.Value) string {
	switch value.Kind() {
	case slog.KindString:
		s := value.String()
		if s == "" || strings.ContainsAny(s, " \t\n\"=") {
			return strconv.Quote(s)
		}
		return s
	case slog.KindTime:
		return value.Time().Format(time.RFC3339)
	case slog.KindDuration:
		return value.Duration().String()
	case slog.KindGroup:
		attrs := value.Group()
		if len(attrs) == 0 {
			return "{}"
		}
		parts := make([]string, 0, len(attrs))
		for _, attr := range attrs {
			parts = append(parts, attr.Key+"="+formatValue(attr.Value.Resolve()))
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return value.String()
	}
}
