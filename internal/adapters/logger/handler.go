package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/kiln/internal/ui/output"
	"go.trai.ch/kiln/internal/ui/style"
)

// LevelSuccess is the slog level used for success messages.
// It sits between Info and Warn so that it is shown whenever info output is.
const LevelSuccess = slog.LevelInfo + 2

// levelStyle is the icon and color a message category is rendered with.
type levelStyle struct {
	icon  string
	color lipgloss.Color
}

var (
	plainStyle  = levelStyle{color: style.Slate}
	levelStyles = map[slog.Level]levelStyle{
		LevelSuccess:    {icon: style.Check, color: style.Green},
		slog.LevelWarn:  {icon: style.Warning, color: style.Yellow},
		slog.LevelError: {icon: style.Cross, color: style.Red},
	}
)

// PrettyHandler is a slog.Handler that writes one colored line per record,
// prefixed with the icon of its category. Attributes follow the message as
// key=value pairs.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler

	// attrs holds the rendered key=value pairs added through WithAttrs.
	attrs []string
	// group is the dotted key prefix of the open groups.
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or to stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes r as a single line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	ls, ok := levelStyles[r.Level]
	if !ok {
		ls = plainStyle
	}

	var line strings.Builder
	if ls.icon != "" {
		line.WriteString(ls.icon + " ")
	}
	line.WriteString(r.Message)

	for _, attr := range h.attrs {
		line.WriteString(" " + attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(&line, h.group, attr)
		return true
	})

	styled := h.out.String(line.String()).Foreground(h.out.Color(string(ls.color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a handler that renders attrs, under the current group, on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rendered := make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(rendered, h.attrs)
	for _, attr := range attrs {
		var sb strings.Builder
		appendAttr(&sb, h.group, attr)
		if sb.Len() > 0 {
			rendered = append(rendered, sb.String()[1:])
		}
	}

	clone := *h
	clone.attrs = rendered
	return &clone
}

// WithGroup returns a handler whose attribute keys are prefixed with name.
// Nested groups are joined with dots.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.group = qualify(h.group, name)
	return &clone
}

// appendAttr writes attr as " key=value" to sb. Group values are flattened
// into one pair per member.
func appendAttr(sb *strings.Builder, group string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	key := qualify(group, attr.Key)
	if attr.Value.Kind() != slog.KindGroup {
		sb.WriteString(" " + key + "=" + attr.Value.String())
		return
	}
	for _, member := range attr.Value.Group() {
		appendAttr(sb, key, member)
	}
}

func qualify(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}
