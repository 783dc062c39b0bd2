package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// prettyHandler holds the state shared by the colorized handlers.
// Attributes added with WithAttrs are resolved eagerly and kept in order.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	groups []string
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// header returns the built-in attributes of r after ReplaceAttr.
func (h *prettyHandler) header(r slog.Record) []slog.Attr {
	attrs := make([]slog.Attr, 0, 4)

	if !r.Time.IsZero() {
		attrs = append(attrs, slog.Time(slog.TimeKey, r.Time))
	}

	attrs = append(attrs, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			attrs = append(attrs,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	attrs = append(attrs, slog.String(slog.MessageKey, r.Message))

	return h.replace(nil, attrs)
}

// body returns the handler's own attributes followed by those of r, with
// keys qualified by the open groups.
func (h *prettyHandler) body(r slog.Record) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, h.qualify(a))

		return true
	})

	return attrs
}

func (h *prettyHandler) replace(groups []string, attrs []slog.Attr) []slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return attrs
	}

	out := attrs[:0]

	for _, a := range attrs {
		if a = h.opts.ReplaceAttr(groups, a); !a.Equal(slog.Attr{}) {
			out = append(out, a)
		}
	}

	return out
}

func (h *prettyHandler) qualify(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()
	if len(h.groups) > 0 {
		a.Key = strings.Join(h.groups, ".") + "." + a.Key
	}

	return a
}

func (h *prettyHandler) withAttrs(attrs []slog.Attr) *prettyHandler {
	c := *h
	c.attrs = slices.Clone(h.attrs)

	for _, a := range attrs {
		c.attrs = append(c.attrs, h.qualify(a))
	}

	return &c
}

func (h *prettyHandler) withGroup(name string) *prettyHandler {
	c := *h
	if name != "" {
		c.groups = append(slices.Clip(h.groups), name)
	}

	return &c
}

func (h *prettyHandler) write(buf *bytes.Buffer) error {
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

// prettyTextHandler writes one colorized key=value line per record.
type prettyTextHandler struct{ *prettyHandler }

func newPrettyTextHandler(w io.Writer, opts *slog.HandlerOptions) prettyTextHandler {
	return prettyTextHandler{&prettyHandler{opts: *opts, mu: &sync.Mutex{}, w: w}}
}

func (h prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	for _, a := range append(h.header(r), h.body(r)...) {
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteString(colorGray + a.Key + colorReset + "=")
		writeValue(&buf, a.Value)
	}

	return h.write(&buf)
}

func (h prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return prettyTextHandler{h.withAttrs(attrs)}
}

func (h prettyTextHandler) WithGroup(name string) slog.Handler {
	return prettyTextHandler{h.withGroup(name)}
}

// prettyJSONHandler writes an indented, colorized JSON-like object per record.
// String values are not quoted.
type prettyJSONHandler struct{ *prettyHandler }

func newPrettyJSONHandler(w io.Writer, opts *slog.HandlerOptions) prettyJSONHandler {
	return prettyJSONHandler{&prettyHandler{opts: *opts, mu: &sync.Mutex{}, w: w}}
}

func (h prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	buf.WriteString("{\n")

	for i, a := range append(h.header(r), h.body(r)...) {
		if i > 0 {
			buf.WriteString(",\n")
		}

		buf.WriteString("  " + colorGray + a.Key + colorReset + ": ")
		writeValue(&buf, a.Value)
	}

	buf.WriteString("\n}")

	return h.write(&buf)
}

func (h prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return prettyJSONHandler{h.withAttrs(attrs)}
}

func (h prettyJSONHandler) WithGroup(name string) slog.Handler {
	return prettyJSONHandler{h.withGroup(name)}
}

// levelColor returns the color for a level name or slog.Level.
func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return colorRed
	case level >= slog.LevelWarn:
		return colorYellow
	case level >= slog.LevelInfo:
		return colorGreen
	default:
		return colorBlue
	}
}

func writeValue(buf *bytes.Buffer, v slog.Value) {
	color, text := colorCyan, ""

	switch v.Kind() {
	case slog.KindString:
		text = v.String()
		if l := ParseLevel(text); strings.EqualFold(text, l.String()) {
			color = levelColor(slog.Level(l))
		}

	case slog.KindInt64:
		color, text = colorYellow, strconv.FormatInt(v.Int64(), 10)

	case slog.KindUint64:
		color, text = colorYellow, strconv.FormatUint(v.Uint64(), 10)

	case slog.KindFloat64:
		color, text = colorYellow, strconv.FormatFloat(v.Float64(), 'g', -1, 64)

	case slog.KindBool:
		color, text = colorRed, "false"
		if v.Bool() {
			color, text = colorGreen, "true"
		}

	case slog.KindDuration:
		color, text = colorMagenta, v.Duration().String()

	case slog.KindTime:
		color, text = colorBlue, v.Time().String()

	case slog.KindGroup:
		parts := make([]string, 0, len(v.Group()))
		for _, a := range v.Group() {
			parts = append(parts, a.Key+"="+a.Value.Resolve().String())
		}

		text = "{" + strings.Join(parts, " ") + "}"

	default:
		if level, ok := v.Any().(slog.Level); ok {
			color, text = levelColor(level), level.String()
		} else {
			text = v.String()
		}
	}

	buf.WriteString(color + text + colorReset)
}
