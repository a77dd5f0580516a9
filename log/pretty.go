package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
)

// ANSI SGR sequences used by the pretty handlers.
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

// layout arranges the fields of one record.
type layout interface {
	open(b *bytes.Buffer)
	field(b *bytes.Buffer, n int, key, color, value string)
	close(b *bytes.Buffer)
}

// textLayout writes key=value pairs on one line.
type textLayout struct{}

func (textLayout) open(*bytes.Buffer) {}

func (textLayout) field(b *bytes.Buffer, n int, key, color, value string) {
	if n > 0 {
		b.WriteByte(' ')
	}

	b.WriteString(colorGray + key + colorReset + "=")
	b.WriteString(color + value + colorReset)
}

func (textLayout) close(b *bytes.Buffer) { b.WriteByte('\n') }

// jsonLayout writes an indented object with one field per line. Values are
// not quoted; the output is meant for eyes, not parsers.
type jsonLayout struct{}

func (jsonLayout) open(b *bytes.Buffer) { b.WriteString("{\n") }

func (jsonLayout) field(b *bytes.Buffer, n int, key, color, value string) {
	if n > 0 {
		b.WriteString(",\n")
	}

	b.WriteString("  " + colorGray + key + colorReset + ": ")
	b.WriteString(color + value + colorReset)
}

func (jsonLayout) close(b *bytes.Buffer) { b.WriteString("\n}\n") }

// prettyHandler is a colorizing [slog.Handler]. Attributes from WithAttrs
// and nested groups are flattened into dotted keys.
type prettyHandler struct {
	opts   *slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	layout layout
	prefix string
	attrs  []slog.Attr
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	l layout,
) *prettyHandler {
	return &prettyHandler{opts: opts, mu: &sync.Mutex{}, w: w, layout: l}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	floor := slog.LevelInfo
	if h.opts.Level != nil {
		floor = h.opts.Level.Level()
	}

	return level >= floor
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	c := *h
	c.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	c.attrs = append(c.attrs, h.attrs...)

	for _, a := range attrs {
		c.attrs = append(c.attrs, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var (
		b bytes.Buffer
		n int
	)

	emit := func(a slog.Attr, color string) {
		h.layout.field(&b, n, a.Key, color, a.Value.String())
		n++
	}

	h.layout.open(&b)

	builtin := []slog.Attr{
		slog.Time(slog.TimeKey, r.Time),
		slog.Any(slog.LevelKey, r.Level),
	}

	if h.opts.AddSource && r.PC != 0 {
		if src := r.Source(); src != nil {
			builtin = append(builtin,
				slog.String(slog.SourceKey, src.File+":"+strconv.Itoa(src.Line)))
		}
	}

	builtin = append(builtin, slog.String(slog.MessageKey, r.Message))

	for _, a := range builtin {
		if a.Key == slog.TimeKey && r.Time.IsZero() {
			continue
		}

		if h.opts.ReplaceAttr != nil {
			a = h.opts.ReplaceAttr(nil, a)
		}

		if a.Key == "" {
			continue
		}

		switch a.Key {
		case slog.LevelKey:
			emit(a, levelColor(r.Level))
		case slog.TimeKey:
			emit(a, colorBlue)
		default:
			emit(a, colorCyan)
		}
	}

	for _, a := range h.attrs {
		h.flatten(a, "", func(a slog.Attr) { emit(a, valueColor(a.Value)) })
	}

	r.Attrs(func(a slog.Attr) bool {
		h.flatten(a, h.prefix, func(a slog.Attr) { emit(a, valueColor(a.Value)) })

		return true
	})

	h.layout.close(&b)

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(b.Bytes())

	return err
}

// flatten resolves a and calls fn once per leaf with a dotted key.
func (h *prettyHandler) flatten(a slog.Attr, prefix string, fn func(slog.Attr)) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() != slog.KindGroup {
		if a.Key != "" {
			fn(slog.Attr{Key: prefix + a.Key, Value: a.Value})
		}

		return
	}

	if a.Key != "" {
		prefix += a.Key + "."
	}

	for _, g := range a.Value.Group() {
		h.flatten(g, prefix, fn)
	}
}

func levelColor(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return colorRed
	case l >= slog.LevelWarn:
		return colorYellow
	case l >= slog.LevelInfo:
		return colorGreen
	default:
		return colorBlue
	}
}

func valueColor(v slog.Value) string {
	switch v.Kind() {
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return colorYellow
	case slog.KindBool:
		if v.Bool() {
			return colorGreen
		}

		return colorRed
	case slog.KindDuration:
		return colorMagenta
	case slog.KindTime:
		return colorBlue
	case slog.KindAny:
		if _, ok := v.Any().(error); ok {
			return colorRed
		}
	}

	return colorCyan
}
