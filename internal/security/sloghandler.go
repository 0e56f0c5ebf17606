package security

import (
	"context"
	"log/slog"
)

// RedactingHandler is a slog.Handler middleware that scrubs secrets from the
// record message and every string-valued attribute before the record reaches
// the wrapped handler. Installed at logger construction, it covers every log
// call in the process, including ones made by adapter HTTP and socket code
// that never sees the credential store.
type RedactingHandler struct {
	next     slog.Handler
	redactor *Redactor
}

var _ slog.Handler = (*RedactingHandler)(nil)

// NewRedactingHandler wraps next so that redactor is applied to everything
// it handles.
func NewRedactingHandler(next slog.Handler, redactor *Redactor) *RedactingHandler {
	return &RedactingHandler{next: next, redactor: redactor}
}

// Enabled delegates to the wrapped handler.
func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle scrubs the message and the call-site attributes, then hands the
// rebuilt record to the wrapped handler. Attributes bound earlier via
// WithAttrs were already scrubbed when they were bound.
func (h *RedactingHandler) Handle(ctx context.Context, record slog.Record) error {
	clean := slog.NewRecord(record.Time, record.Level, h.redactor.Redact(record.Message), record.PC)
	record.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(h.scrub(a))
		return true
	})
	return h.next.Handle(ctx, clean)
}

// WithAttrs scrubs the bound attributes once, up front, and folds them into
// the wrapped handler.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		clean[i] = h.scrub(a)
	}
	return &RedactingHandler{next: h.next.WithAttrs(clean), redactor: h.redactor}
}

// WithGroup opens the group on the wrapped handler; scrubbing is unaffected
// by grouping.
func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{next: h.next.WithGroup(name), redactor: h.redactor}
}

// scrub redacts string content in an attribute, descending into groups.
// The attribute is resolved first so LogValuer, error, and fmt.Stringer
// values are scrubbed in their final textual form.
func (h *RedactingHandler) scrub(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindString:
		a.Value = slog.StringValue(h.redactor.Redact(a.Value.String()))
	case slog.KindGroup:
		group := a.Value.Group()
		clean := make([]slog.Attr, len(group))
		for i, ga := range group {
			clean[i] = h.scrub(ga)
		}
		a.Value = slog.GroupValue(clean...)
	case slog.KindAny:
		// Errors and other opaque values surface secrets through their
		// string form; only rewrite the value when something changed.
		text := a.Value.String()
		if redacted := h.redactor.Redact(text); redacted != text {
			a.Value = slog.StringValue(redacted)
		}
	}
	return a
}
