package telemetry

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns a JSON logger writing to stdout that stamps every record
// with the trace and span ids found in its context.
func NewLogger(level slog.Level) *slog.Logger {
	return NewLoggerTo(os.Stdout, level)
}

// NewLoggerTo is NewLogger with an explicit destination.
func NewLoggerTo(w io.Writer, level slog.Level) *slog.Logger {
	baseHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(&traceHandler{baseHandler: baseHandler})
}

// ParseLevel maps LOG_LEVEL values onto slog levels. Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithComponent tags a logger with the component that owns it.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(slog.String("component", component))
}

// traceHandler adds trace_id and span_id at the top level of every record.
// WithAttrs and WithGroup calls are recorded in order and replayed onto the
// base handler, so attrs stay inside the group that was open when they were added.
type traceHandler struct {
	baseHandler slog.Handler
	ops         []handlerOp
}

// handlerOp is either a group (name set) or a set of attrs.
type handlerOp struct {
	group string
	attrs []slog.Attr
}

func (h *traceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	traceAttrs := []slog.Attr{}
	if traceID := TraceID(ctx); traceID != "" {
		traceAttrs = append(traceAttrs, slog.String("trace_id", traceID))
	}
	if spanID := SpanID(ctx); spanID != "" {
		traceAttrs = append(traceAttrs, slog.String("span_id", spanID))
	}

	handler := h.baseHandler

	if len(traceAttrs) > 0 {
		handler = handler.WithAttrs(traceAttrs)
	}

	for _, op := range h.ops {
		if op.group != "" {
			handler = handler.WithGroup(op.group)
		} else {
			handler = handler.WithAttrs(op.attrs)
		}
	}

	return handler.Handle(ctx, r)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.with(handlerOp{attrs: append([]slog.Attr(nil), attrs...)})
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.with(handlerOp{group: name})
}

func (h *traceHandler) with(op handlerOp) *traceHandler {
	ops := make([]handlerOp, len(h.ops), len(h.ops)+1)
	copy(ops, h.ops)
	return &traceHandler{
		baseHandler: h.baseHandler,
		ops:         append(ops, op),
	}
}
