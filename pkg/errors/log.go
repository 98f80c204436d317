package errors

import (
	"io"
	"log/slog"
	"os"
)

// LogHandler is an ErrorHandler that writes structured log records.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Logger receives the records. Nil logs text to stderr.
	Logger *slog.Logger
}

// NewLogHandler returns a LogHandler writing text records to w.
func NewLogHandler(w io.Writer, verbose bool) *LogHandler {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return &LogHandler{
		Verbose: verbose,
		Logger:  slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// HandleError logs an OverlayError at error level.
func (h *LogHandler) HandleError(err *OverlayError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "err", err.Err}
	if err.Path != "" {
		attrs = append(attrs, "path", err.Path)
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("barskin error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("barskin panic", attrs...)
}

// HandleNotice logs a Notice at info level.
func (h *LogHandler) HandleNotice(n *Notice) {
	if n == nil {
		return
	}
	h.logger().Info(n.Message, append([]any{"op", n.Op}, n.Attrs...)...)
}
