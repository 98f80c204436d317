// Package errors provides structured error reporting for the overlay engine.
//
// Nothing in the engine is fatal: failures degrade one frame and are sent to
// a process-wide ErrorHandler, which by default logs them with log/slog.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an appearance configuration error.
	KindConfig
	// KindGeometry indicates a shape that could not be built as requested.
	KindGeometry
	// KindRender indicates a rendering error.
	KindRender
	// KindWatch indicates a file watching error.
	KindWatch
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindGeometry:
		return "geometry"
	case KindRender:
		return "render"
	case KindWatch:
		return "watch"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// OverlayError represents a structured error in the overlay engine.
type OverlayError struct {
	// Op is the operation that failed (e.g., "appearance.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if any.
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *OverlayError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *OverlayError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "overlay.Paint").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Notice is a diagnostic about degraded output. It is not an error: the
// frame was still drawn, just with simpler geometry or a skipped layer.
type Notice struct {
	// Op is the operation emitting the notice.
	Op string
	// Message describes what happened.
	Message string
	// Attrs are alternating key/value pairs, as accepted by log/slog.
	Attrs []any
	// Timestamp is when the notice was emitted.
	Timestamp time.Time
}

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *OverlayError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleNotice is called for diagnostics about degraded output.
	HandleNotice(n *Notice)
}
