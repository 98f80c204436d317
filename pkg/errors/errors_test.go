package errors

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"
	"time"
)

func TestOverlayErrorString(t *testing.T) {
	err := &OverlayError{
		Op:   "appearance.Load",
		Kind: KindConfig,
		Err:  fs.ErrNotExist,
	}
	want := "appearance.Load [config]: file does not exist"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestOverlayErrorWithPath(t *testing.T) {
	err := &OverlayError{
		Op:   "appearance.Load",
		Kind: KindConfig,
		Path: "/tmp/skin.yaml",
		Err:  fs.ErrPermission,
	}
	want := "path=/tmp/skin.yaml"
	if got := err.Error(); !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestOverlayErrorUnwrap(t *testing.T) {
	err := &OverlayError{Op: "x", Err: fs.ErrNotExist}
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should see the wrapped error")
	}
	var target *OverlayError
	if !stderrors.As(err, &target) {
		t.Error("errors.As should find *OverlayError")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindGeometry, "geometry"},
		{KindRender, "render"},
		{KindWatch, "watch"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "overlay.Paint"
	if got, want := err.Error(), "panic in overlay.Paint: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	rec := installRecorder(t)

	Report(&OverlayError{Op: "test.op", Kind: KindRender, Err: fs.ErrInvalid})
	Report(nil)

	if rec.ErrorCount() != 1 {
		t.Fatalf("expected 1 error, got %d", rec.ErrorCount())
	}
	if rec.Errors[0].Op != "test.op" {
		t.Errorf("Op = %q, want %q", rec.Errors[0].Op, "test.op")
	}
	if rec.Errors[0].Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNotice(t *testing.T) {
	rec := installRecorder(t)

	ReportNotice("shape.Build", "unable to draw split shape", "missing", "hidden")

	if rec.NoticeCount() != 1 {
		t.Fatalf("expected 1 notice, got %d", rec.NoticeCount())
	}
	n := rec.Notices[0]
	if n.Op != "shape.Build" || n.Message != "unable to draw split shape" {
		t.Errorf("unexpected notice %+v", n)
	}
	if len(n.Attrs) != 2 {
		t.Errorf("Attrs = %v, want 2 entries", n.Attrs)
	}
}

func TestRecover(t *testing.T) {
	rec := installRecorder(t)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if len(rec.Panics) != 1 {
		t.Fatalf("expected panic to be recovered and captured, got %d", len(rec.Panics))
	}
	if rec.Panics[0].Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", rec.Panics[0].Value, "intentional test panic")
	}
	if rec.Panics[0].Op != "test.recover" {
		t.Errorf("Op = %q, want %q", rec.Panics[0].Op, "test.recover")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	installRecorder(t)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback got %v, want 42", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	rec := installRecorder(t)
	if Handler() != rec {
		t.Fatalf("Handler() = %T, want the installed recorder", Handler())
	}

	SetHandler(nil)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should restore LogHandler, got %T", Handler())
	}
}

func installRecorder(t *testing.T) *Recorder {
	t.Helper()
	rec := &Recorder{}
	SetHandler(rec)
	t.Cleanup(func() { SetHandler(nil) })
	return rec
}

func TestLogHandlerWritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHandler(&buf, false)

	h.HandleNotice(&Notice{Op: "shape.Build", Message: "unable to draw split shape", Attrs: []any{"section", "hidden"}})
	h.HandleError(&OverlayError{Op: "appearance.Load", Kind: KindConfig, Path: "a.yaml", Err: fs.ErrNotExist})
	h.HandlePanic(&PanicError{Op: "overlay.Paint", Value: "boom", StackTrace: "frames"})

	out := buf.String()
	for _, want := range []string{
		`msg="unable to draw split shape"`,
		"op=shape.Build",
		"section=hidden",
		"kind=config",
		"path=a.yaml",
		"value=boom",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "frames") {
		t.Error("stack trace should only be logged when verbose")
	}
}
