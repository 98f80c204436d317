package errors

import "sync"

// Recorder is an ErrorHandler that keeps everything it receives in memory.
// Install it with SetHandler in tests to assert on reported diagnostics.
type Recorder struct {
	mu      sync.Mutex
	Errors  []*OverlayError
	Panics  []*PanicError
	Notices []*Notice
}

func (r *Recorder) HandleError(err *OverlayError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, err)
}

func (r *Recorder) HandlePanic(err *PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Panics = append(r.Panics, err)
}

func (r *Recorder) HandleNotice(n *Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notices = append(r.Notices, n)
}

// NoticeCount returns how many notices were recorded.
func (r *Recorder) NoticeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Notices)
}

// ErrorCount returns how many errors were recorded.
func (r *Recorder) ErrorCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Errors)
}
