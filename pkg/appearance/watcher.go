package appearance

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/barskin/pkg/errors"
)

// DefaultDebounce is how long the watcher waits for a burst of file events
// to settle before reloading.
const DefaultDebounce = 50 * time.Millisecond

// Watcher reloads an appearance file whenever it changes on disk and applies
// it to a model.
//
// Files are loaded on the watcher's goroutine; the resulting Apply is handed
// to dispatch so that the model is only mutated on the UI thread.
type Watcher struct {
	path     string
	model    *Model
	dispatch func(func())
	debounce time.Duration

	fs   *fsnotify.Watcher
	done chan struct{}
	wg   sync.WaitGroup

	mu    sync.Mutex
	timer *time.Timer
}

// Watch starts watching path. The containing directory is watched rather
// than the file itself so that editors that save by renaming a temporary
// file are noticed.
func Watch(path string, model *Model, dispatch func(func())) (*Watcher, error) {
	return WatchWithDebounce(path, model, dispatch, DefaultDebounce)
}

// WatchWithDebounce is like Watch with a custom debounce interval.
func WatchWithDebounce(path string, model *Model, dispatch func(func()), debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		path:     abs,
		model:    model,
		dispatch: dispatch,
		debounce: debounce,
		fs:       fw,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching. Pending reloads are dropped.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			errors.Report(&errors.OverlayError{
				Op:   "appearance.Watch",
				Kind: errors.KindWatch,
				Err:  err,
				Path: w.path,
			})
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	select {
	case <-w.done:
		return
	default:
	}
	doc, err := Load(w.path)
	if err != nil {
		// A half-written file fails to parse; the next write retries.
		errors.Report(&errors.OverlayError{
			Op:   "appearance.Reload",
			Kind: errors.KindConfig,
			Err:  err,
			Path: w.path,
		})
		return
	}
	w.dispatch(func() {
		if err := Apply(doc, w.model, filepath.Dir(w.path)); err != nil {
			errors.Report(&errors.OverlayError{
				Op:   "appearance.Apply",
				Kind: errors.KindConfig,
				Err:  err,
				Path: w.path,
			})
		}
	})
}
