package catalogio

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/lightninglabs/ironthrone/catalog"
)

// reloadDebounce absorbs the burst of write events an editor typically
// produces for a single logical save, so a catalog edit triggers one
// reload rather than several.
const reloadDebounce = 250 * time.Millisecond

// Watcher reloads a catalog file from disk whenever it changes and hands
// the freshly parsed Expressions to OnReload. It must be started with
// Start and stopped with Close.
type Watcher struct {
	path     string
	log      *zap.Logger
	onReload func([]*catalog.Expression)

	fsw *fsnotify.Watcher

	mu      sync.Mutex
	pending bool
	timer   *time.Timer

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewWatcher builds a Watcher for path. onReload is invoked, from the
// debounce timer's goroutine, with the newly loaded catalog each time path
// changes and reloads successfully; load errors are logged and the
// previous catalog is left in place.
func NewWatcher(path string, log *zap.Logger, onReload func([]*catalog.Expression)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		path:     path,
		log:      log,
		onReload: onReload,
		fsw:      fsw,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching path in a background goroutine. It does not
// block.
func (w *Watcher) Start() {
	go w.run()
}

// Close stops the watcher and releases its underlying OS resources.
func (w *Watcher) Close() error {
	close(w.stopCh)
	<-w.doneCh
	return w.fsw.Close()
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("catalog watcher error", zap.Error(err), zap.String("path", w.path))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(reloadDebounce, w.reload)
}

func (w *Watcher) reload() {
	expressions, err := LoadFile(w.path)
	if err != nil {
		w.log.Warn("catalog reload failed, keeping previous catalog",
			zap.String("path", w.path), zap.Error(err))
		return
	}

	w.log.Info("catalog reloaded",
		zap.String("path", w.path), zap.Int("expressions", len(expressions)))
	w.onReload(expressions)
}
