package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce batches the burst of events editors emit on save
const DefaultDebounce = 300 * time.Millisecond

// Watcher reloads a content file into a MemoryStore whenever it changes.
// The parent directory is watched so atomic-rename saves are seen.
type Watcher struct {
	mu       sync.Mutex
	path     string
	store    *MemoryStore
	logger   *zap.Logger
	debounce time.Duration
	watcher  *fsnotify.Watcher

	pending  bool
	lastSeen time.Time
	running  bool
	reloads  int

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewWatcher creates a watcher for path feeding store
func NewWatcher(path string, store *MemoryStore, logger *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve content path: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		path:     abs,
		store:    store,
		logger:   logger,
		debounce: DefaultDebounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// SetDebounce overrides the debounce interval; call before Start
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if d > 0 {
		w.debounce = d
	}
}

// Start begins watching. It is non-blocking and a no-op when already running.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	w.watcher = fw
	w.running = true

	w.logger.Info("Watching content file", zap.String("path", w.path))
	go w.run(ctx)
	return nil
}

// Stop stops watching and waits for the event loop to exit
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("Failed to close content watcher", zap.Error(err))
	}
}

// Reloads returns how many successful reloads happened
func (w *Watcher) Reloads() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloads
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.tick())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Content watcher error", zap.Error(err))
		case now := <-ticker.C:
			w.processPending(now)
		}
	}
}

func (w *Watcher) tick() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	t := w.debounce / 3
	if t <= 0 {
		t = time.Millisecond
	}
	return t
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}
	w.logger.Debug("Content file event", zap.String("op", event.Op.String()))

	w.mu.Lock()
	w.pending = true
	w.lastSeen = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) processPending(now time.Time) {
	w.mu.Lock()
	if !w.pending || now.Sub(w.lastSeen) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = false
	w.mu.Unlock()

	planets, err := LoadFile(w.path)
	if err != nil {
		// keep serving the previous content
		w.logger.Warn("Content reload failed", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.store.Replace(planets)

	w.mu.Lock()
	w.reloads++
	w.mu.Unlock()
	w.logger.Info("Content reloaded", zap.String("path", w.path), zap.Int("planets", len(planets)))
}
