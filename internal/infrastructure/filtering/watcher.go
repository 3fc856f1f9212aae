package filtering

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/blockrules/internal/domain/entity"
	"github.com/bnema/blockrules/internal/logging"
)

// DefaultDebounce is how long a source file has to stay quiet before it is recompiled.
const DefaultDebounce = 500 * time.Millisecond

// Watcher recompiles local sources when their files change on disk.
// Parent directories are watched rather than the files, so editors that
// replace a file by renaming over it are still seen.
type Watcher struct {
	updater  SourceUpdater
	debounce time.Duration
	fsw      *fsnotify.Watcher

	mu      sync.Mutex
	sources map[string]*entity.RuleSource // keyed by cleaned path
	dirs    map[string]struct{}
	timers  map[string]*time.Timer
	onDone  func(*UpdateResult, error)
}

// NewWatcher creates a watcher that hands changed sources to updater.
func NewWatcher(updater SourceUpdater, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		updater:  updater,
		debounce: debounce,
		fsw:      fsw,
		sources:  make(map[string]*entity.RuleSource),
		dirs:     make(map[string]struct{}),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// OnUpdate registers a callback invoked after every triggered update.
func (w *Watcher) OnUpdate(cb func(*UpdateResult, error)) {
	w.mu.Lock()
	w.onDone = cb
	w.mu.Unlock()
}

// Add starts watching the file of source.
func (w *Watcher) Add(source *entity.RuleSource) error {
	path, err := filepath.Abs(source.Path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", source.Path, err)
	}
	dir := filepath.Dir(path)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.dirs[dir]; !ok {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.dirs[dir] = struct{}{}
	}
	w.sources[path] = source
	return nil
}

// Replace swaps the watched sources for sources. Directories stay watched;
// events for files that no longer belong to a source are ignored.
func (w *Watcher) Replace(sources []*entity.RuleSource) error {
	w.mu.Lock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	w.sources = make(map[string]*entity.RuleSource, len(sources))
	w.mu.Unlock()

	for _, s := range sources {
		if err := w.Add(s); err != nil {
			return err
		}
	}
	return nil
}

// Watched returns the number of source files being watched.
func (w *Watcher) Watched() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.sources)
}

// Run processes file events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	log := logging.Component(ctx, "source-watcher")
	log.Info().Int("sources", w.Watched()).Msg("watching rule sources")

	for {
		select {
		case <-ctx.Done():
			w.stopTimers()
			return ctx.Err()
		case e, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) && !e.Has(fsnotify.Rename) {
				continue
			}
			log.Trace().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify event")
			w.schedule(ctx, filepath.Clean(e.Name))
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("file watcher error")
		}
	}
}

// schedule (re)arms the debounce timer of path if it belongs to a source.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	source, ok := w.sources[path]
	if !ok {
		return
	}
	if t := w.timers[path]; t != nil {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		cb := w.onDone
		w.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		log := logging.Component(ctx, "source-watcher").With().Str("source", source.Name).Logger()
		log.Debug().Msg("source file changed, recompiling")

		res, err := w.updater.Update(ctx, source)
		if err != nil {
			log.Error().Err(err).Msg("watched update failed")
		}
		if cb != nil {
			cb(res, err)
		}
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}

// Close stops pending recompiles and releases the underlying watcher.
func (w *Watcher) Close() error {
	w.stopTimers()
	return w.fsw.Close()
}
