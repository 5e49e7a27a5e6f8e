// Package watcher reports debounced changes to files in a directory.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType represents the type of file system event
type EventType int

const (
	EventWritten EventType = iota + 1
	EventRemoved
)

func (t EventType) String() string {
	switch t {
	case EventWritten:
		return "written"
	case EventRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Event represents a settled change of a watched file.
type Event struct {
	Path      string
	Type      EventType
	Timestamp time.Time
}

// Config contains configuration for the file watcher
type Config struct {
	// Dir is the directory to watch. Subdirectories are not watched.
	Dir string

	// Files are base names matched literally.
	Files []string

	// Patterns are glob patterns matched against file base names
	// (e.g., "*.jar"). When both Files and Patterns are empty every file
	// matches.
	Patterns []string

	// Debounce is how long a file must stay quiet before its event is emitted.
	Debounce time.Duration
}

// ForFile returns a configuration that watches a single file.
// Watching the parent directory lets the watcher survive the file being
// replaced by rename, which is how most build tools write archives.
func ForFile(path string) *Config {
	return &Config{
		Dir:      filepath.Dir(path),
		Files:    []string{filepath.Base(path)},
		Debounce: 500 * time.Millisecond,
	}
}

// Watcher watches for file changes in a directory
type Watcher struct {
	config  *Config
	watcher *fsnotify.Watcher
	events  chan Event
	errors  chan error
	done    chan struct{}
	mu      sync.Mutex
	running bool

	pending   map[string]*time.Timer
	pendingMu sync.Mutex
}

// New creates a new file watcher
func New(config *Config) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		config:  config,
		watcher: fsWatcher,
		events:  make(chan Event, 16),
		errors:  make(chan error, 4),
		done:    make(chan struct{}),
		pending: make(map[string]*time.Timer),
	}, nil
}

// Start begins watching for file changes
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.watcher.Add(w.config.Dir); err != nil {
		return err
	}
	w.running = true

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return w.watcher.Close()
	}

	w.running = false
	close(w.done)

	w.pendingMu.Lock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
	w.pendingMu.Unlock()

	return w.watcher.Close()
}

// Events returns the channel of file events
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of errors
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// processEvents processes fsnotify events and emits debounced Events
func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
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
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// handleEvent handles a single fsnotify event
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !w.matchesPattern(event.Name) {
		return
	}

	var eventType EventType
	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		eventType = EventWritten
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eventType = EventRemoved
	default:
		return
	}

	w.debounce(Event{
		Path:      event.Name,
		Type:      eventType,
		Timestamp: time.Now(),
	})
}

// debounce restarts the quiet period of event.Path; the last event wins.
func (w *Watcher) debounce(event Event) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	if timer, ok := w.pending[event.Path]; ok {
		timer.Stop()
	}

	w.pending[event.Path] = time.AfterFunc(w.config.Debounce, func() {
		w.pendingMu.Lock()
		delete(w.pending, event.Path)
		w.pendingMu.Unlock()

		select {
		case w.events <- event:
		case <-w.done:
		}
	})
}

// matchesPattern checks if a file matches any of the watched names or patterns
func (w *Watcher) matchesPattern(path string) bool {
	if len(w.config.Files) == 0 && len(w.config.Patterns) == 0 {
		return true
	}

	base := filepath.Base(path)
	for _, name := range w.config.Files {
		if name == base {
			return true
		}
	}
	for _, pattern := range w.config.Patterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	return false
}
