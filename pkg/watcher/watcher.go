package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/fsnotify/fsnotify"
)

// FileWatcher reports changes to individual files. It watches each file's
// parent directory, so editors that save by writing a temp file and renaming
// it over the original are still seen.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	logger    core.Logger
	debounce  time.Duration
	mu        sync.Mutex
	callbacks map[string]func(string) // keyed by absolute file path
	dirs      map[string]int          // watched directory -> number of files in it
	timers    map[string]*time.Timer
	closed    bool
}

// NewFileWatcher creates a watcher that fires at most once per debounce
// window for each file
func NewFileWatcher(debounce time.Duration, logger core.Logger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:   w,
		logger:    logger,
		debounce:  debounce,
		callbacks: make(map[string]func(string)),
		dirs:      make(map[string]int),
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch registers callback for every file in files. The callback receives
// the absolute path of the changed file.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if _, exists := fw.callbacks[absPath]; exists {
			fw.callbacks[absPath] = callback
			continue
		}

		dir := filepath.Dir(absPath)
		if fw.dirs[dir] == 0 {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
		}
		fw.dirs[dir]++
		fw.callbacks[absPath] = callback
	}

	return nil
}

// Start begins delivering change events on a background goroutine
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				// Renames and creates cover atomic saves
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					fw.handleFileChange(filepath.Clean(event.Name))
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fw.logger.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

// handleFileChange restarts the debounce timer for filePath
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.closed {
		return
	}
	callback, exists := fw.callbacks[filePath]
	if !exists {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}
	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		callback(filePath)
	})
}

// Close stops the watcher and any pending callbacks
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	fw.closed = true
	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.timers = make(map[string]*time.Timer)
	fw.mu.Unlock()

	return fw.watcher.Close()
}

// RemoveAll stops watching every registered file
func (fw *FileWatcher) RemoveAll() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for dir := range fw.dirs {
		if err := fw.watcher.Remove(dir); err != nil {
			return err
		}
	}
	for _, timer := range fw.timers {
		timer.Stop()
	}

	fw.callbacks = make(map[string]func(string))
	fw.dirs = make(map[string]int)
	fw.timers = make(map[string]*time.Timer)
	return nil
}
