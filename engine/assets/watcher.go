package assets

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/facet/engine/core"
)

// DefaultDebounce is how long a file must stay quiet before a change is reported.
const DefaultDebounce = 100 * time.Millisecond

/**
 * @brief Watches a set of files and reports each one at most once per burst of
 * writes. Directories are watched instead of the files themselves so that
 * editors replacing a file by rename keep being observed.
 */
type Watcher struct {
	fsnotify *fsnotify.Watcher
	files    map[string]struct{}
	debounce time.Duration

	changes chan string
	errors  chan error
	done    chan struct{}

	mutex    sync.Mutex
	isClosed bool
	wg       sync.WaitGroup
}

func NewWatcher(debounce time.Duration, paths ...string) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsnotify: fsWatch,
		files:    make(map[string]struct{}),
		debounce: debounce,
		changes:  make(chan string, 8),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsWatch.Close()
			return nil, err
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsWatch.Add(dir); err != nil {
			fsWatch.Close()
			return nil, err
		}
	}

	w.wg.Add(1)
	go w.start()
	return w, nil
}

// Changes delivers the absolute path of every watched file that changed.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

func (w *Watcher) Errors() <-chan error {
	return w.errors
}

func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return errors.New("watcher already closed")
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	w.wg.Wait()
	return nil
}

func (w *Watcher) start() {
	defer w.wg.Done()

	pending := make(map[string]struct{})
	// nil until a watched file changes
	var quiet <-chan time.Time

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(e.Name)
			if err != nil {
				continue
			}
			if _, watched := w.files[name]; !watched {
				continue
			}
			pending[name] = struct{}{}
			quiet = time.After(w.debounce)

		case <-quiet:
			quiet = nil
			for name := range pending {
				select {
				case w.changes <- name:
				case <-w.done:
					w.fsnotify.Close()
					return
				}
				delete(pending, name)
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("watcher: %s", err.Error())
			select {
			case w.errors <- err:
			default:
			}

		case <-w.done:
			w.fsnotify.Close()
			return
		}
	}
}
