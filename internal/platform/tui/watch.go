package tui

import (
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// watchDebounce collapses the burst of events editors emit on save.
const watchDebounce = 100 * time.Millisecond

// LevelChangedMsg is sent when a watched level file was written.
type LevelChangedMsg struct {
	Path string
}

// levelWatcher reports changes to a single file. The parent directory is
// watched so that editors which replace the file on save are still seen.
type levelWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan string
	closeCh chan struct{}
	once    sync.Once
	logger  *log.Logger
}

func newLevelWatcher(path string) (*levelWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	lw := &levelWatcher{
		watcher: w,
		path:    abs,
		events:  make(chan string, 1),
		closeCh: make(chan struct{}),
		logger:  log.Default().WithPrefix("watch"),
	}
	go lw.run()
	return lw, nil
}

func (w *levelWatcher) run() {
	defer close(w.events)

	var debounce <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce = time.After(watchDebounce)
		case <-debounce:
			debounce = nil
			select {
			case w.events <- w.path:
			default: // a reload is already pending
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "err", err)
		case <-w.closeCh:
			return
		}
	}
}

// wait returns a command that blocks until the next change.
func (w *levelWatcher) wait() tea.Cmd {
	return func() tea.Msg {
		path, ok := <-w.events
		if !ok {
			return nil
		}
		return LevelChangedMsg{Path: path}
	}
}

// Close stops watching. It is safe to call more than once.
func (w *levelWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}
