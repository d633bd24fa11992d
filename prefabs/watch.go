package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// ChangeKind says which reload a file change calls for.
type ChangeKind int

const (
	ChangeUnknown ChangeKind = iota
	ChangePlayer
	ChangeLevel
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangePlayer:
		return "player"
	case ChangeLevel:
		return "level"
	case ChangeScript:
		return "script"
	default:
		return "unknown"
	}
}

type Change struct {
	Path string
	Kind ChangeKind
}

// Watcher reports edits to tuning, level and script files on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			kind := Classify(event.Name)
			if kind == ChangeUnknown {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- Change{Path: event.Name, Kind: kind}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// Classify maps a path to the reload it triggers.
func Classify(path string) ChangeKind {
	base := strings.ToLower(filepath.Base(path))
	switch {
	case base == PlayerFile:
		return ChangePlayer
	case base == LevelFile:
		return ChangeLevel
	case isScriptFile(base):
		return ChangeScript
	default:
		return ChangeUnknown
	}
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
