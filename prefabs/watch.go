package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind says what an edited file can reload.
type ChangeKind uint8

const (
	ChangeNone ChangeKind = iota
	// ChangeTable is a character, command or animation table.
	ChangeTable
	// ChangeScript is a hit-rule script.
	ChangeScript
)

// Classify reports what kind of prefab path names.
func Classify(path string) ChangeKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ChangeTable
	case ".tengo":
		return ChangeScript
	}
	return ChangeNone
}

// Change is one edited table or script.
type Change struct {
	Path string
	Kind ChangeKind
}

// Editors write a file several times per save. Writes to the same path
// within this window collapse into one change.
const settle = 100 * time.Millisecond

// Watcher turns edits under the watched directories into Changes. Both
// channels close once the watcher stops.
type Watcher struct {
	fs      *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	stop    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fs,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher and waits for its goroutine.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.stopped
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.stopped)
	defer close(w.Errors)
	defer close(w.Events)

	seen := make(map[string]time.Time)
	for {
		select {
		case <-w.stop:
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			ch, ok := w.change(ev, seen)
			if !ok {
				continue
			}
			select {
			case w.Events <- ch:
			case <-w.stop:
				return
			}
		}
	}
}

func (w *Watcher) change(ev fsnotify.Event, seen map[string]time.Time) (Change, bool) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return Change{}, false
	}
	kind := Classify(ev.Name)
	if kind == ChangeNone {
		return Change{}, false
	}
	now := time.Now()
	if at, ok := seen[ev.Name]; ok && now.Sub(at) < settle {
		return Change{}, false
	}
	seen[ev.Name] = now
	return Change{Path: ev.Name, Kind: kind}, true
}
