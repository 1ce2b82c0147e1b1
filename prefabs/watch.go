package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce collapses the event bursts editors emit for a single save.
const debounce = 100 * time.Millisecond

// Watcher reports edited actor prefabs so their descriptors can be
// rebuilt without restarting. Specs carries prefab filenames (base name
// only), ready to hand to LoadActorSpec.
type Watcher struct {
	fsw     *fsnotify.Watcher
	Specs   chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fsw:     fsw,
		Specs:   make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
		close(w.Specs)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			// Removal is not a reload; the embedded copy keeps serving.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Base(event.Name)
			if !isActorSpec(name) {
				continue
			}
			now := time.Now()
			if t, ok := last[name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[name] = now
			w.Specs <- name
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.Errors <- err
		case <-w.closeCh:
			return
		}
	}
}

// isActorSpec matches the extension ActorFiles serves.
func isActorSpec(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".yaml")
}
