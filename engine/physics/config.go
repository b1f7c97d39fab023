package physics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/memmaker/ridgeline/engine/util"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadConstants reads and validates a tunables file. Keys missing from the
// file keep their default value.
func LoadConstants(path string) (Constants, error) {
	constants := DefaultConstants()
	data, err := os.ReadFile(path)
	if err != nil {
		return constants, errors.Wrapf(err, "reading physics constants from %s", path)
	}
	if err := yaml.Unmarshal(data, &constants); err != nil {
		return constants, errors.Wrapf(err, "parsing physics constants from %s", path)
	}
	if err := constants.Validate(); err != nil {
		return constants, errors.Wrapf(err, "invalid physics constants in %s", path)
	}
	return constants, nil
}

// ConstantsWatcher hot-reloads a tunables file. Every valid save is delivered
// on Updates; invalid saves are logged and dropped, the last good set stays
// active.
type ConstantsWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan Constants
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewConstantsWatcher(path string) (*ConstantsWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating constants watcher")
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, errors.Wrapf(err, "watching %s", filepath.Dir(path))
	}

	watcher := &ConstantsWatcher{
		watcher: w,
		path:    filepath.Clean(path),
		Updates: make(chan Constants, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *ConstantsWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// run is the sole owner of Updates and Errors: it does every send and closes
// both channels on the way out, so Close can never race a pending send.
func (w *ConstantsWatcher) run() {
	defer close(w.Updates)
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
			if filepath.Clean(event.Name) != w.path || !isTunablesFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			constants, err := LoadConstants(w.path)
			if err != nil {
				util.LogConfigError(fmt.Sprintf("[Constants] reload rejected: %v", err))
				continue
			}
			util.LogConfigInfo(fmt.Sprintf("[Constants] reloaded %s", w.path))
			select {
			case w.Updates <- constants:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

func isTunablesFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
