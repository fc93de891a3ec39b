// Package watch re-runs a build action when project sources change.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cmkr/cmkr/internal/ui"
)

// Source extensions that trigger a rebuild.
var sourceExts = map[string]bool{
	".c": true, ".h": true,
	".cc": true, ".cpp": true, ".cxx": true, ".c++": true,
	".hh": true, ".hpp": true, ".hxx": true,
	".txt": true, ".cmake": true,
}

const debounce = 300 * time.Millisecond

// Watcher observes a project tree and invokes a rebuild callback on
// relevant changes, debounced.
type Watcher struct {
	root     string
	buildDir string
	rebuild  func() error
}

// New returns a Watcher for the project rooted at root. Events under
// buildDir are ignored so build outputs do not retrigger builds.
func New(root, buildDir string, rebuild func() error) *Watcher {
	return &Watcher{root: root, buildDir: buildDir, rebuild: rebuild}
}

func (w *Watcher) relevant(path string) bool {
	if w.buildDir != "" {
		if rel, err := filepath.Rel(w.buildDir, path); err == nil &&
			rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return false
		}
	}
	return sourceExts[strings.ToLower(filepath.Ext(path))]
}

// addTree registers watches for root and every directory below it,
// skipping the build directory and dot directories.
func (w *Watcher) addTree(fw *fsnotify.Watcher) error {
	return filepath.WalkDir(w.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		base := filepath.Base(path)
		if path != w.root && strings.HasPrefix(base, ".") {
			return filepath.SkipDir
		}
		if w.buildDir != "" && path == w.buildDir {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}

// Run blocks watching for changes until ctx is canceled. Each burst of
// relevant events triggers one rebuild; rebuild failures are reported
// and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	if err := w.addTree(fw); err != nil {
		return err
	}
	ui.Infof("watching %s for changes", w.root)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addTree(fw)
				}
			}
			if !w.relevant(event.Name) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			ui.Warnf("watch error: %v", err)
		case <-fire:
			fire = nil
			if err := w.rebuild(); err != nil {
				ui.Errorf("rebuild failed: %v", err)
			}
		}
	}
}
