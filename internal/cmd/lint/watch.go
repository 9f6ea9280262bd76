package lint

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/open-cli-collective/searchui-cli/internal/cmdutil"
)

const debounceWindow = 100 * time.Millisecond

// watchSet maps cleaned absolute paths to their role in the watch loop.
type watchSet struct {
	files         map[string]bool
	documentation string
}

func newWatchSet(files []string, documentation string) (*watchSet, error) {
	ws := &watchSet{files: make(map[string]bool, len(files))}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		ws.files[abs] = true
	}
	if documentation != "" {
		abs, err := filepath.Abs(documentation)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", documentation, err)
		}
		ws.documentation = abs
	}
	return ws, nil
}

// dirs returns the directories to watch. Directories are watched instead of
// files so that editors replacing a file on save keep being tracked.
func (ws *watchSet) dirs() []string {
	seen := make(map[string]bool)
	var dirs []string
	add := func(path string) {
		dir := filepath.Dir(path)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	for f := range ws.files {
		add(f)
	}
	if ws.documentation != "" {
		add(ws.documentation)
	}
	return dirs
}

// classify reports whether an event path is a linted file or the documentation.
func (ws *watchSet) classify(path string) (lintFile, docs bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, false
	}
	return ws.files[abs], abs == ws.documentation
}

func runWatch(ctx context.Context, opts *lintOptions, session *cmdutil.Session, documentation string) error {
	ws, err := newWatchSet(opts.files, documentation)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range ws.dirs() {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	relint := func() {
		if err := runLint(opts, session); err != nil && !errors.Is(err, ErrDiagnosticsFound) {
			session.Renderer.Warning(err.Error())
		}
	}
	relint()

	var (
		timer      *time.Timer
		timerC     <-chan time.Time
		reloadDocs bool
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			lintFile, docs := ws.classify(event.Name)
			if !lintFile && !docs {
				continue
			}
			zap.S().Debugw("file changed", "path", event.Name, "op", event.Op.String())
			reloadDocs = reloadDocs || docs
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				timer.Reset(debounceWindow)
			}

		case <-timerC:
			timer, timerC = nil, nil
			if reloadDocs {
				reloadDocs = false
				if err := reloadDocumentation(session, ws.documentation); err != nil {
					session.Renderer.Warning(fmt.Sprintf("documentation not reloaded, keeping previous version: %v", err))
					continue
				}
			}
			relint()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			zap.S().Warnw("file watcher error", "error", err)
		}
	}
}

// reloadDocumentation swaps freshly read documentation into the session's
// store. On failure the previous snapshot stays in use.
func reloadDocumentation(session *cmdutil.Session, path string) error {
	if err := session.Store.ReloadFile(path); err != nil {
		return fmt.Errorf("failed to reload documentation: %w", err)
	}
	zap.S().Infow("documentation reloaded", "path", path, "entities", session.Store.Len())
	return nil
}
