package assets

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 250 * time.Millisecond

// Watch invalidates the catalog whenever something under dir changes, so a
// thumbnail dropped into the directory shows up without a restart. It blocks
// until ctx is done.
func (c *Catalog) Watch(ctx context.Context, dir string, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create asset watcher: %w", err)
	}
	defer watcher.Close()

	if err := addTree(watcher, dir); err != nil {
		return err
	}
	logger.Info("watching assets", "dir", dir)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				// New subdirectories are not watched automatically.
				if err := addTree(watcher, event.Name); err != nil {
					logger.Debug("asset watcher add", "path", event.Name, "error", err)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			name, op := event.Name, event.Op.String()
			timer = time.AfterFunc(watchDebounce, func() {
				c.Invalidate()
				logger.Debug("asset catalog invalidated", "path", name, "op", op)
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("asset watcher error", "error", err)
		}
	}
}

func addTree(watcher *fsnotify.Watcher, root string) error {
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := watcher.Add(p); err != nil {
				return fmt.Errorf("watch %s: %w", p, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk assets %s: %w", root, err)
	}
	return nil
}
