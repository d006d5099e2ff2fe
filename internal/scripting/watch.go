package scripting

import (
	"context"
	"fmt"
	"path/filepath"

	"GopherScript/internal/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the assembly whenever its manifest is written or replaced.
// It blocks until ctx is done. Reload failures are logged and the previous
// assembly stays active.
func (e *Engine) Watch(ctx context.Context) error {
	path := e.AssemblyPath()
	if path == "" {
		return ErrNoAssembly
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file are still seen
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	logger.Log.Info("Watching script assembly for changes", zap.String("path", target))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Errors are already logged by LoadAssembly
			_ = e.ReloadAssembly()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Log.Warn("Script assembly watcher error", zap.Error(err))
		}
	}
}
