package config

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchSettings watches the settings file and emits the reloaded settings
// whenever it changes. The watch runs until the watcher fails; editors
// that replace the file on save are handled by watching the directory.
func WatchSettings(path string) (<-chan *Settings, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	reloads := make(chan *Settings, 1)

	// reloads is never closed: a debounce timer may still fire after the
	// watcher dies, and a send on a closed channel would panic.
	go func() {
		defer watcher.Close()

		// Debounce timer
		var debounceTimer *time.Timer
		debounceDelay := 100 * time.Millisecond

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if filepath.Base(event.Name) != filepath.Base(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				// Debounce rapid events
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDelay, func() {
					settings, err := LoadSettings(path)
					if err != nil {
						slog.Warn("settings reload failed", "path", path, "error", err)
						return
					}

					select {
					case reloads <- settings:
					default:
						// Channel full, drop the reload
					}
				})

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return reloads, nil
}
