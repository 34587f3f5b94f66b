package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Quiet period after the last change event before the dictionary is reloaded.
var reloadSettle = 250 * time.Millisecond

var (
	errEmptyDictionary = errors.New("dictionary is empty, keeping the loaded words")
	errEngineClosed    = errors.New("engine is closed")
)

// Reload loads the dictionary into a fresh table and swaps it into the engine.
// On failure, or when the file has no words while the engine still has some,
// the engine keeps its current table.
func Reload(fs afero.Fs, cfg *Config, e *Engine) (LoadStats, error) {
	table := cfg.NewTable()
	stats, err := LoadDictionary(fs, cfg.Dictionary, table)
	if err != nil {
		table.Destroy()
		return stats, err
	}
	if table.Len() == 0 && e.Stats().Words > 0 {
		table.Destroy()
		return stats, errEmptyDictionary
	}
	if !e.Swap(table) {
		return stats, errEngineClosed
	}
	return stats, nil
}

// WatchDictionary reloads the dictionary once its file has been written or
// recreated and no further events arrived for reloadSettle, until ctx is done.
func WatchDictionary(ctx context.Context, fs afero.Fs, cfg *Config, e *Engine) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer w.Close()

	// Watch the directory so that editors replacing the file are noticed.
	path := filepath.Clean(cfg.Dictionary)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "watch %s", path)
	}
	log.Infof("Watching dictionary %s", path)

	settle := time.NewTimer(reloadSettle)
	if !settle.Stop() {
		<-settle.C
	}
	defer settle.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			if pending && !settle.Stop() {
				<-settle.C
			}
			settle.Reset(reloadSettle)
			pending = true
		case <-settle.C:
			pending = false
			stats, err := Reload(fs, cfg, e)
			if err != nil {
				log.Errorf("Reloading dictionary failed: %v", err)
				continue
			}
			log.Infof("Dictionary reloaded: %s", stats)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warnf("Watcher error: %v", err)
		}
	}
}

// StartWatcher runs WatchDictionary in the background. The returned function
// blocks until the watcher has exited, which happens once ctx is done.
func StartWatcher(ctx context.Context, fs afero.Fs, cfg *Config, e *Engine) (wait func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := WatchDictionary(ctx, fs, cfg, e); err != nil {
			log.Errorf("Dictionary watcher stopped: %v", err)
		}
	}()
	return func() { <-done }
}
