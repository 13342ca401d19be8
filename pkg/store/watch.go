package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// settle is how long a key must stay quiet before its change is reported.
const settle = 100 * time.Millisecond

// Event is emitted by Disk.Watch when a key file changes.
type Event struct {
	Key string
}

// Watch streams change events until ctx is cancelled. A burst of writes to
// one key is reported once. The channel is closed when ctx is done or the
// watcher fails.
func (p *Disk) Watch(ctx context.Context, logger *log.Logger) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if logger == nil {
		logger = log.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 16)
	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				logger.Warn("store: watcher close", "err", err)
			}
		}()
		p.pump(ctx, watcher, events, logger)
	}()
	return events, nil
}

func (p *Disk) pump(ctx context.Context, watcher *fsnotify.Watcher, events chan<- Event, logger *log.Logger) {
	pending := map[string]struct{}{}
	timer := time.NewTimer(settle)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("store: watcher error", "err", err)

		case evt, ok := <-watcher.Events:
			if !ok {
				return
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			key := filepath.Base(evt.Name)
			logger.Debug("store: change", "key", key, "op", evt.Op.String())
			if len(pending) == 0 {
				timer.Reset(settle)
			}
			pending[key] = struct{}{}

		case <-timer.C:
			for key := range pending {
				select {
				case events <- Event{Key: key}:
				default:
					logger.Debug("store: consumer busy, dropping change", "key", key)
				}
			}
			pending = map[string]struct{}{}
		}
	}
}
