package store

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/ekinoz/happy/internal/model"
)

// Change notifications within this window collapse into one snapshot,
// so a burst of writes redraws the consumer once.
const throttleDelay = 100 * time.Millisecond

// Subscribe opens a filesystem watch over the user's collection and
// streams full snapshots. The first snapshot is pushed before any
// change arrives. The channel is closed once ctx is done.
func (s *diskvStore) Subscribe(ctx context.Context) (<-chan []model.Item, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", s.dir, err)
	}

	out := make(chan []model.Item, 1)

	go func() {
		defer close(out)
		defer func() {
			if err := watcher.Close(); err != nil {
				s.log.Warn("store: watcher close", zap.Error(err))
			}
		}()

		push := func() {
			items, err := s.List(ctx)
			if err != nil {
				if ctx.Err() == nil {
					// The consumer keeps its prior snapshot.
					s.log.Warn("store: refresh snapshot", zap.Error(err))
				}
				return
			}
			// Latest-wins: a consumer that lags only cares about the
			// newest snapshot, so stale ones are replaced, not queued.
			for {
				select {
				case out <- items:
					return
				case <-ctx.Done():
					return
				default:
				}
				select {
				case <-out:
				default:
				}
			}
		}

		push()

		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Prior state stays with the consumer; fsnotify keeps
				// the watch alive across transient errors.
				s.log.Warn("store: watcher error", zap.Error(err))
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				if pending == nil {
					pending = time.After(throttleDelay)
				}
			case <-pending:
				pending = nil
				push()
			}
		}
	}()

	return out, nil
}
