package uploads

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits after the last event before
// notifying.
const DefaultDebounce = 250 * time.Millisecond

// A burst longer than maxWaitFactor debounce periods notifies anyway.
const maxWaitFactor = 8

// Watch calls fn once per burst of create, remove or rename events in dir.
// A burst ends after debounce without events, or maxWaitFactor*debounce
// after it started, whichever comes first. It blocks until ctx is done or
// the watcher fails.
func Watch(ctx context.Context, dir string, debounce time.Duration, fn func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create upload watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch upload dir %q: %w", dir, err)
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	maxWait := maxWaitFactor * debounce
	var burstStart time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			now := time.Now()
			if burstStart.IsZero() {
				burstStart = now
			}
			wait := min(debounce, max(maxWait-now.Sub(burstStart), 0))
			timer.Reset(wait)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("upload watcher: %w", err)
		case <-timer.C:
			burstStart = time.Time{}
			fn()
		}
	}
}
