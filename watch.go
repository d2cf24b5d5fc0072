package epdimage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the event bursts editors and slow copies
// produce into one conversion per file.
const debounceDelay = 500 * time.Millisecond

// debouncer fires one callback per path after events for it go quiet.
type debouncer struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	delay  time.Duration
	onFire func(path string)
}

func newDebouncer(delay time.Duration, onFire func(path string)) *debouncer {
	return &debouncer{
		timers: make(map[string]*time.Timer),
		delay:  delay,
		onFire: onFire,
	}
}

func (d *debouncer) trigger(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.timers[path]; ok {
		t.Reset(d.delay)
		return
	}
	d.timers[path] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.timers, path)
		d.mu.Unlock()
		d.onFire(path)
	})
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for path, t := range d.timers {
		t.Stop()
		delete(d.timers, path)
	}
}

// Watch converts supported images as they appear or change under dir,
// until ctx is cancelled. Conversion failures are logged, not fatal; a
// broken file dropped into a watched directory should not take the
// watcher down.
func (c *Converter) Watch(ctx context.Context, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	c.logger.Printf("watching %s", dir)

	db := newDebouncer(debounceDelay, func(path string) {
		if err := c.ConvertFile(path, outputName(path)); err != nil {
			c.logger.Printf("convert %s: %v", path, err)
		}
	})
	defer db.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !supportedExt(ev.Name) {
				continue
			}
			db.trigger(ev.Name)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
