package pictogram

import (
	"context"
	"sync"
	"time"
)

// DefaultSearchDebounce is the pause after the last keystroke before a
// search request is sent.
const DefaultSearchDebounce = 400 * time.Millisecond

// Debouncer delays a function call until its trigger has been quiet for a
// configured interval. Each Trigger cancels the pending call and the context
// handed to the previous one, so only the latest query reaches the API.
type Debouncer struct {
	delay time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules f to run after the debounce delay, superseding any
// pending call. The context passed to f is canceled when a newer trigger
// arrives or when Stop is called, so a slow in-flight call can notice it has
// been superseded and drop its result.
func (d *Debouncer) Trigger(ctx context.Context, f func(ctx context.Context)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	if d.cancel != nil {
		d.cancel()
	}

	callCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.timer = time.AfterFunc(d.delay, func() {
		f(callCtx)
	})
}

// Stop cancels any pending or in-flight call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
