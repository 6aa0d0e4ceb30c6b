package outbox

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into single fires. Each trigger
// resets a quiet-period timer; if a burst never goes quiet, the max-wait
// deadline forces a fire anyway. The fire channel has capacity one, so a
// consumer processing a fire absorbs any triggers that arrive meanwhile into
// at most one further fire.
type Debouncer struct {
	debounce time.Duration
	maxWait  time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	deadline time.Time
	stopped  bool

	fire chan struct{}
}

// NewDebouncer creates a debouncer with the given quiet period and maximum
// total wait per burst.
func NewDebouncer(debounce, maxWait time.Duration) *Debouncer {
	return &Debouncer{
		debounce: debounce,
		maxWait:  maxWait,
		fire:     make(chan struct{}, 1),
	}
}

// Trigger schedules a fire after the quiet period, bounded by the burst's
// max-wait deadline.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if d.timer == nil {
		// First trigger of a burst opens the max-wait window.
		d.deadline = time.Now().Add(d.maxWait)
		d.timer = time.AfterFunc(d.debounce, d.fireNow)
		return
	}

	delay := d.debounce
	if remaining := time.Until(d.deadline); remaining < delay {
		delay = remaining
		if delay < 0 {
			delay = 0
		}
	}
	d.timer.Reset(delay)
}

// C is the fire channel; receive from it to run a processing pass.
func (d *Debouncer) C() <-chan struct{} {
	return d.fire
}

// Stop cancels any scheduled fire. Triggers after Stop are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) fireNow() {
	d.mu.Lock()
	d.timer = nil
	stopped := d.stopped
	d.mu.Unlock()
	if stopped {
		return
	}
	select {
	case d.fire <- struct{}{}:
	default:
	}
}
