package outbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFire(t *testing.T, d *Debouncer, timeout time.Duration) bool {
	t.Helper()
	select {
	case <-d.C():
		return true
	case <-time.After(timeout):
		return false
	}
}

func TestDebouncerFiresAfterQuietPeriod(t *testing.T) {
	d := NewDebouncer(20*time.Millisecond, 500*time.Millisecond)
	defer d.Stop()

	d.Trigger()
	require.True(t, waitFire(t, d, time.Second), "expected fire after quiet period")
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	d := NewDebouncer(30*time.Millisecond, time.Second)
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger()
		time.Sleep(2 * time.Millisecond)
	}
	require.True(t, waitFire(t, d, time.Second))

	// Quiet afterwards: no second fire pending.
	assert.False(t, waitFire(t, d, 100*time.Millisecond), "burst should coalesce into one fire")
}

func TestDebouncerMaxWaitForcesFire(t *testing.T) {
	d := NewDebouncer(50*time.Millisecond, 150*time.Millisecond)
	defer d.Stop()

	// Keep re-triggering faster than the quiet period; only the max-wait
	// deadline can fire.
	done := make(chan struct{})
	go func() {
		defer close(done)
		deadline := time.Now().Add(400 * time.Millisecond)
		for time.Now().Before(deadline) {
			d.Trigger()
			time.Sleep(10 * time.Millisecond)
		}
	}()

	start := time.Now()
	require.True(t, waitFire(t, d, time.Second), "max wait should force a fire")
	elapsed := time.Since(start)
	assert.Less(t, elapsed, 350*time.Millisecond, "fire should arrive near the max-wait deadline")
	<-done
}

func TestDebouncerStopSuppressesFires(t *testing.T) {
	d := NewDebouncer(10*time.Millisecond, 100*time.Millisecond)
	d.Trigger()
	d.Stop()
	assert.False(t, waitFire(t, d, 100*time.Millisecond), "no fire after Stop")

	// Triggers after Stop are ignored.
	d.Trigger()
	assert.False(t, waitFire(t, d, 50*time.Millisecond))
}
