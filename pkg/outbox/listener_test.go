package outbox

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomchat/companion/pkg/config"
	testdb "github.com/loomchat/companion/test/database"
)

func testListenerConfig() config.ListenerConfig {
	return config.ListenerConfig{
		LockDuration:    2 * time.Second,
		RefreshInterval: 100 * time.Millisecond,
		MaxRetries:      1,
		BaseBackoff:     20 * time.Millisecond,
		Debounce:        10 * time.Millisecond,
		MaxWait:         50 * time.Millisecond,
		PollInterval:    time.Hour, // triggers drive the tests, not polling
		BatchSize:       100,
	}
}

func noopHandler(_ context.Context, cursor int64) (int64, error) {
	return cursor, nil
}

func TestListenerLeaseConflict(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	cfg := testListenerConfig()

	first := NewListener(client.Client, cfg, "companion", noopHandler, slog.Default())
	require.NoError(t, first.ensureCursor(ctx))
	acquired, err := first.tryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, acquired)

	// A second owner for the same listener id must be rejected while the
	// lease is live.
	second := NewListener(client.Client, cfg, "companion", noopHandler, slog.Default())
	acquired, err = second.tryAcquire(ctx)
	require.NoError(t, err)
	assert.False(t, acquired)

	// Re-acquisition by the holder is idempotent.
	acquired, err = first.tryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, acquired)

	// Independent listener ids never contend.
	other := NewListener(client.Client, cfg, "mention", noopHandler, slog.Default())
	require.NoError(t, other.ensureCursor(ctx))
	acquired, err = other.tryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestListenerExpiredLeaseIsTakenOver(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	cfg := testListenerConfig()
	cfg.LockDuration = 50 * time.Millisecond

	crashed := NewListener(client.Client, cfg, "companion", noopHandler, slog.Default())
	require.NoError(t, crashed.ensureCursor(ctx))
	acquired, err := crashed.tryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, acquired)

	// Simulate a crash: the holder never refreshes and never releases.
	time.Sleep(100 * time.Millisecond)

	successor := NewListener(client.Client, cfg, "companion", noopHandler, slog.Default())
	acquired, err = successor.tryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, acquired, "an expired lease is free for takeover")

	row, err := client.ListenerCursor.Get(ctx, "companion")
	require.NoError(t, err)
	require.NotNil(t, row.LeaseOwner)
	assert.Equal(t, successor.owner, *row.LeaseOwner)
}

func TestListenerRefreshKeepsLeaseAlive(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	cfg := testListenerConfig()
	cfg.LockDuration = 300 * time.Millisecond
	cfg.RefreshInterval = 50 * time.Millisecond

	holder := NewListener(client.Client, cfg, "companion", noopHandler, slog.Default())
	require.NoError(t, holder.ensureCursor(ctx))
	acquired, err := holder.tryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, acquired)

	refreshCtx, stopRefresh := context.WithCancel(ctx)
	defer stopRefresh()
	go holder.runRefresher(refreshCtx)

	// Well past the original expiry the lease must still be held.
	time.Sleep(500 * time.Millisecond)
	rival := NewListener(client.Client, cfg, "companion", noopHandler, slog.Default())
	acquired, err = rival.tryAcquire(ctx)
	require.NoError(t, err)
	assert.False(t, acquired, "a refreshed lease never lapses")
}

func TestListenerPersistsPartialProgressOnHandlerError(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	cfg := testListenerConfig()

	var calls []int64
	handler := func(_ context.Context, cursor int64) (int64, error) {
		calls = append(calls, cursor)
		if len(calls) == 1 {
			// Handled entries up to 7, then hit a transient failure.
			return 7, errors.New("queue unavailable")
		}
		return cursor, nil
	}

	l := NewListener(client.Client, cfg, "companion", handler, slog.Default())
	require.NoError(t, l.ensureCursor(ctx))
	acquired, err := l.tryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, acquired)

	l.runOnce(ctx)
	row, err := client.ListenerCursor.Get(ctx, "companion")
	require.NoError(t, err)
	assert.Equal(t, int64(7), row.LastProcessedID, "progress before the error is kept")

	// The retry resumes after the persisted cursor, not from zero.
	l.runOnce(ctx)
	require.Equal(t, []int64{0, 7}, calls)
}

func TestListenerRunProcessesOnTriggerAndReleases(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testListenerConfig()

	var (
		mu      sync.Mutex
		cursors []int64
	)
	invoked := make(chan struct{}, 1)
	handler := func(_ context.Context, cursor int64) (int64, error) {
		mu.Lock()
		cursors = append(cursors, cursor)
		mu.Unlock()
		select {
		case invoked <- struct{}{}:
		default:
		}
		return cursor + 3, nil
	}

	l := NewListener(client.Client, cfg, "companion", handler, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	l.Trigger()
	select {
	case <-invoked:
	case <-time.After(5 * time.Second):
		t.Fatal("listener never invoked the handler")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop")
	}

	row, err := client.ListenerCursor.Get(context.Background(), "companion")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, row.LastProcessedID, int64(3))
	assert.Nil(t, row.LeaseOwner, "lease is released on shutdown")
	assert.Nil(t, row.LeaseExpiresAt)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, cursors)
	assert.Equal(t, int64(0), cursors[0])
}
