package outbox

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/loomchat/companion/ent"
	"github.com/loomchat/companion/ent/listenercursor"
	"github.com/loomchat/companion/pkg/config"
)

// Handler processes outbox entries starting after cursor and returns the new
// cursor position. Returning newCursor == cursor means no events were
// handled. Returning a higher cursor together with an error records partial
// progress so a retry does not redo handled entries.
type Handler func(ctx context.Context, cursor int64) (newCursor int64, err error)

// Listener owns a cursor row identified by listenerID and invokes its
// handler with exclusivity guaranteed by a time lease on that row. A crashed
// holder is replaced once the lease expires.
type Listener struct {
	id      string
	owner   string
	client  *ent.Client
	cfg     config.ListenerConfig
	handler Handler
	deb     *Debouncer
	logger  *slog.Logger
}

// NewListener registers a cursor-locked listener. The owner identity is
// unique per process so lease renewal cannot collide across replicas.
func NewListener(client *ent.Client, cfg config.ListenerConfig, listenerID string, handler Handler, logger *slog.Logger) *Listener {
	return &Listener{
		id:      listenerID,
		owner:   uuid.NewString(),
		client:  client,
		cfg:     cfg,
		handler: handler,
		deb:     NewDebouncer(cfg.Debounce, cfg.MaxWait),
		logger:  logger.With("listener_id", listenerID),
	}
}

// Trigger requests a debounced processing pass. Safe to call from any
// goroutine; typically driven by a NOTIFY wakeup or a local outbox insert.
func (l *Listener) Trigger() {
	l.deb.Trigger()
}

// Run acquires the lease and processes until ctx is cancelled. Acquisition
// failure after the configured retries is a fatal bootstrap error. The lease
// is always released on return, including during panic unwinding.
func (l *Listener) Run(ctx context.Context) error {
	if err := l.ensureCursor(ctx); err != nil {
		return err
	}
	if err := l.acquireWithRetry(ctx); err != nil {
		return err
	}
	l.logger.Info("Listener lease acquired", "owner", l.owner)

	defer l.release()
	defer l.deb.Stop()

	refreshCtx, stopRefresh := context.WithCancel(ctx)
	defer stopRefresh()
	go l.runRefresher(refreshCtx)

	poll := time.NewTicker(l.cfg.PollInterval)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-l.deb.C():
			l.runOnce(ctx)
		case <-poll.C:
			l.runOnce(ctx)
		}
	}
}

// ensureCursor creates the cursor row if this listener id has never run.
func (l *Listener) ensureCursor(ctx context.Context) error {
	exists, err := l.client.ListenerCursor.Query().
		Where(listenercursor.ID(l.id)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check listener cursor: %w", err)
	}
	if exists {
		return nil
	}
	err = l.client.ListenerCursor.Create().
		SetID(l.id).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to create listener cursor: %w", err)
	}
	return nil
}

// acquireWithRetry attempts the atomic lease takeover with exponential
// backoff and jitter.
func (l *Listener) acquireWithRetry(ctx context.Context) error {
	var lastErr error
	for attempt := 0; attempt <= l.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := l.cfg.BaseBackoff * time.Duration(1<<(attempt-1))
			backoff += time.Duration(rand.Int63n(int64(l.cfg.BaseBackoff)))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
		acquired, err := l.tryAcquire(ctx)
		if err != nil {
			lastErr = err
			l.logger.Warn("Lease acquisition attempt failed", "attempt", attempt, "error", err)
			continue
		}
		if acquired {
			return nil
		}
		lastErr = fmt.Errorf("lease held by another owner")
	}
	return fmt.Errorf("failed to acquire lease for %s after %d retries: %w", l.id, l.cfg.MaxRetries, lastErr)
}

// tryAcquire performs a single atomic row update that succeeds only when the
// lease is free, expired, or already ours.
func (l *Listener) tryAcquire(ctx context.Context) (bool, error) {
	now := time.Now()
	n, err := l.client.ListenerCursor.Update().
		Where(
			listenercursor.ID(l.id),
			listenercursor.Or(
				listenercursor.LeaseOwnerIsNil(),
				listenercursor.LeaseOwnerEQ(l.owner),
				listenercursor.LeaseExpiresAtLT(now),
			),
		).
		SetLeaseOwner(l.owner).
		SetLeaseExpiresAt(now.Add(l.cfg.LockDuration)).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update lease row: %w", err)
	}
	return n > 0, nil
}

// runRefresher extends the lease on a fixed cadence. A failed refresh is
// logged and retried on the next tick; the listener keeps running on the
// assumption the lease is still valid until proven otherwise.
func (l *Listener) runRefresher(ctx context.Context) {
	ticker := time.NewTicker(l.cfg.RefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := l.client.ListenerCursor.Update().
				Where(
					listenercursor.ID(l.id),
					listenercursor.LeaseOwnerEQ(l.owner),
				).
				SetLeaseExpiresAt(time.Now().Add(l.cfg.LockDuration)).
				Save(ctx)
			if err != nil {
				l.logger.Warn("Lease refresh failed", "error", err)
			} else if n == 0 {
				l.logger.Error("Lease lost to another owner")
			}
		}
	}
}

// runOnce reads the cursor, invokes the handler, and persists forward
// progress. Handler panics are contained; the lease is never released
// mid-run.
func (l *Listener) runOnce(ctx context.Context) {
	row, err := l.client.ListenerCursor.Get(ctx, l.id)
	if err != nil {
		l.logger.Error("Failed to read listener cursor", "error", err)
		return
	}

	newCursor, err := l.invoke(ctx, row.LastProcessedID)
	if newCursor > row.LastProcessedID {
		if advErr := l.advance(ctx, newCursor); advErr != nil {
			l.logger.Error("Failed to advance cursor", "error", advErr)
		}
	}
	if err != nil {
		l.logger.Error("Outbox processing failed", "cursor", row.LastProcessedID, "error", err)
	}
}

func (l *Listener) invoke(ctx context.Context, cursor int64) (newCursor int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			newCursor = cursor
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return l.handler(ctx, cursor)
}

// advance moves the cursor forward. The LT predicate keeps it monotonic even
// if a stale update races a newer one.
func (l *Listener) advance(ctx context.Context, newCursor int64) error {
	_, err := l.client.ListenerCursor.Update().
		Where(
			listenercursor.ID(l.id),
			listenercursor.LeaseOwnerEQ(l.owner),
			listenercursor.LastProcessedIDLT(newCursor),
		).
		SetLastProcessedID(newCursor).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to persist cursor %d: %w", newCursor, err)
	}
	return nil
}

// release clears the lease. Uses a background context so shutdown and panic
// unwinding still release.
func (l *Listener) release() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := l.client.ListenerCursor.Update().
		Where(
			listenercursor.ID(l.id),
			listenercursor.LeaseOwnerEQ(l.owner),
		).
		ClearLeaseOwner().
		ClearLeaseExpiresAt().
		Save(ctx)
	if err != nil {
		l.logger.Warn("Failed to release lease", "error", err)
		return
	}
	l.logger.Info("Listener lease released")
}
