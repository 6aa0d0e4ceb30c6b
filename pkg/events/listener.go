package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// Sink receives notifications from the LISTEN connection.
type Sink interface {
	Broadcast(room string, payload []byte)
}

// listenCmd is a LISTEN/UNLISTEN statement executed by the receive loop,
// which is the only goroutine allowed to touch the pgx connection.
type listenCmd struct {
	sql    string
	result chan error
}

// NotifyListener holds one dedicated PostgreSQL connection in LISTEN mode
// and forwards notifications to the sink. LISTEN/UNLISTEN commands are
// serialized through the receive loop to avoid the conn-busy race between
// WaitForNotification and Exec.
type NotifyListener struct {
	connString string
	sink       Sink

	connMu sync.Mutex
	conn   *pgx.Conn

	roomsMu sync.RWMutex
	rooms   map[string]bool

	cmdCh   chan listenCmd
	running atomic.Bool

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewNotifyListener creates a listener; Start opens the connection.
func NewNotifyListener(connString string, sink Sink) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		sink:       sink,
		rooms:      make(map[string]bool),
		cmdCh:      make(chan listenCmd, 16),
	}
}

// Start opens the dedicated connection and begins receiving.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to open LISTEN connection: %w", err)
	}
	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()
	l.running.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("Notify listener started")
	return nil
}

// Subscribe begins LISTEN for a room. Synchronous: when it returns nil the
// LISTEN is active, so a following catchup query cannot race new events.
func (l *NotifyListener) Subscribe(ctx context.Context, room string) error {
	l.roomsMu.RLock()
	already := l.rooms[room]
	l.roomsMu.RUnlock()
	if already {
		return nil
	}
	if !l.running.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}

	if err := l.exec(ctx, "LISTEN "+pgx.Identifier{room}.Sanitize()); err != nil {
		return fmt.Errorf("LISTEN %s failed: %w", room, err)
	}
	l.roomsMu.Lock()
	l.rooms[room] = true
	l.roomsMu.Unlock()
	return nil
}

// Unsubscribe stops LISTEN for a room.
func (l *NotifyListener) Unsubscribe(ctx context.Context, room string) error {
	l.roomsMu.RLock()
	listening := l.rooms[room]
	l.roomsMu.RUnlock()
	if !listening || !l.running.Load() {
		return nil
	}

	if err := l.exec(ctx, "UNLISTEN "+pgx.Identifier{room}.Sanitize()); err != nil {
		return fmt.Errorf("UNLISTEN %s failed: %w", room, err)
	}
	l.roomsMu.Lock()
	delete(l.rooms, room)
	l.roomsMu.Unlock()
	return nil
}

// exec routes a statement through the receive loop and waits for the result.
func (l *NotifyListener) exec(ctx context.Context, sql string) error {
	cmd := listenCmd{sql: sql, result: make(chan error, 1)}
	select {
	case l.cmdCh <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiveLoop alternates between draining pending commands and waiting for
// notifications with a short timeout so commands are picked up promptly.
func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.drainCmds(ctx)

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()
		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.sink.Broadcast(notification.Channel, []byte(notification.Payload))
	}
}

func (l *NotifyListener) drainCmds(ctx context.Context) {
	for {
		select {
		case cmd := <-l.cmdCh:
			l.connMu.Lock()
			conn := l.conn
			l.connMu.Unlock()
			if conn == nil {
				cmd.result <- fmt.Errorf("LISTEN connection not established")
				continue
			}
			_, err := conn.Exec(ctx, cmd.sql)
			cmd.result <- err
		default:
			return
		}
	}
}

// reconnect re-establishes the connection with exponential backoff and
// replays every active LISTEN.
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		l.conn = conn

		l.roomsMu.RLock()
		for room := range l.rooms {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{room}.Sanitize()); err != nil {
				slog.Error("Re-LISTEN failed", "room", room, "error", err)
			}
		}
		l.roomsMu.RUnlock()

		slog.Info("Notify listener reconnected")
		return
	}
}

// Stop exits the receive loop, waits for it, then closes the connection.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.running.Store(false)
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		select {
		case <-l.loopDone:
		case <-ctx.Done():
		}
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
	slog.Info("Notify listener stopped")
}
