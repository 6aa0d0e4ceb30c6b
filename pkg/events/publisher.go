package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// notifyLimit is the practical payload bound under PostgreSQL's 8000-byte
// NOTIFY limit, with headroom for protocol overhead.
const notifyLimit = 7900

// Publisher persists room events and broadcasts them via NOTIFY. Both
// happen in one transaction: pg_notify is transactional, so subscribers see
// an event only after its row is committed and queryable for catchup.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a publisher over the shared pool.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// Publish persists the payload to the events table and notifies the room.
// Satisfies the trace package's RoomPublisher.
func (p *Publisher) Publish(ctx context.Context, room, sessionID string, payload map[string]interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (session_id, room, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		sessionID, room, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := buildNotifyPayload(payload, eventID)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", room, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// NotifyOnly broadcasts without persistence. Used for transient wakeups
// such as outbox pings.
func (p *Publisher) NotifyOnly(ctx context.Context, channel string, payload map[string]interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notify payload: %w", err)
	}
	if len(payloadJSON) > notifyLimit {
		return fmt.Errorf("transient notify payload exceeds %d bytes", notifyLimit)
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, string(payloadJSON)); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// buildNotifyPayload injects the persisted event id for client-side catchup
// tracking, then truncates to an envelope when the payload exceeds the
// NOTIFY limit. The envelope keeps only routing fields; clients fetch the
// full event from the database via catchup.
func buildNotifyPayload(payload map[string]interface{}, eventID int64) (string, error) {
	enriched := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		enriched[k] = v
	}
	enriched["db_event_id"] = eventID

	raw, err := json.Marshal(enriched)
	if err != nil {
		return "", fmt.Errorf("failed to marshal NOTIFY payload: %w", err)
	}
	if len(raw) <= notifyLimit {
		return string(raw), nil
	}

	envelope := map[string]interface{}{
		"db_event_id": eventID,
		"truncated":   true,
	}
	for _, key := range []string{"type", "sessionId", "streamId"} {
		if v, ok := payload[key]; ok {
			envelope[key] = v
		}
	}
	raw, err = json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncation envelope: %w", err)
	}
	return string(raw), nil
}
