// Package outbox implements the dispatch pipeline: the append-only outbox
// store, the cursor-locked listener with time-leased exclusivity, the
// debounce collaborator, the Postgres job queue with its worker pool, and
// the companion/mention dispatchers that turn chat messages into jobs.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/loomchat/companion/ent"
	"github.com/loomchat/companion/ent/outboxentry"
)

// Entry is one outbox row as seen by dispatchers.
type Entry struct {
	ID      int64
	Kind    string
	Payload map[string]interface{}
}

// Store reads and appends outbox entries. Entries are strictly ordered by
// insertion id; readers walk forward from a cursor.
type Store struct {
	client *ent.Client
}

// NewStore creates an outbox store over the shared ent client.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Insert appends one entry. The payload is marshalled to JSON.
func (s *Store) Insert(ctx context.Context, kind string, payload any) error {
	return insertEntry(ctx, s.client.OutboxEntry, kind, payload)
}

// InsertTx appends one entry inside an existing transaction, so lifecycle
// events and their outbox rows commit atomically.
func InsertTx(ctx context.Context, tx *ent.Tx, kind string, payload any) error {
	return insertEntry(ctx, tx.OutboxEntry, kind, payload)
}

func insertEntry(ctx context.Context, c *ent.OutboxEntryClient, kind string, payload any) error {
	raw, err := toJSONMap(payload)
	if err != nil {
		return fmt.Errorf("failed to encode outbox payload: %w", err)
	}
	if err := c.Create().
		SetKind(kind).
		SetPayload(raw).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert outbox entry: %w", err)
	}
	return nil
}

// FetchAfter returns up to limit entries with id > cursor in ascending id
// order, optionally restricted to a set of kinds.
func (s *Store) FetchAfter(ctx context.Context, cursor int64, limit int, kinds ...string) ([]Entry, error) {
	q := s.client.OutboxEntry.Query().
		Where(outboxentry.IDGT(cursor)).
		Order(ent.Asc(outboxentry.FieldID)).
		Limit(limit)
	if len(kinds) > 0 {
		q = q.Where(outboxentry.KindIn(kinds...))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch outbox entries after %d: %w", cursor, err)
	}
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{ID: row.ID, Kind: row.Kind, Payload: row.Payload})
	}
	return entries, nil
}

// DecodePayload unmarshals an entry payload into a typed value.
func (e Entry) DecodePayload(out any) error {
	raw, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("failed to re-encode outbox payload: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode outbox payload for entry %d: %w", e.ID, err)
	}
	return nil
}

// toJSONMap round-trips an arbitrary payload through JSON into the map shape
// the outbox column stores.
func toJSONMap(payload any) (map[string]interface{}, error) {
	if m, ok := payload.(map[string]interface{}); ok {
		return m, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
