package events

import (
	"context"
	"fmt"

	"github.com/loomchat/companion/ent"
	"github.com/loomchat/companion/ent/event"
)

// CatchupEvent is one persisted event returned to a reconnecting client.
type CatchupEvent struct {
	ID      int64
	Payload map[string]interface{}
}

// Service queries persisted room events for catchup.
type Service struct {
	client *ent.Client
}

// NewService creates the event query service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// GetCatchupEvents returns up to limit events in a room with id > sinceID,
// oldest first.
func (s *Service) GetCatchupEvents(ctx context.Context, room string, sinceID int64, limit int) ([]CatchupEvent, error) {
	rows, err := s.client.Event.Query().
		Where(
			event.Room(room),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events for %s: %w", room, err)
	}
	out := make([]CatchupEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, CatchupEvent{ID: row.ID, Payload: row.Payload})
	}
	return out, nil
}
