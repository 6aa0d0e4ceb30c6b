package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Persistent copy of realtime room events, kept for WebSocket catchup when a
// client reconnects with a last-seen event id.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Immutable(),
		field.String("session_id").
			Optional().
			Immutable(),
		field.String("room").
			Immutable().
			Comment("NOTIFY channel the event was published to"),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("room", "id"),
		index.Fields("session_id"),
		index.Fields("created_at"),
	}
}
