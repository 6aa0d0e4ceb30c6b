package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ListenerCursor holds the schema definition for the ListenerCursor entity.
// One row per registered outbox listener. Exclusivity is a time lease: the
// row is only owned while lease_expires_at is in the future, so a crashed
// holder is replaced automatically once the lease lapses.
type ListenerCursor struct {
	ent.Schema
}

// Fields of the ListenerCursor.
func (ListenerCursor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("listener_id").
			Unique().
			Immutable(),
		field.Int64("last_processed_id").
			Default(0),
		field.String("lease_owner").
			Optional().
			Nillable(),
		field.Time("lease_expires_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
