package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutboxEntry holds the schema definition for the OutboxEntry entity.
// Append-only durable queue decoupling event emission from downstream
// handlers; readers walk forward from a per-listener cursor in strict
// ascending id order.
type OutboxEntry struct {
	ent.Schema
}

// Fields of the OutboxEntry.
func (OutboxEntry) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Immutable().
			Comment("BIGSERIAL — insertion order"),
		field.String("kind").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the OutboxEntry.
func (OutboxEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
	}
}
