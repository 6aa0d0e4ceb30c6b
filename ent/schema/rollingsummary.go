package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RollingSummary holds the schema definition for the RollingSummary entity.
// Persistent compacted record of conversation history that fell out of the
// active window, one row per (stream, persona).
type RollingSummary struct {
	ent.Schema
}

// Fields of the RollingSummary.
func (RollingSummary) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("summary_id").
			Unique().
			Immutable(),
		field.String("stream_id").
			Immutable(),
		field.String("persona_id").
			Immutable(),
		field.Text("summary"),
		field.Int64("last_summarized_sequence").
			Default(0).
			Comment("Coverage high-water mark; never regresses"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the RollingSummary.
func (RollingSummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stream_id", "persona_id").
			Unique(),
	}
}
