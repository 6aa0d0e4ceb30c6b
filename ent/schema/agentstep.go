package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentStep holds the schema definition for the AgentStep entity.
// Session-scoped trace entries rendered in the activity view. Inserted when
// a step starts and completed by update; rows live as long as the session.
type AgentStep struct {
	ent.Schema
}

// Fields of the AgentStep.
func (AgentStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("step_number").
			Comment("1-based, strictly increasing per session"),
		field.String("step_type"),
		field.Text("content").
			Optional(),
		field.JSON("sources", []map[string]string{}).
			Optional(),
		field.String("message_id").
			Optional().
			Nillable().
			Comment("Linked chat message for message_sent steps"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentStep.
func (AgentStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AgentSession.Type).
			Ref("steps").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentStep.
func (AgentStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "step_number").
			Unique(),
	}
}
