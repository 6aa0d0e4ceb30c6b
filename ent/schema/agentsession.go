package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentSession holds the schema definition for the AgentSession entity.
// One row per trigger message; the partial unique index enforcing at most
// one running session per stream is created in pkg/database/migrations.go
// (Ent/Atlas cannot express partial unique indexes).
type AgentSession struct {
	ent.Schema
}

// Fields of the AgentSession.
func (AgentSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("stream_id").
			Immutable(),
		field.String("persona_id").
			Immutable(),
		field.String("trigger_message_id").
			Unique().
			Immutable().
			Comment("Retry idempotence — one session per trigger message"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "superseded", "deleted").
			Default("pending"),
		field.String("server_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Int64("last_seen_sequence").
			Default(0).
			Comment("Highest stream sequence absorbed by this session; never regresses"),
		field.JSON("sent_message_ids", []string{}).
			Optional(),
		field.String("response_message_id").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentSession.
func (AgentSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", AgentStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentSession.
func (AgentSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stream_id"),
		index.Fields("status"),
		index.Fields("stream_id", "status"),
		index.Fields("status", "heartbeat_at"),
	}
}
