package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity.
// FIFO-per-queue with at-least-once delivery. Workers claim the oldest
// pending job with FOR UPDATE SKIP LOCKED; failed jobs are retried with
// backoff via run_at until attempts are exhausted.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Immutable().
			Comment("BIGSERIAL — FIFO order within a queue"),
		field.String("queue").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.Time("run_at").
			Default(time.Now).
			Comment("Earliest time the job may be claimed — used for retry backoff"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue", "status", "run_at"),
	}
}
