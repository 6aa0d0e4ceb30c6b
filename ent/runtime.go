// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/loomchat/companion/ent/agentsession"
	"github.com/loomchat/companion/ent/agentstep"
	"github.com/loomchat/companion/ent/event"
	"github.com/loomchat/companion/ent/job"
	"github.com/loomchat/companion/ent/listenercursor"
	"github.com/loomchat/companion/ent/outboxentry"
	"github.com/loomchat/companion/ent/rollingsummary"
	"github.com/loomchat/companion/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentsessionFields := schema.AgentSession{}.Fields()
	_ = agentsessionFields
	// agentsessionDescLastSeenSequence is the schema descriptor for last_seen_sequence field.
	agentsessionDescLastSeenSequence := agentsessionFields[8].Descriptor()
	// agentsession.DefaultLastSeenSequence holds the default value on creation for the last_seen_sequence field.
	agentsession.DefaultLastSeenSequence = agentsessionDescLastSeenSequence.Default.(int64)
	// agentsessionDescCreatedAt is the schema descriptor for created_at field.
	agentsessionDescCreatedAt := agentsessionFields[12].Descriptor()
	// agentsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentsession.DefaultCreatedAt = agentsessionDescCreatedAt.Default.(func() time.Time)
	agentstepFields := schema.AgentStep{}.Fields()
	_ = agentstepFields
	// agentstepDescStartedAt is the schema descriptor for started_at field.
	agentstepDescStartedAt := agentstepFields[8].Descriptor()
	// agentstep.DefaultStartedAt holds the default value on creation for the started_at field.
	agentstep.DefaultStartedAt = agentstepDescStartedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescAttempts is the schema descriptor for attempts field.
	jobDescAttempts := jobFields[4].Descriptor()
	// job.DefaultAttempts holds the default value on creation for the attempts field.
	job.DefaultAttempts = jobDescAttempts.Default.(int)
	// jobDescMaxAttempts is the schema descriptor for max_attempts field.
	jobDescMaxAttempts := jobFields[5].Descriptor()
	// job.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	job.DefaultMaxAttempts = jobDescMaxAttempts.Default.(int)
	// jobDescRunAt is the schema descriptor for run_at field.
	jobDescRunAt := jobFields[6].Descriptor()
	// job.DefaultRunAt holds the default value on creation for the run_at field.
	job.DefaultRunAt = jobDescRunAt.Default.(func() time.Time)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[8].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	listenercursorFields := schema.ListenerCursor{}.Fields()
	_ = listenercursorFields
	// listenercursorDescLastProcessedID is the schema descriptor for last_processed_id field.
	listenercursorDescLastProcessedID := listenercursorFields[1].Descriptor()
	// listenercursor.DefaultLastProcessedID holds the default value on creation for the last_processed_id field.
	listenercursor.DefaultLastProcessedID = listenercursorDescLastProcessedID.Default.(int64)
	// listenercursorDescUpdatedAt is the schema descriptor for updated_at field.
	listenercursorDescUpdatedAt := listenercursorFields[4].Descriptor()
	// listenercursor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	listenercursor.DefaultUpdatedAt = listenercursorDescUpdatedAt.Default.(func() time.Time)
	// listenercursor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	listenercursor.UpdateDefaultUpdatedAt = listenercursorDescUpdatedAt.UpdateDefault.(func() time.Time)
	outboxentryFields := schema.OutboxEntry{}.Fields()
	_ = outboxentryFields
	// outboxentryDescCreatedAt is the schema descriptor for created_at field.
	outboxentryDescCreatedAt := outboxentryFields[3].Descriptor()
	// outboxentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	outboxentry.DefaultCreatedAt = outboxentryDescCreatedAt.Default.(func() time.Time)
	rollingsummaryFields := schema.RollingSummary{}.Fields()
	_ = rollingsummaryFields
	// rollingsummaryDescLastSummarizedSequence is the schema descriptor for last_summarized_sequence field.
	rollingsummaryDescLastSummarizedSequence := rollingsummaryFields[4].Descriptor()
	// rollingsummary.DefaultLastSummarizedSequence holds the default value on creation for the last_summarized_sequence field.
	rollingsummary.DefaultLastSummarizedSequence = rollingsummaryDescLastSummarizedSequence.Default.(int64)
	// rollingsummaryDescUpdatedAt is the schema descriptor for updated_at field.
	rollingsummaryDescUpdatedAt := rollingsummaryFields[5].Descriptor()
	// rollingsummary.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	rollingsummary.DefaultUpdatedAt = rollingsummaryDescUpdatedAt.Default.(func() time.Time)
	// rollingsummary.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	rollingsummary.UpdateDefaultUpdatedAt = rollingsummaryDescUpdatedAt.UpdateDefault.(func() time.Time)
}
