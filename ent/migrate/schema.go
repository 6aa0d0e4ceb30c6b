// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentSessionsColumns holds the columns for the "agent_sessions" table.
	AgentSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "stream_id", Type: field.TypeString},
		{Name: "persona_id", Type: field.TypeString},
		{Name: "trigger_message_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "superseded", "deleted"}, Default: "pending"},
		{Name: "server_id", Type: field.TypeString, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_seen_sequence", Type: field.TypeInt64, Default: 0},
		{Name: "sent_message_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "response_message_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AgentSessionsTable holds the schema information for the "agent_sessions" table.
	AgentSessionsTable = &schema.Table{
		Name:       "agent_sessions",
		Columns:    AgentSessionsColumns,
		PrimaryKey: []*schema.Column{AgentSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentsession_stream_id",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[2]},
			},
			{
				Name:    "agentsession_status",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[5]},
			},
			{
				Name:    "agentsession_stream_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[2], AgentSessionsColumns[5]},
			},
			{
				Name:    "agentsession_status_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[5], AgentSessionsColumns[7]},
			},
		},
	}
	// AgentStepsColumns holds the columns for the "agent_steps" table.
	AgentStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "step_number", Type: field.TypeInt},
		{Name: "step_type", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "sources", Type: field.TypeJSON, Nullable: true},
		{Name: "message_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// AgentStepsTable holds the schema information for the "agent_steps" table.
	AgentStepsTable = &schema.Table{
		Name:       "agent_steps",
		Columns:    AgentStepsColumns,
		PrimaryKey: []*schema.Column{AgentStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_steps_agent_sessions_steps",
				Columns:    []*schema.Column{AgentStepsColumns[9]},
				RefColumns: []*schema.Column{AgentSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentstep_session_id_step_number",
				Unique:  true,
				Columns: []*schema.Column{AgentStepsColumns[9], AgentStepsColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "room", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_room_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "queue", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "run_at", Type: field.TypeTime},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_queue_status_run_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[3], JobsColumns[6]},
			},
		},
	}
	// ListenerCursorsColumns holds the columns for the "listener_cursors" table.
	ListenerCursorsColumns = []*schema.Column{
		{Name: "listener_id", Type: field.TypeString, Unique: true},
		{Name: "last_processed_id", Type: field.TypeInt64, Default: 0},
		{Name: "lease_owner", Type: field.TypeString, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ListenerCursorsTable holds the schema information for the "listener_cursors" table.
	ListenerCursorsTable = &schema.Table{
		Name:       "listener_cursors",
		Columns:    ListenerCursorsColumns,
		PrimaryKey: []*schema.Column{ListenerCursorsColumns[0]},
	}
	// OutboxEntriesColumns holds the columns for the "outbox_entries" table.
	OutboxEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OutboxEntriesTable holds the schema information for the "outbox_entries" table.
	OutboxEntriesTable = &schema.Table{
		Name:       "outbox_entries",
		Columns:    OutboxEntriesColumns,
		PrimaryKey: []*schema.Column{OutboxEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "outboxentry_kind",
				Unique:  false,
				Columns: []*schema.Column{OutboxEntriesColumns[1]},
			},
		},
	}
	// RollingSummariesColumns holds the columns for the "rolling_summaries" table.
	RollingSummariesColumns = []*schema.Column{
		{Name: "summary_id", Type: field.TypeString, Unique: true},
		{Name: "stream_id", Type: field.TypeString},
		{Name: "persona_id", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "last_summarized_sequence", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RollingSummariesTable holds the schema information for the "rolling_summaries" table.
	RollingSummariesTable = &schema.Table{
		Name:       "rolling_summaries",
		Columns:    RollingSummariesColumns,
		PrimaryKey: []*schema.Column{RollingSummariesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rollingsummary_stream_id_persona_id",
				Unique:  true,
				Columns: []*schema.Column{RollingSummariesColumns[1], RollingSummariesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentSessionsTable,
		AgentStepsTable,
		EventsTable,
		JobsTable,
		ListenerCursorsTable,
		OutboxEntriesTable,
		RollingSummariesTable,
	}
)

func init() {
	AgentStepsTable.ForeignKeys[0].RefTable = AgentSessionsTable
}
