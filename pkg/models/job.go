package models

// Trigger records why a persona job was enqueued.
type Trigger string

const (
	TriggerCompanion Trigger = "COMPANION"
	TriggerMention   Trigger = "MENTION"
)

// PersonaJobQueue is the named queue persona-agent jobs run on.
const PersonaJobQueue = "persona-agent"

// PersonaJob is the payload of one agent run request.
type PersonaJob struct {
	WorkspaceID string  `json:"workspaceId"`
	StreamID    string  `json:"streamId"`
	MessageID   string  `json:"messageId"`
	PersonaID   string  `json:"personaId"`
	TriggeredBy Trigger `json:"triggeredBy"`
}

// Outbox entry kinds.
const (
	OutboxMessageCreated   = "message_created"
	OutboxSessionStarted   = "session_started"
	OutboxSessionCompleted = "session_completed"
	OutboxSessionFailed    = "session_failed"
)

// MessageCreatedPayload is the outbox payload written for every committed
// chat message; dispatchers consume it.
type MessageCreatedPayload struct {
	WorkspaceID     string     `json:"workspaceId"`
	StreamID        string     `json:"streamId"`
	MessageID       string     `json:"messageId"`
	AuthorID        string     `json:"authorId"`
	AuthorType      AuthorType `json:"authorType"`
	Sequence        int64      `json:"sequence"`
	ContentMarkdown string     `json:"contentMarkdown"`
}

// SessionStatusPayload is the outbox payload for session lifecycle kinds.
type SessionStatusPayload struct {
	SessionID string `json:"sessionId"`
	StreamID  string `json:"streamId"`
	PersonaID string `json:"personaId"`
	Status    string `json:"status"`
}
