package trace

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/loomchat/companion/pkg/models"
)

// StepWriter persists trace events as agent steps. Satisfied by
// session.StepRecorder.
type StepWriter interface {
	Record(ctx context.Context, in StepInput) (string, error)
}

// StepInput mirrors the step row shape without importing the session
// package (trace is below session in the dependency order).
type StepInput struct {
	StepType  string
	Content   string
	Sources   []map[string]string
	MessageID string
	Metadata  map[string]interface{}
}

// RoomPublisher publishes realtime events to scoped rooms.
type RoomPublisher interface {
	Publish(ctx context.Context, room, sessionID string, payload map[string]interface{}) error
}

// SessionObserver writes each event to the agent steps table and notifies
// the session, stream, and (when present) parent channel rooms. One
// observer instance serves one session.
type SessionObserver struct {
	steps     StepWriter
	publisher RoomPublisher
	logger    *slog.Logger
}

// NewSessionObserver creates the persistence+realtime observer. publisher
// may be nil (realtime disabled).
func NewSessionObserver(steps StepWriter, publisher RoomPublisher, logger *slog.Logger) *SessionObserver {
	return &SessionObserver{
		steps:     steps,
		publisher: publisher,
		logger:    logger.With("component", "session_observer"),
	}
}

// Handle persists the step then publishes. Persistence failures are logged;
// the agent loop never stops because tracing is broken.
func (o *SessionObserver) Handle(ctx context.Context, e Event) {
	if stepType, ok := stepTypeFor(e.Type); ok {
		if _, err := o.steps.Record(ctx, StepInput{
			StepType:  stepType,
			Content:   stepContent(e),
			Sources:   encodeSources(e.Sources),
			MessageID: e.MessageID,
			Metadata:  stepMetadata(e),
		}); err != nil {
			o.logger.Error("Failed to persist agent step",
				"session_id", e.SessionID, "event", e.Type, "error", err)
		}
	}

	o.publish(ctx, e)
}

// stepTypeFor maps event types onto persisted step types. Steps are recorded
// as completed facts: tool start markers reach live watchers over the room
// feed but are never persisted, so an in-flight tool has no row until its
// completion or error lands. Session lifecycle boundaries live on the session
// row itself.
func stepTypeFor(t EventType) (string, bool) {
	switch t {
	case EventThinking:
		return "thinking", true
	case EventToolComplete:
		return "tool_call", true
	case EventToolError:
		return "tool_error", true
	case EventMessageSent:
		return "message_sent", true
	case EventMessageEdited:
		return "message_edited", true
	case EventResponseKept:
		return "response_kept", true
	case EventContextReceived:
		return "context_received", true
	case EventReconsidering:
		return "reconsidering", true
	default:
		return "", false
	}
}

func stepContent(e Event) string {
	if e.Error != "" {
		return e.Error
	}
	return e.Content
}

func stepMetadata(e Event) map[string]interface{} {
	meta := make(map[string]interface{}, len(e.Metadata)+2)
	for k, v := range e.Metadata {
		meta[k] = v
	}
	if e.ToolName != "" {
		meta["tool"] = e.ToolName
	}
	if e.Elapsed > 0 {
		meta["elapsed_ms"] = e.Elapsed.Milliseconds()
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}

func encodeSources(sources []models.Source) []map[string]string {
	if len(sources) == 0 {
		return nil
	}
	out := make([]map[string]string, 0, len(sources))
	for _, s := range sources {
		out = append(out, map[string]string{"url": s.URL, "title": s.Title})
	}
	return out
}

func (o *SessionObserver) publish(ctx context.Context, e Event) {
	if o.publisher == nil {
		return
	}
	payload := map[string]interface{}{
		"type":      string(e.Type),
		"sessionId": e.SessionID,
		"streamId":  e.StreamID,
		"timestamp": e.Time.UnixMilli(),
	}
	if e.Content != "" {
		payload["content"] = e.Content
	}
	if e.ToolName != "" {
		payload["tool"] = e.ToolName
	}
	if e.Error != "" {
		payload["error"] = e.Error
	}
	if e.MessageID != "" {
		payload["messageId"] = e.MessageID
	}

	rooms := []string{
		fmt.Sprintf("session:%s", e.SessionID),
		fmt.Sprintf("stream:%s", e.StreamID),
	}
	if e.ParentChannelID != "" {
		rooms = append(rooms, fmt.Sprintf("channel:%s", e.ParentChannelID))
	}
	for _, room := range rooms {
		if err := o.publisher.Publish(ctx, room, e.SessionID, payload); err != nil {
			o.logger.Warn("Failed to publish trace event",
				"room", room, "event", e.Type, "error", err)
		}
	}
}
