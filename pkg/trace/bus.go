// Package trace is the session event stream: a typed bus multiplexing agent
// loop events to independent observers (step persistence + realtime rooms,
// OpenTelemetry spans).
package trace

import (
	"context"
	"log/slog"
	"time"

	"github.com/loomchat/companion/pkg/models"
)

// EventType enumerates the session trace events.
type EventType string

const (
	EventSessionStart    EventType = "session:start"
	EventThinking        EventType = "thinking"
	EventToolStart       EventType = "tool:start"
	EventToolComplete    EventType = "tool:complete"
	EventToolError       EventType = "tool:error"
	EventMessageSent     EventType = "message:sent"
	EventMessageEdited   EventType = "message:edited"
	EventResponseKept    EventType = "response:kept"
	EventContextReceived EventType = "context:received"
	EventReconsidering   EventType = "reconsidering"
	EventSessionEnd      EventType = "session:end"
	EventSessionError    EventType = "session:error"
)

// Event is one trace emission. Scope fields are always set; the payload
// fields depend on the type.
type Event struct {
	Type            EventType
	SessionID       string
	StreamID        string
	ParentChannelID string
	Time            time.Time

	Content   string
	ToolName  string
	Elapsed   time.Duration
	Sources   []models.Source
	MessageID string
	Error     string
	Metadata  map[string]interface{}
}

// Observer receives every published event. Implementations must tolerate
// concurrent sessions publishing from different goroutines.
type Observer interface {
	Handle(ctx context.Context, e Event)
}

// ExecutionWrapper is implemented by observers that need LLM calls executed
// under their active context, so provider SDK spans nest correctly.
type ExecutionWrapper interface {
	WrapExecution(ctx context.Context, sessionID string, fn func(ctx context.Context) error) error
}

// Bus fans events out to observers in registration order. A panicking or
// slow observer never blocks the others; panics are contained per observer.
type Bus struct {
	observers []Observer
	logger    *slog.Logger
}

// NewBus creates an event bus.
func NewBus(logger *slog.Logger, observers ...Observer) *Bus {
	return &Bus{observers: observers, logger: logger.With("component", "trace_bus")}
}

// Attach registers another observer. Not safe concurrently with Publish;
// attach everything before the runtime starts.
func (b *Bus) Attach(o Observer) {
	b.observers = append(b.observers, o)
}

// Publish delivers the event to every observer. The timestamp is filled in
// when unset.
func (b *Bus) Publish(ctx context.Context, e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	for _, o := range b.observers {
		b.deliver(ctx, o, e)
	}
}

func (b *Bus) deliver(ctx context.Context, o Observer, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Trace observer panicked",
				"event", e.Type, "session_id", e.SessionID, "panic", r)
		}
	}()
	o.Handle(ctx, e)
}

// WrapExecution chains the WrapExecution hooks of every observer that
// provides one around fn.
func (b *Bus) WrapExecution(ctx context.Context, sessionID string, fn func(ctx context.Context) error) error {
	wrapped := fn
	for i := len(b.observers) - 1; i >= 0; i-- {
		if w, ok := b.observers[i].(ExecutionWrapper); ok {
			inner := wrapped
			wrapped = func(ctx context.Context) error {
				return w.WrapExecution(ctx, sessionID, inner)
			}
		}
	}
	return wrapped(ctx)
}
