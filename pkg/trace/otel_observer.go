package trace

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/loomchat/companion"

// OTELObserver maps session events onto OpenTelemetry spans: session:start
// opens the root span, tool events bracket child spans, and
// session:end/error closes the root. WrapExecution runs LLM calls under the
// session's root span context so provider SDK spans nest under it.
type OTELObserver struct {
	tracer oteltrace.Tracer

	mu       sync.Mutex
	sessions map[string]*sessionSpans
}

type sessionSpans struct {
	ctx   context.Context
	root  oteltrace.Span
	tools map[string]oteltrace.Span // tool name → open span
}

// NewOTELObserver creates the observer against the global tracer provider.
func NewOTELObserver() *OTELObserver {
	return &OTELObserver{
		tracer:   otel.Tracer(tracerName),
		sessions: make(map[string]*sessionSpans),
	}
}

// Handle opens and closes spans per the event type.
func (o *OTELObserver) Handle(ctx context.Context, e Event) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch e.Type {
	case EventSessionStart:
		spanCtx, root := o.tracer.Start(context.WithoutCancel(ctx), "agent.session",
			oteltrace.WithAttributes(
				attribute.String("session.id", e.SessionID),
				attribute.String("stream.id", e.StreamID),
			))
		o.sessions[e.SessionID] = &sessionSpans{
			ctx:   spanCtx,
			root:  root,
			tools: make(map[string]oteltrace.Span),
		}

	case EventToolStart:
		s, ok := o.sessions[e.SessionID]
		if !ok {
			return
		}
		_, span := o.tracer.Start(s.ctx, "agent.tool."+e.ToolName,
			oteltrace.WithAttributes(attribute.String("tool.name", e.ToolName)))
		s.tools[e.ToolName] = span

	case EventToolComplete:
		o.endToolSpan(e, codes.Ok, "")

	case EventToolError:
		o.endToolSpan(e, codes.Error, e.Error)

	case EventSessionEnd:
		o.endSession(e.SessionID, codes.Ok, "")

	case EventSessionError:
		o.endSession(e.SessionID, codes.Error, e.Error)
	}
}

func (o *OTELObserver) endToolSpan(e Event, code codes.Code, desc string) {
	s, ok := o.sessions[e.SessionID]
	if !ok {
		return
	}
	span, ok := s.tools[e.ToolName]
	if !ok {
		return
	}
	delete(s.tools, e.ToolName)
	span.SetStatus(code, desc)
	span.End()
}

func (o *OTELObserver) endSession(sessionID string, code codes.Code, desc string) {
	s, ok := o.sessions[sessionID]
	if !ok {
		return
	}
	delete(o.sessions, sessionID)
	for _, span := range s.tools {
		span.End()
	}
	s.root.SetStatus(code, desc)
	s.root.End()
}

// WrapExecution runs fn under the session's root span context when one is
// open; otherwise it runs fn unchanged.
func (o *OTELObserver) WrapExecution(ctx context.Context, sessionID string, fn func(ctx context.Context) error) error {
	o.mu.Lock()
	s, ok := o.sessions[sessionID]
	o.mu.Unlock()
	if !ok {
		return fn(ctx)
	}
	return fn(oteltrace.ContextWithSpan(ctx, s.root))
}
