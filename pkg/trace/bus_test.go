package trace

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []Event
}

func (r *recordingObserver) Handle(_ context.Context, e Event) {
	r.events = append(r.events, e)
}

type panickingObserver struct{}

func (panickingObserver) Handle(context.Context, Event) {
	panic("observer bug")
}

func TestBusDeliversToAllObservers(t *testing.T) {
	a := &recordingObserver{}
	b := &recordingObserver{}
	bus := NewBus(slog.Default(), a, b)

	bus.Publish(context.Background(), Event{Type: EventThinking, SessionID: "s1", Content: "hm"})

	require.Len(t, a.events, 1)
	require.Len(t, b.events, 1)
	assert.Equal(t, EventThinking, a.events[0].Type)
	assert.False(t, a.events[0].Time.IsZero(), "publish stamps the time")
}

func TestBusIsolatesPanickingObserver(t *testing.T) {
	healthy := &recordingObserver{}
	bus := NewBus(slog.Default(), panickingObserver{}, healthy)

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), Event{Type: EventToolStart, SessionID: "s1", ToolName: "web_fetch"})
	})
	require.Len(t, healthy.events, 1, "later observers still receive the event")
}

type wrappingObserver struct {
	recordingObserver
	calls []string
	tag   string
}

func (w *wrappingObserver) WrapExecution(ctx context.Context, _ string, fn func(context.Context) error) error {
	w.calls = append(w.calls, w.tag+":before")
	err := fn(ctx)
	w.calls = append(w.calls, w.tag+":after")
	return err
}

func TestBusWrapExecutionChains(t *testing.T) {
	w := &wrappingObserver{tag: "otel"}
	bus := NewBus(slog.Default(), &recordingObserver{}, w)

	ran := false
	err := bus.WrapExecution(context.Background(), "s1", func(context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, []string{"otel:before", "otel:after"}, w.calls)
}

func TestSessionObserverStepMapping(t *testing.T) {
	tests := []struct {
		event    EventType
		stepType string
		persists bool
	}{
		{EventThinking, "thinking", true},
		{EventToolComplete, "tool_call", true},
		{EventToolError, "tool_error", true},
		{EventMessageSent, "message_sent", true},
		{EventReconsidering, "reconsidering", true},
		{EventSessionStart, "", false},
		{EventToolStart, "", false},
		{EventSessionEnd, "", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.event), func(t *testing.T) {
			stepType, ok := stepTypeFor(tt.event)
			assert.Equal(t, tt.persists, ok)
			if tt.persists {
				assert.Equal(t, tt.stepType, stepType)
			}
		})
	}
}

type fakeStepWriter struct {
	inputs []StepInput
}

func (f *fakeStepWriter) Record(_ context.Context, in StepInput) (string, error) {
	f.inputs = append(f.inputs, in)
	return "step-1", nil
}

type fakeRoomPublisher struct {
	rooms []string
}

func (f *fakeRoomPublisher) Publish(_ context.Context, room, _ string, _ map[string]interface{}) error {
	f.rooms = append(f.rooms, room)
	return nil
}

func TestSessionObserverPublishesToScopedRooms(t *testing.T) {
	steps := &fakeStepWriter{}
	pub := &fakeRoomPublisher{}
	o := NewSessionObserver(steps, pub, slog.Default())

	o.Handle(context.Background(), Event{
		Type:            EventMessageSent,
		SessionID:       "sess-1",
		StreamID:        "stream-1",
		ParentChannelID: "chan-1",
		MessageID:       "msg-9",
	})

	require.Len(t, steps.inputs, 1)
	assert.Equal(t, "message_sent", steps.inputs[0].StepType)
	assert.Equal(t, "msg-9", steps.inputs[0].MessageID)
	assert.Equal(t, []string{"session:sess-1", "stream:stream-1", "channel:chan-1"}, pub.rooms)
}

func TestSessionObserverSkipsTransientEvents(t *testing.T) {
	steps := &fakeStepWriter{}
	pub := &fakeRoomPublisher{}
	o := NewSessionObserver(steps, pub, slog.Default())

	o.Handle(context.Background(), Event{
		Type:      EventToolStart,
		SessionID: "sess-1",
		StreamID:  "stream-1",
		ToolName:  "web_fetch",
	})

	assert.Empty(t, steps.inputs, "tool start is realtime-only")
	assert.Len(t, pub.rooms, 2, "still published to session and stream rooms")
}
