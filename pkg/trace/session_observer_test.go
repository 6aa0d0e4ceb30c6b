package trace

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomchat/companion/pkg/models"
)

func TestSessionObserverToolCompleteStep(t *testing.T) {
	steps := &fakeStepWriter{}
	o := NewSessionObserver(steps, nil, slog.Default())

	o.Handle(context.Background(), Event{
		Type:      EventToolComplete,
		SessionID: "sess-1",
		StreamID:  "stream-1",
		Content:   "Fetched https://example.com (Example)",
		ToolName:  "web_fetch",
		Elapsed:   1200 * time.Millisecond,
		Sources:   []models.Source{{URL: "https://example.com", Title: "Example"}},
	})

	require.Len(t, steps.inputs, 1)
	step := steps.inputs[0]
	assert.Equal(t, "tool_call", step.StepType)
	assert.Equal(t, "Fetched https://example.com (Example)", step.Content)
	assert.Equal(t, []map[string]string{{"url": "https://example.com", "title": "Example"}}, step.Sources)
	assert.Equal(t, "web_fetch", step.Metadata["tool"])
	assert.Equal(t, int64(1200), step.Metadata["elapsed_ms"])
}

func TestSessionObserverToolErrorUsesErrorAsContent(t *testing.T) {
	steps := &fakeStepWriter{}
	o := NewSessionObserver(steps, nil, slog.Default())

	o.Handle(context.Background(), Event{
		Type:      EventToolError,
		SessionID: "sess-1",
		StreamID:  "stream-1",
		ToolName:  "web_fetch",
		Error:     "host resolves to a private address",
	})

	require.Len(t, steps.inputs, 1)
	assert.Equal(t, "tool_error", steps.inputs[0].StepType)
	assert.Equal(t, "host resolves to a private address", steps.inputs[0].Content)
}
