package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNotifyPayloadInjectsEventID(t *testing.T) {
	payload := map[string]interface{}{
		"type":      "thinking",
		"sessionId": "s1",
		"content":   "short",
	}
	got, err := buildNotifyPayload(payload, 42)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(got), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, "short", m["content"])
	assert.NotContains(t, m, "truncated")
}

func TestBuildNotifyPayloadTruncatesOversize(t *testing.T) {
	payload := map[string]interface{}{
		"type":      "thinking",
		"sessionId": "s1",
		"streamId":  "st1",
		"content":   strings.Repeat("x", 9000),
	}
	got, err := buildNotifyPayload(payload, 7)
	require.NoError(t, err)
	assert.Less(t, len(got), 8000)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(got), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, float64(7), m["db_event_id"])
	assert.Equal(t, "thinking", m["type"])
	assert.Equal(t, "s1", m["sessionId"])
	assert.NotContains(t, m, "content", "oversize fields are dropped from the envelope")
}

func TestValidateRoom(t *testing.T) {
	assert.NoError(t, ValidateRoom("session:abc"))
	assert.NoError(t, ValidateRoom("stream:abc"))
	assert.NoError(t, ValidateRoom("channel:abc"))
	assert.Error(t, ValidateRoom("session:"))
	assert.Error(t, ValidateRoom("global"))
	assert.Error(t, ValidateRoom(""))
}
