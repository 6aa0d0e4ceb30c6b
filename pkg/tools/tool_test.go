package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool(name string, phase ExecutionPhase) *Tool {
	return &Tool{
		Name:        name,
		Description: "echoes its input",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {"text": {"type": "string"}},
			"required": ["text"],
			"additionalProperties": false
		}`),
		ExecutionPhase: phase,
		Execute: func(ctx context.Context, input json.RawMessage) (*Result, error) {
			return &Result{Output: string(input)}, nil
		},
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(echoTool("echo", PhaseNormal)))

	tool, ok := r.Get("echo")
	require.True(t, ok)
	assert.Equal(t, "echo", tool.Name)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(echoTool("echo", PhaseNormal)))
	assert.Error(t, r.Register(echoTool("echo", PhaseEarly)))
}

func TestRegistryRejectsBadSchema(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&Tool{
		Name:        "broken",
		InputSchema: json.RawMessage(`{not json`),
		Execute: func(ctx context.Context, input json.RawMessage) (*Result, error) {
			return nil, nil
		},
	})
	assert.Error(t, err)
}

func TestRegistryValidate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(echoTool("echo", PhaseNormal)))

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid input", `{"text": "hello"}`, false},
		{"missing required field", `{}`, true},
		{"wrong type", `{"text": 42}`, true},
		{"extra property", `{"text": "hi", "other": 1}`, true},
		{"not json", `{broken`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Validate("echo", json.RawMessage(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.Error(t, r.Validate("missing", json.RawMessage(`{}`)))
}

func TestRegistryDefinitionsPreserveOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(echoTool("beta", PhaseNormal)))
	require.NoError(t, r.Register(echoTool("alpha", PhaseEarly)))
	require.NoError(t, r.Register(echoTool("gamma", PhaseNormal)))

	defs := r.Definitions()
	require.Len(t, defs, 3)
	assert.Equal(t, "beta", defs[0].Name)
	assert.Equal(t, "alpha", defs[1].Name)
	assert.Equal(t, "gamma", defs[2].Name)
	assert.Equal(t, []string{"beta", "alpha", "gamma"}, r.Names())
}
