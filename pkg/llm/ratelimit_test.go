package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingClient struct {
	toolCalls   int
	objectCalls int
}

func (c *countingClient) GenerateWithTools(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	c.toolCalls++
	return &GenerateResult{}, nil
}

func (c *countingClient) GenerateObject(ctx context.Context, input ObjectInput, out any) error {
	c.objectCalls++
	return nil
}

func TestRateLimitedClientDelegates(t *testing.T) {
	inner := &countingClient{}
	client := NewRateLimitedClient(inner, 100)

	_, err := client.GenerateWithTools(context.Background(), GenerateInput{})
	require.NoError(t, err)
	err = client.GenerateObject(context.Background(), ObjectInput{}, &struct{}{})
	require.NoError(t, err)

	assert.Equal(t, 1, inner.toolCalls)
	assert.Equal(t, 1, inner.objectCalls)
}

func TestRateLimitedClientPacesCalls(t *testing.T) {
	inner := &countingClient{}
	client := NewRateLimitedClient(inner, 20) // 50ms between calls after the burst

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := client.GenerateWithTools(context.Background(), GenerateInput{})
		require.NoError(t, err)
	}
	// Burst of one, then two paced calls.
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	assert.Equal(t, 3, inner.toolCalls)
}

func TestRateLimitedClientHonorsCancellation(t *testing.T) {
	inner := &countingClient{}
	client := NewRateLimitedClient(inner, 0.001)

	// Consume the single burst token.
	_, err := client.GenerateWithTools(context.Background(), GenerateInput{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.GenerateWithTools(ctx, GenerateInput{})
	require.Error(t, err)
	assert.Equal(t, 1, inner.toolCalls)
}
