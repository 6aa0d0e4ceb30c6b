package summary

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomchat/companion/pkg/config"
	"github.com/loomchat/companion/pkg/llm"
	"github.com/loomchat/companion/pkg/models"
)

type fakeLLM struct {
	summary string
	err     error
	prompts []string
}

func (f *fakeLLM) GenerateWithTools(ctx context.Context, input llm.GenerateInput) (*llm.GenerateResult, error) {
	return nil, nil
}

func (f *fakeLLM) GenerateObject(ctx context.Context, input llm.ObjectInput, out any) error {
	if len(input.Messages) > 0 {
		f.prompts = append(f.prompts, input.Messages[0].Content.PlainText())
	}
	if f.err != nil {
		return f.err
	}
	raw, _ := json.Marshal(summaryOutput{Summary: f.summary})
	return json.Unmarshal(raw, out)
}

func testService(client *fakeLLM) *Service {
	return &Service{
		llm:    client,
		cfg:    config.SummaryConfig{BatchSize: 40, MaxBatches: 3, MaxChars: 4000},
		model:  "claude-sonnet-4-5",
		logger: slog.Default(),
	}
}

func TestSummarizeIncludesExistingSummaryAndBatch(t *testing.T) {
	fake := &fakeLLM{summary: "updated summary"}
	s := testService(fake)

	batch := []models.Message{
		{AuthorName: "alice", Sequence: 3, Content: "let's ship on friday", CreatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)},
		{AuthorName: "bob", Sequence: 4, Content: "works for me", CreatedAt: time.Date(2026, 3, 1, 9, 31, 0, 0, time.UTC)},
	}
	got, err := s.summarize(context.Background(), "previous notes", batch)
	require.NoError(t, err)
	assert.Equal(t, "updated summary", got)

	require.Len(t, fake.prompts, 1)
	prompt := fake.prompts[0]
	assert.Contains(t, prompt, "previous notes")
	assert.Contains(t, prompt, "alice: let's ship on friday")
	assert.Contains(t, prompt, "bob: works for me")
	assert.Contains(t, prompt, "under 4000 characters")
}

func TestSummarizeNoExistingSummary(t *testing.T) {
	fake := &fakeLLM{summary: "first summary"}
	s := testService(fake)

	_, err := s.summarize(context.Background(), "", []models.Message{
		{AuthorName: "alice", Content: "hi", CreatedAt: time.Now()},
	})
	require.NoError(t, err)
	assert.Contains(t, fake.prompts[0], "no summary yet")
}

func TestSummarizeCapsLength(t *testing.T) {
	fake := &fakeLLM{summary: strings.Repeat("a", 5000)}
	s := testService(fake)

	got, err := s.summarize(context.Background(), "", []models.Message{
		{AuthorName: "alice", Content: "hi", CreatedAt: time.Now()},
	})
	require.NoError(t, err)
	assert.Len(t, got, 4000)
}

func TestSummarizeCapCutsAtRuneBoundary(t *testing.T) {
	fake := &fakeLLM{summary: strings.Repeat("日本語の要約", 300)}
	s := testService(fake)

	got, err := s.summarize(context.Background(), "", []models.Message{
		{AuthorName: "alice", Content: "hi", CreatedAt: time.Now()},
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), 4000)
	assert.True(t, utf8.ValidString(got))
}
