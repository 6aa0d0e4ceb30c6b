package agent

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomchat/companion/pkg/config"
	"github.com/loomchat/companion/pkg/models"
)

type fakeHistoryStore struct {
	models.MessageStore
	history []models.Message
}

func (f *fakeHistoryStore) List(ctx context.Context, streamID string, opts models.ListOptions) ([]models.Message, error) {
	return f.history, nil
}

type fakeAttachmentStore struct {
	byMessage map[string][]models.Attachment
	awaited   []string
}

func (f *fakeAttachmentStore) FindByMessageID(ctx context.Context, messageID string) ([]models.Attachment, error) {
	return f.byMessage[messageID], nil
}

func (f *fakeAttachmentStore) FindByMessageIDs(ctx context.Context, messageIDs []string) ([]models.Attachment, error) {
	var out []models.Attachment
	for _, id := range messageIDs {
		out = append(out, f.byMessage[id]...)
	}
	return out, nil
}

func (f *fakeAttachmentStore) AwaitProcessing(ctx context.Context, attachmentIDs []string) error {
	f.awaited = append(f.awaited, attachmentIDs...)
	return nil
}

func (f *fakeAttachmentStore) LoadBlob(ctx context.Context, attachmentID string) ([]byte, string, error) {
	return nil, "", nil
}

type fakeSummarizer struct {
	text       string
	oldestSeen int64
}

func (f *fakeSummarizer) Update(ctx context.Context, streamID, personaID string, oldestKeptSequence int64) string {
	f.oldestSeen = oldestKeptSequence
	return f.text
}

func buildFixture() (*models.Stream, *models.Persona, []models.Message) {
	stream := &models.Stream{
		ID:          "stream-1",
		WorkspaceID: "ws-1",
		Type:        models.StreamChannel,
		Name:        "general",
	}
	persona := &models.Persona{
		ID:           "persona-1",
		Slug:         "scout",
		Name:         "Scout",
		SystemPrompt: "You are Scout, the team companion.",
		Active:       true,
	}
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	history := []models.Message{
		{ID: "m1", StreamID: "stream-1", AuthorID: "alice", AuthorName: "alice", AuthorType: models.AuthorHuman, Sequence: 10, Content: "morning", CreatedAt: at},
		{ID: "m2", StreamID: "stream-1", AuthorID: "persona-1", AuthorName: "Scout", AuthorType: models.AuthorPersona, Sequence: 11, Content: "morning alice", CreatedAt: at.Add(time.Minute)},
		{ID: "m3", StreamID: "stream-1", AuthorID: "alice", AuthorName: "alice", AuthorType: models.AuthorHuman, Sequence: 12, Content: "any news?", CreatedAt: at.Add(2 * time.Minute)},
	}
	return stream, persona, history
}

func TestBuildAssemblesPromptAndHistory(t *testing.T) {
	stream, persona, history := buildFixture()
	atts := &fakeAttachmentStore{byMessage: map[string][]models.Attachment{}}
	sum := &fakeSummarizer{text: "alice and scout discussed release planning"}
	b := NewContextBuilder(&fakeHistoryStore{history: history}, atts, sum, config.AgentConfig{HistoryWindow: 60}, slog.Default())

	built, err := b.Build(context.Background(), BuildInput{
		Stream:         stream,
		Persona:        persona,
		TriggerMessage: &history[2],
		Trigger:        models.TriggerCompanion,
	})
	require.NoError(t, err)

	assert.Contains(t, built.SystemPrompt, "You are Scout")
	assert.Contains(t, built.SystemPrompt, "#general")
	assert.Contains(t, built.SystemPrompt, "release planning")
	assert.Contains(t, built.SystemPrompt, "untrusted data")
	assert.NotContains(t, built.SystemPrompt, "mentioned as", "no mention section on companion triggers")

	require.Len(t, built.Messages, 3)
	assert.Equal(t, models.RoleUser, built.Messages[0].Role)
	assert.Contains(t, built.Messages[0].Content.Text, "alice: morning")
	assert.Contains(t, built.Messages[0].Content.Text, "[2026-03-01 09:00]")
	assert.Equal(t, models.RoleAssistant, built.Messages[1].Role)
	assert.Equal(t, "morning alice", built.Messages[1].Content.Text, "own messages are unadorned")

	assert.Equal(t, int64(12), built.LastSequence)
	assert.Equal(t, int64(10), built.OldestKeptSequence)
	assert.Equal(t, int64(10), sum.oldestSeen)
}

func TestBuildMentionSection(t *testing.T) {
	stream, persona, history := buildFixture()
	b := NewContextBuilder(&fakeHistoryStore{history: history}, &fakeAttachmentStore{byMessage: map[string][]models.Attachment{}}, nil, config.AgentConfig{HistoryWindow: 60}, slog.Default())

	built, err := b.Build(context.Background(), BuildInput{
		Stream:         stream,
		Persona:        persona,
		TriggerMessage: &history[2],
		Trigger:        models.TriggerMention,
	})
	require.NoError(t, err)
	assert.Contains(t, built.SystemPrompt, "@scout")
}

func TestBuildAwaitsPendingAttachments(t *testing.T) {
	stream, persona, history := buildFixture()
	atts := &fakeAttachmentStore{byMessage: map[string][]models.Attachment{
		"m3": {
			{ID: "a1", MessageID: "m3", Filename: "report.pdf", MimeType: "application/pdf", State: models.AttachmentPending},
			{ID: "a2", MessageID: "m3", Filename: "done.txt", MimeType: "text/plain", State: models.AttachmentReady},
		},
	}}
	b := NewContextBuilder(&fakeHistoryStore{history: history}, atts, nil, config.AgentConfig{HistoryWindow: 60}, slog.Default())

	built, err := b.Build(context.Background(), BuildInput{
		Stream:         stream,
		Persona:        persona,
		TriggerMessage: &history[2],
		Trigger:        models.TriggerCompanion,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, atts.awaited, "only non-terminal attachments are awaited")
	assert.Contains(t, built.Messages[2].Content.Text, `filename="report.pdf"`)
}

func TestBuildAttachmentDescriptorsIncludeExtractedText(t *testing.T) {
	stream, persona, history := buildFixture()
	atts := &fakeAttachmentStore{byMessage: map[string][]models.Attachment{
		"m1": {{
			ID: "a1", MessageID: "m1", Filename: "notes.txt", MimeType: "text/plain",
			State: models.AttachmentReady, Caption: "meeting notes", ExtractedText: "decided to ship friday",
		}},
	}}
	b := NewContextBuilder(&fakeHistoryStore{history: history}, atts, nil, config.AgentConfig{HistoryWindow: 60}, slog.Default())

	built, err := b.Build(context.Background(), BuildInput{
		Stream:         stream,
		Persona:        persona,
		TriggerMessage: &history[2],
		Trigger:        models.TriggerCompanion,
	})
	require.NoError(t, err)
	assert.Contains(t, built.Messages[0].Content.Text, "meeting notes")
	assert.Contains(t, built.Messages[0].Content.Text, "decided to ship friday")
}
