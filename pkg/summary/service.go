// Package summary maintains the rolling conversation summary: messages that
// fall out of the active window are compacted into a persistent per
// (stream, persona) summary so recall survives truncation.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/loomchat/companion/ent"
	"github.com/loomchat/companion/ent/rollingsummary"
	"github.com/loomchat/companion/pkg/config"
	"github.com/loomchat/companion/pkg/llm"
	"github.com/loomchat/companion/pkg/models"
)

// summarySchema forces the structured LLM response shape.
var summarySchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"summary": {
			"type": "string",
			"description": "The updated running summary of the conversation"
		}
	},
	"required": ["summary"]
}`)

type summaryOutput struct {
	Summary string `json:"summary"`
}

// Service updates and serves rolling summaries.
type Service struct {
	client   *ent.Client
	llm      llm.Client
	messages models.MessageStore
	cfg      config.SummaryConfig
	model    string
	logger   *slog.Logger
}

// NewService creates the rolling summary service.
func NewService(client *ent.Client, llmClient llm.Client, messages models.MessageStore, cfg config.SummaryConfig, model string, logger *slog.Logger) *Service {
	return &Service{
		client:   client,
		llm:      llmClient,
		messages: messages,
		cfg:      cfg,
		model:    model,
		logger:   logger.With("component", "summary"),
	}
}

// Load returns the current summary text and its coverage high-water mark,
// or ("", 0) when no summary exists yet.
func (s *Service) Load(ctx context.Context, streamID, personaID string) (string, int64, error) {
	row, err := s.client.RollingSummary.Query().
		Where(
			rollingsummary.StreamID(streamID),
			rollingsummary.PersonaID(personaID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", 0, nil
		}
		return "", 0, fmt.Errorf("failed to load rolling summary: %w", err)
	}
	return row.Summary, row.LastSummarizedSequence, nil
}

// Update folds every message older than oldestKeptSequence into the summary,
// in bounded batches. Errors are non-fatal: the previous summary text is
// returned and the next session retries from the persisted cursor.
func (s *Service) Update(ctx context.Context, streamID, personaID string, oldestKeptSequence int64) string {
	log := s.logger.With("stream_id", streamID, "persona_id", personaID)

	current, lastSummarized, err := s.Load(ctx, streamID, personaID)
	if err != nil {
		log.Error("Failed to load summary, skipping update", "error", err)
		return ""
	}

	cursor := lastSummarized + 1
	for batch := 0; batch < s.cfg.MaxBatches && cursor <= oldestKeptSequence-1; batch++ {
		batchMessages, err := s.messages.ListBySequenceRange(ctx, streamID, cursor, oldestKeptSequence-1, s.cfg.BatchSize)
		if err != nil {
			log.Error("Failed to fetch messages for summary", "cursor", cursor, "error", err)
			return current
		}
		if len(batchMessages) == 0 {
			break
		}

		updated, err := s.summarize(ctx, current, batchMessages)
		if err != nil {
			log.Error("Summary generation failed", "cursor", cursor, "error", err)
			return current
		}

		last := batchMessages[len(batchMessages)-1].Sequence
		if err := s.upsert(ctx, streamID, personaID, updated, last); err != nil {
			log.Error("Failed to persist summary", "error", err)
			return current
		}

		current = updated
		cursor = last + 1
		log.Debug("Summary batch absorbed", "through_sequence", last, "messages", len(batchMessages))
	}

	return current
}

// summarize asks the model to fold a batch into the existing summary.
func (s *Service) summarize(ctx context.Context, existing string, batch []models.Message) (string, error) {
	var b strings.Builder
	b.WriteString("Maintain a running summary of a chat conversation.\n\n")
	if existing != "" {
		b.WriteString("Current summary:\n")
		b.WriteString(existing)
		b.WriteString("\n\n")
	} else {
		b.WriteString("There is no summary yet.\n\n")
	}
	b.WriteString("New messages to fold in:\n")
	for _, m := range batch {
		fmt.Fprintf(&b, "[%s] %s: %s\n", m.CreatedAt.Format("2006-01-02 15:04"), m.AuthorName, m.Content)
	}
	fmt.Fprintf(&b,
		"\nProduce the updated summary. Keep what still matters, drop what is obsolete, and stay under %d characters.",
		s.cfg.MaxChars)

	var out summaryOutput
	err := s.llm.GenerateObject(ctx, llm.ObjectInput{
		Model:      s.model,
		Messages:   []models.ConversationMessage{{Role: models.RoleUser, Content: models.TextContent(b.String())}},
		Schema:     summarySchema,
		SchemaName: "conversation summary",
		MaxTokens:  2048,
	}, &out)
	if err != nil {
		return "", err
	}

	summary := out.Summary
	if len(summary) > s.cfg.MaxChars {
		cut := s.cfg.MaxChars
		// Never split a rune at the cut point.
		for cut > 0 && !utf8.RuneStart(summary[cut]) {
			cut--
		}
		summary = summary[:cut]
	}
	return summary, nil
}

// upsert writes the summary row, never letting the coverage mark regress.
func (s *Service) upsert(ctx context.Context, streamID, personaID, summary string, lastSequence int64) error {
	n, err := s.client.RollingSummary.Update().
		Where(
			rollingsummary.StreamID(streamID),
			rollingsummary.PersonaID(personaID),
			rollingsummary.LastSummarizedSequenceLT(lastSequence),
		).
		SetSummary(summary).
		SetLastSummarizedSequence(lastSequence).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update rolling summary: %w", err)
	}
	if n > 0 {
		return nil
	}

	exists, err := s.client.RollingSummary.Query().
		Where(
			rollingsummary.StreamID(streamID),
			rollingsummary.PersonaID(personaID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check rolling summary: %w", err)
	}
	if exists {
		// Row present with an equal or higher mark; nothing to do.
		return nil
	}

	err = s.client.RollingSummary.Create().
		SetID(uuid.NewString()).
		SetStreamID(streamID).
		SetPersonaID(personaID).
		SetSummary(summary).
		SetLastSummarizedSequence(lastSequence).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to create rolling summary: %w", err)
	}
	return nil
}
