package outbox

import (
	"context"
	"errors"
	"log/slog"

	"github.com/loomchat/companion/pkg/models"
)

// Listener ids; each dispatcher owns its own cursor row.
const (
	CompanionListenerID = "companion-dispatcher"
	MentionListenerID   = "mention-dispatcher"
)

// EntrySource is the read side of the outbox consumed by dispatchers.
type EntrySource interface {
	FetchAfter(ctx context.Context, cursor int64, limit int, kinds ...string) ([]Entry, error)
}

// SessionReader is the session-state view dispatchers deduplicate against.
type SessionReader interface {
	// HasActiveSession reports whether a running or pending session exists
	// for the stream.
	HasActiveSession(ctx context.Context, streamID string) (bool, error)
	// LastAbsorbedSequence returns the highest lastSeenSequence among
	// completed sessions for the stream/persona pair, or 0 if none exist.
	LastAbsorbedSequence(ctx context.Context, streamID, personaID string) (int64, error)
}

// CompanionDispatcher auto-replies on every human message in streams with
// companion mode enabled. It filters, deduplicates against in-flight and
// historical sessions, and enqueues persona-agent jobs.
type CompanionDispatcher struct {
	store     EntrySource
	streams   models.StreamStore
	personas  models.PersonaStore
	sessions  SessionReader
	queue     Queue
	batchSize int
	logger    *slog.Logger
}

// NewCompanionDispatcher builds the companion-mode outbox handler.
func NewCompanionDispatcher(
	store EntrySource,
	streams models.StreamStore,
	personas models.PersonaStore,
	sessions SessionReader,
	queue Queue,
	batchSize int,
	logger *slog.Logger,
) *CompanionDispatcher {
	return &CompanionDispatcher{
		store:     store,
		streams:   streams,
		personas:  personas,
		sessions:  sessions,
		queue:     queue,
		batchSize: batchSize,
		logger:    logger.With("dispatcher", "companion"),
	}
}

// Process is the listener handler: it walks message_created entries in
// ascending id order and advances only past handled ones. Malformed entries
// are skipped; transient failures stop the walk so the retry resumes there.
func (d *CompanionDispatcher) Process(ctx context.Context, cursor int64) (int64, error) {
	entries, err := d.store.FetchAfter(ctx, cursor, d.batchSize, models.OutboxMessageCreated)
	if err != nil {
		return cursor, err
	}
	for _, entry := range entries {
		var payload models.MessageCreatedPayload
		if err := entry.DecodePayload(&payload); err != nil {
			d.logger.Warn("Skipping malformed outbox entry", "entry_id", entry.ID, "error", err)
			cursor = entry.ID
			continue
		}
		if err := d.handle(ctx, payload); err != nil {
			return cursor, err
		}
		cursor = entry.ID
	}
	return cursor, nil
}

func (d *CompanionDispatcher) handle(ctx context.Context, p models.MessageCreatedPayload) error {
	log := d.logger.With("stream_id", p.StreamID, "message_id", p.MessageID)

	if p.AuthorType != models.AuthorHuman {
		return nil
	}

	stream, err := d.streams.GetStream(ctx, p.StreamID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Debug("Stream deleted since message was written, skipping")
			return nil
		}
		return err
	}
	if !stream.CompanionMode || stream.PersonaID == "" {
		return nil
	}

	isMember, err := d.streams.IsHumanMember(ctx, p.StreamID, p.AuthorID)
	if err != nil {
		return err
	}
	if !isMember {
		log.Debug("Author is not a human member, skipping")
		return nil
	}

	persona, err := d.personas.GetPersona(ctx, stream.PersonaID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Debug("Stream persona deleted, skipping")
			return nil
		}
		return err
	}
	if !persona.Active {
		log.Debug("Stream persona inactive, skipping")
		return nil
	}

	active, err := d.sessions.HasActiveSession(ctx, p.StreamID)
	if err != nil {
		return err
	}
	if active {
		// The in-flight session absorbs this message via its new-message
		// check; if it does not, a later outbox pass re-dispatches.
		log.Debug("Session already active for stream, skipping")
		return nil
	}

	// A completed session may already have absorbed this message through
	// reconsideration. Without this check every absorbed message would
	// spawn a duplicate session from its own outbox entry.
	absorbed, err := d.sessions.LastAbsorbedSequence(ctx, p.StreamID, persona.ID)
	if err != nil {
		return err
	}
	if absorbed >= p.Sequence {
		log.Debug("Message already absorbed by a completed session",
			"sequence", p.Sequence, "absorbed_through", absorbed)
		return nil
	}

	job := models.PersonaJob{
		WorkspaceID: p.WorkspaceID,
		StreamID:    p.StreamID,
		MessageID:   p.MessageID,
		PersonaID:   persona.ID,
		TriggeredBy: models.TriggerCompanion,
	}
	if err := d.queue.Send(ctx, models.PersonaJobQueue, job); err != nil {
		return err
	}
	log.Info("Companion job enqueued", "persona_id", persona.ID)
	return nil
}

// MentionDispatcher fires on @persona mentions in any stream. One persona is
// one job even when mentioned repeatedly; persona-authored messages never
// re-trigger, which prevents persona-to-persona loops.
type MentionDispatcher struct {
	store     EntrySource
	personas  models.PersonaStore
	queue     Queue
	batchSize int
	logger    *slog.Logger
}

// NewMentionDispatcher builds the mention outbox handler.
func NewMentionDispatcher(
	store EntrySource,
	personas models.PersonaStore,
	queue Queue,
	batchSize int,
	logger *slog.Logger,
) *MentionDispatcher {
	return &MentionDispatcher{
		store:     store,
		personas:  personas,
		queue:     queue,
		batchSize: batchSize,
		logger:    logger.With("dispatcher", "mention"),
	}
}

// Process is the listener handler for the mention cursor.
func (d *MentionDispatcher) Process(ctx context.Context, cursor int64) (int64, error) {
	entries, err := d.store.FetchAfter(ctx, cursor, d.batchSize, models.OutboxMessageCreated)
	if err != nil {
		return cursor, err
	}
	for _, entry := range entries {
		var payload models.MessageCreatedPayload
		if err := entry.DecodePayload(&payload); err != nil {
			d.logger.Warn("Skipping malformed outbox entry", "entry_id", entry.ID, "error", err)
			cursor = entry.ID
			continue
		}
		if err := d.handle(ctx, payload); err != nil {
			return cursor, err
		}
		cursor = entry.ID
	}
	return cursor, nil
}

func (d *MentionDispatcher) handle(ctx context.Context, p models.MessageCreatedPayload) error {
	if p.AuthorType == models.AuthorPersona {
		return nil
	}

	for _, slug := range ExtractMentions(p.ContentMarkdown) {
		persona, err := d.personas.FindBySlug(ctx, p.WorkspaceID, slug)
		if err != nil {
			// Most "@word" tokens are not persona slugs at all; a miss must
			// never pin the cursor on this entry.
			if errors.Is(err, models.ErrNotFound) {
				continue
			}
			return err
		}
		if !persona.Active {
			continue
		}
		job := models.PersonaJob{
			WorkspaceID: p.WorkspaceID,
			StreamID:    p.StreamID,
			MessageID:   p.MessageID,
			PersonaID:   persona.ID,
			TriggeredBy: models.TriggerMention,
		}
		if err := d.queue.Send(ctx, models.PersonaJobQueue, job); err != nil {
			return err
		}
		d.logger.Info("Mention job enqueued",
			"stream_id", p.StreamID, "message_id", p.MessageID, "persona_id", persona.ID)
	}
	return nil
}
