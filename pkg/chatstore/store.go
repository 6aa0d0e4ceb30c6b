// Package chatstore is the SQL adapter to the chat product's tables. The
// runtime shares one PostgreSQL database with the chat service; this package
// implements the collaborator contracts in pkg/models against those tables
// without owning their schema.
package chatstore

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loomchat/companion/pkg/models"
)

// ErrNotFound reports a missing row for any of the lookup methods. It is the
// shared models.ErrNotFound sentinel, so callers match it with errors.Is
// against either name.
var ErrNotFound = models.ErrNotFound

// Store implements the chat collaborator contracts over a shared database.
type Store struct {
	db *stdsql.DB
	// attachmentPollInterval paces AwaitProcessing.
	attachmentPollInterval time.Duration
}

// New creates the store.
func New(db *stdsql.DB, attachmentPollInterval time.Duration) *Store {
	if attachmentPollInterval <= 0 {
		attachmentPollInterval = 500 * time.Millisecond
	}
	return &Store{db: db, attachmentPollInterval: attachmentPollInterval}
}

// GetStream loads one stream.
func (s *Store) GetStream(ctx context.Context, streamID string) (*models.Stream, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT stream_id, workspace_id, type, COALESCE(name, ''),
		       COALESCE(parent_channel_id, ''), companion_mode, COALESCE(persona_id, '')
		FROM streams WHERE stream_id = $1`, streamID)

	var st models.Stream
	var streamType string
	err := row.Scan(&st.ID, &st.WorkspaceID, &streamType, &st.Name,
		&st.ParentChannelID, &st.CompanionMode, &st.PersonaID)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return nil, fmt.Errorf("stream %s: %w", streamID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load stream %s: %w", streamID, err)
	}
	st.Type = models.StreamType(streamType)
	return &st, nil
}

// IsHumanMember reports whether the user is a member of the stream.
func (s *Store) IsHumanMember(ctx context.Context, streamID, userID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM stream_members
			WHERE stream_id = $1 AND user_id = $2
		)`, streamID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return exists, nil
}

const messageColumns = `message_id, stream_id, author_id, author_name, author_type, sequence, content, created_at`

func scanMessage(scanner interface{ Scan(...any) error }) (models.Message, error) {
	var m models.Message
	var authorType string
	err := scanner.Scan(&m.ID, &m.StreamID, &m.AuthorID, &m.AuthorName,
		&authorType, &m.Sequence, &m.Content, &m.CreatedAt)
	if err != nil {
		return m, err
	}
	m.AuthorType = models.AuthorType(authorType)
	return m, nil
}

func (s *Store) queryMessages(ctx context.Context, query string, args ...any) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("message query failed: %w", err)
	}
	defer rows.Close()

	var out []models.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// List returns the newest messages up to the limit, ascending by sequence.
func (s *Store) List(ctx context.Context, streamID string, opts models.ListOptions) ([]models.Message, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	if opts.BeforeSeq > 0 {
		return s.queryMessages(ctx, `
			SELECT * FROM (
				SELECT `+messageColumns+` FROM messages
				WHERE stream_id = $1 AND deleted_at IS NULL AND sequence < $2
				ORDER BY sequence DESC LIMIT $3
			) newest ORDER BY sequence ASC`, streamID, opts.BeforeSeq, limit)
	}
	return s.queryMessages(ctx, `
		SELECT * FROM (
			SELECT `+messageColumns+` FROM messages
			WHERE stream_id = $1 AND deleted_at IS NULL
			ORDER BY sequence DESC LIMIT $2
		) newest ORDER BY sequence ASC`, streamID, limit)
}

// ListSince returns messages with sequence > sinceSeq, ascending.
func (s *Store) ListSince(ctx context.Context, streamID string, sinceSeq int64, opts models.SinceOptions) ([]models.Message, error) {
	if opts.ExcludeAuthor != "" {
		return s.queryMessages(ctx, `
			SELECT `+messageColumns+` FROM messages
			WHERE stream_id = $1 AND deleted_at IS NULL AND sequence > $2 AND author_id <> $3
			ORDER BY sequence ASC`, streamID, sinceSeq, opts.ExcludeAuthor)
	}
	return s.queryMessages(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE stream_id = $1 AND deleted_at IS NULL AND sequence > $2
		ORDER BY sequence ASC`, streamID, sinceSeq)
}

// ListBySequenceRange returns messages in [fromSeq, toSeq], ascending, up to
// the limit. Used by the rolling summary batcher.
func (s *Store) ListBySequenceRange(ctx context.Context, streamID string, fromSeq, toSeq int64, limit int) ([]models.Message, error) {
	return s.queryMessages(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE stream_id = $1 AND deleted_at IS NULL AND sequence >= $2 AND sequence <= $3
		ORDER BY sequence ASC LIMIT $4`, streamID, fromSeq, toSeq, limit)
}

// FindByID loads one message.
func (s *Store) FindByID(ctx context.Context, messageID string) (*models.Message, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE message_id = $1 AND deleted_at IS NULL`, messageID)
	m, err := scanMessage(row)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return nil, fmt.Errorf("message %s: %w", messageID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load message %s: %w", messageID, err)
	}
	return &m, nil
}

// FindByIDs loads a batch of messages; missing ids are silently absent.
func (s *Store) FindByIDs(ctx context.Context, messageIDs []string) ([]models.Message, error) {
	if len(messageIDs) == 0 {
		return nil, nil
	}
	ids, _ := json.Marshal(messageIDs)
	return s.queryMessages(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE message_id IN (SELECT jsonb_array_elements_text($1::jsonb)) AND deleted_at IS NULL
		ORDER BY sequence ASC`, string(ids))
}

// Search runs websearch-syntax full-text search across the workspace.
func (s *Store) Search(ctx context.Context, workspaceID, query string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryMessages(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE workspace_id = $1 AND deleted_at IS NULL
		  AND to_tsvector('english', content) @@ websearch_to_tsquery('english', $2)
		ORDER BY created_at DESC LIMIT $3`, workspaceID, query, limit)
}

// CreateMessage commits an agent message: it allocates the next stream
// sequence under the stream row lock, inserts the message, and appends the
// message_created outbox entry in the same transaction.
func (s *Store) CreateMessage(ctx context.Context, req models.CreateMessageRequest) (*models.CreateMessageResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin message transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var sequence int64
	err = tx.QueryRowContext(ctx, `
		UPDATE streams SET last_sequence = last_sequence + 1
		WHERE stream_id = $1
		RETURNING last_sequence`, req.StreamID).Scan(&sequence)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return nil, fmt.Errorf("stream %s: %w", req.StreamID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to allocate sequence: %w", err)
	}

	messageID := uuid.NewString()
	var sourcesJSON any
	if len(req.Sources) > 0 {
		raw, err := json.Marshal(req.Sources)
		if err != nil {
			return nil, fmt.Errorf("failed to encode sources: %w", err)
		}
		sourcesJSON = string(raw)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO messages (message_id, workspace_id, stream_id, author_id, author_type, sequence, content, sources, session_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), now())`,
		messageID, req.WorkspaceID, req.StreamID, req.AuthorID, string(req.AuthorType),
		sequence, req.Content, sourcesJSON, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert message: %w", err)
	}

	payload, err := json.Marshal(models.MessageCreatedPayload{
		WorkspaceID:     req.WorkspaceID,
		StreamID:        req.StreamID,
		MessageID:       messageID,
		AuthorID:        req.AuthorID,
		AuthorType:      req.AuthorType,
		Sequence:        sequence,
		ContentMarkdown: req.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode outbox payload: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO outbox_entries (kind, payload, created_at)
		VALUES ($1, $2::jsonb, now())`, models.OutboxMessageCreated, string(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to insert outbox entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit message: %w", err)
	}
	return &models.CreateMessageResult{ID: messageID, Operation: "created"}, nil
}

const attachmentColumns = `attachment_id, message_id, filename, mime_type, size_bytes, state, COALESCE(caption, ''), COALESCE(extracted_text, '')`

func scanAttachment(scanner interface{ Scan(...any) error }) (models.Attachment, error) {
	var a models.Attachment
	var state string
	err := scanner.Scan(&a.ID, &a.MessageID, &a.Filename, &a.MimeType,
		&a.SizeBytes, &state, &a.Caption, &a.ExtractedText)
	if err != nil {
		return a, err
	}
	a.State = models.AttachmentState(state)
	return a, nil
}

func (s *Store) queryAttachments(ctx context.Context, query string, args ...any) ([]models.Attachment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("attachment query failed: %w", err)
	}
	defer rows.Close()

	var out []models.Attachment
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// FindByMessageID lists a message's attachments.
func (s *Store) FindByMessageID(ctx context.Context, messageID string) ([]models.Attachment, error) {
	return s.queryAttachments(ctx, `
		SELECT `+attachmentColumns+` FROM attachments
		WHERE message_id = $1 ORDER BY attachment_id`, messageID)
}

// FindByMessageIDs lists attachments for a batch of messages.
func (s *Store) FindByMessageIDs(ctx context.Context, messageIDs []string) ([]models.Attachment, error) {
	if len(messageIDs) == 0 {
		return nil, nil
	}
	ids, _ := json.Marshal(messageIDs)
	return s.queryAttachments(ctx, `
		SELECT `+attachmentColumns+` FROM attachments
		WHERE message_id IN (SELECT jsonb_array_elements_text($1::jsonb))
		ORDER BY attachment_id`, string(ids))
}

// AwaitProcessing polls until every listed attachment reaches a terminal
// extraction state or the context expires.
func (s *Store) AwaitProcessing(ctx context.Context, attachmentIDs []string) error {
	if len(attachmentIDs) == 0 {
		return nil
	}
	ids, _ := json.Marshal(attachmentIDs)

	ticker := time.NewTicker(s.attachmentPollInterval)
	defer ticker.Stop()
	for {
		var pending int
		err := s.db.QueryRowContext(ctx, `
			SELECT count(*) FROM attachments
			WHERE attachment_id IN (SELECT jsonb_array_elements_text($1::jsonb))
			  AND state NOT IN ('ready', 'failed', 'unsupported')`, string(ids)).Scan(&pending)
		if err != nil {
			return fmt.Errorf("failed to poll attachment state: %w", err)
		}
		if pending == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("attachment processing wait cancelled: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// LoadBlob returns an attachment's raw bytes and MIME type.
func (s *Store) LoadBlob(ctx context.Context, attachmentID string) ([]byte, string, error) {
	var data []byte
	var mimeType string
	err := s.db.QueryRowContext(ctx, `
		SELECT blob, mime_type FROM attachments
		WHERE attachment_id = $1`, attachmentID).Scan(&data, &mimeType)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return nil, "", fmt.Errorf("attachment %s: %w", attachmentID, ErrNotFound)
		}
		return nil, "", fmt.Errorf("failed to load attachment blob: %w", err)
	}
	return data, mimeType, nil
}

// GetPersona loads one persona.
func (s *Store) GetPersona(ctx context.Context, personaID string) (*models.Persona, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT persona_id, workspace_id, slug, name, system_prompt, active
		FROM personas WHERE persona_id = $1`, personaID)
	return scanPersona(row, personaID)
}

// FindBySlug resolves a workspace persona by its mention slug.
func (s *Store) FindBySlug(ctx context.Context, workspaceID, slug string) (*models.Persona, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT persona_id, workspace_id, slug, name, system_prompt, active
		FROM personas WHERE workspace_id = $1 AND lower(slug) = lower($2)`, workspaceID, slug)
	return scanPersona(row, slug)
}

func scanPersona(row *stdsql.Row, key string) (*models.Persona, error) {
	var p models.Persona
	err := row.Scan(&p.ID, &p.WorkspaceID, &p.Slug, &p.Name, &p.SystemPrompt, &p.Active)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return nil, fmt.Errorf("persona %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load persona %s: %w", key, err)
	}
	return &p, nil
}
