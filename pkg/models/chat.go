package models

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound reports a row that does not exist in the chat collaborator.
// Store implementations wrap it so callers can tell missing data apart from
// transient failures; dispatchers skip on it instead of retrying forever.
var ErrNotFound = errors.New("not found")

// AuthorType distinguishes human members from personas in a stream.
type AuthorType string

const (
	AuthorHuman   AuthorType = "human"
	AuthorPersona AuthorType = "persona"
)

// StreamType selects the prompt framing for a conversation surface.
type StreamType string

const (
	StreamScratchpad StreamType = "scratchpad"
	StreamChannel    StreamType = "channel"
	StreamThread     StreamType = "thread"
	StreamDM         StreamType = "dm"
)

// Stream is the chat surface a session runs in.
type Stream struct {
	ID              string
	WorkspaceID     string
	Type            StreamType
	Name            string
	ParentChannelID string
	CompanionMode   bool
	PersonaID       string
}

// Message is a committed chat message as stored by the chat collaborator.
type Message struct {
	ID         string
	StreamID   string
	AuthorID   string
	AuthorName string
	AuthorType AuthorType
	Sequence   int64
	Content    string
	CreatedAt  time.Time
}

// Persona is a workspace AI identity that can respond in streams.
type Persona struct {
	ID           string
	WorkspaceID  string
	Slug         string
	Name         string
	SystemPrompt string
	Active       bool
}

// AttachmentState is the extraction pipeline state of an attachment.
type AttachmentState string

const (
	AttachmentPending     AttachmentState = "pending"
	AttachmentReady       AttachmentState = "ready"
	AttachmentFailed      AttachmentState = "failed"
	AttachmentUnsupported AttachmentState = "unsupported"
)

// Terminal reports whether extraction has finished, successfully or not.
func (s AttachmentState) Terminal() bool {
	return s == AttachmentReady || s == AttachmentFailed || s == AttachmentUnsupported
}

// Attachment describes an uploaded file bound to a message. ExtractedText is
// populated for ready text-bearing attachments; blobs load on demand.
type Attachment struct {
	ID            string
	MessageID     string
	Filename      string
	MimeType      string
	SizeBytes     int64
	State         AttachmentState
	Caption       string
	ExtractedText string
}

// Source is a citation accumulated from tool results.
type Source struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// CreateMessageRequest commits an agent (or system) message to a stream.
type CreateMessageRequest struct {
	WorkspaceID string
	StreamID    string
	AuthorID    string
	AuthorType  AuthorType
	Content     string
	Sources     []Source
	SessionID   string
}

// CreateMessageResult reports the commit outcome. Operation is "edited" when
// the collaborator coalesced the commit into an existing message.
type CreateMessageResult struct {
	ID        string
	Operation string // "created" | "edited"
}

// ListOptions bounds a backward history listing.
type ListOptions struct {
	Limit     int
	BeforeSeq int64
}

// SinceOptions filters a forward listing.
type SinceOptions struct {
	ExcludeAuthor string
}

// StreamStore is the stream-side contract of the chat collaborator.
type StreamStore interface {
	// GetStream loads one stream. A missing stream is an error wrapping
	// ErrNotFound, never a nil stream with a nil error.
	GetStream(ctx context.Context, streamID string) (*Stream, error)
	IsHumanMember(ctx context.Context, streamID, userID string) (bool, error)
}

// MessageStore is the message-side contract of the chat collaborator.
type MessageStore interface {
	List(ctx context.Context, streamID string, opts ListOptions) ([]Message, error)
	ListSince(ctx context.Context, streamID string, sinceSeq int64, opts SinceOptions) ([]Message, error)
	ListBySequenceRange(ctx context.Context, streamID string, fromSeq, toSeq int64, limit int) ([]Message, error)
	FindByID(ctx context.Context, messageID string) (*Message, error)
	FindByIDs(ctx context.Context, messageIDs []string) ([]Message, error)
	CreateMessage(ctx context.Context, req CreateMessageRequest) (*CreateMessageResult, error)
	Search(ctx context.Context, workspaceID, query string, limit int) ([]Message, error)
}

// AttachmentStore is the attachment-side contract of the chat collaborator.
type AttachmentStore interface {
	FindByMessageID(ctx context.Context, messageID string) ([]Attachment, error)
	FindByMessageIDs(ctx context.Context, messageIDs []string) ([]Attachment, error)
	// AwaitProcessing blocks until every listed attachment reaches a
	// terminal extraction state or the context is cancelled.
	AwaitProcessing(ctx context.Context, attachmentIDs []string) error
	LoadBlob(ctx context.Context, attachmentID string) (data []byte, mimeType string, err error)
}

// PersonaStore resolves workspace personas. Missing personas are errors
// wrapping ErrNotFound, never a nil persona with a nil error; slugs that
// match no persona (any "@word" in message text) are the common case, not
// an outage.
type PersonaStore interface {
	GetPersona(ctx context.Context, personaID string) (*Persona, error)
	FindBySlug(ctx context.Context, workspaceID, slug string) (*Persona, error)
}
