// Package session implements the agent session lifecycle: the three-phase
// claim/work/complete manager with heartbeats, the ent-backed session and
// step services, and the orphan reaper that recovers crashed runs.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/loomchat/companion/ent"
	"github.com/loomchat/companion/ent/agentsession"
	"github.com/loomchat/companion/ent/agentstep"
	"github.com/loomchat/companion/pkg/trace"
)

// Service is the ent-backed query/update surface for agent sessions. It also
// serves as the dispatchers' SessionReader.
type Service struct {
	client *ent.Client
	logger *slog.Logger
}

// NewService creates the session service.
func NewService(client *ent.Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger.With("component", "session_service")}
}

// Get returns a session by id.
func (s *Service) Get(ctx context.Context, sessionID string) (*ent.AgentSession, error) {
	sess, err := s.client.AgentSession.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	return sess, nil
}

// HasActiveSession reports whether a running or pending session exists for
// the stream.
func (s *Service) HasActiveSession(ctx context.Context, streamID string) (bool, error) {
	exists, err := s.client.AgentSession.Query().
		Where(
			agentsession.StreamID(streamID),
			agentsession.StatusIn(agentsession.StatusRunning, agentsession.StatusPending),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check active sessions for stream %s: %w", streamID, err)
	}
	return exists, nil
}

// LastAbsorbedSequence returns the highest lastSeenSequence among completed
// sessions for the stream/persona pair, or 0 when none exist.
func (s *Service) LastAbsorbedSequence(ctx context.Context, streamID, personaID string) (int64, error) {
	latest, err := s.client.AgentSession.Query().
		Where(
			agentsession.StreamID(streamID),
			agentsession.PersonaID(personaID),
			agentsession.StatusEQ(agentsession.StatusCompleted),
		).
		Order(ent.Desc(agentsession.FieldLastSeenSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query absorbed sequence for stream %s: %w", streamID, err)
	}
	return latest.LastSeenSequence, nil
}

// ListByStream returns sessions for a stream, newest first.
func (s *Service) ListByStream(ctx context.Context, streamID string, limit int) ([]*ent.AgentSession, error) {
	sessions, err := s.client.AgentSession.Query().
		Where(agentsession.StreamID(streamID)).
		Order(ent.Desc(agentsession.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for stream %s: %w", streamID, err)
	}
	return sessions, nil
}

// Supersede transitions a running session to superseded. The in-flight run
// notices on its next abort check or when its completion update matches no
// row. Returns false when the session was not running.
func (s *Service) Supersede(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.AgentSession.Update().
		Where(
			agentsession.ID(sessionID),
			agentsession.StatusEQ(agentsession.StatusRunning),
		).
		SetStatus(agentsession.StatusSuperseded).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to supersede session %s: %w", sessionID, err)
	}
	return n > 0, nil
}

// MarkDeleted transitions a running session to deleted.
func (s *Service) MarkDeleted(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.AgentSession.Update().
		Where(
			agentsession.ID(sessionID),
			agentsession.StatusEQ(agentsession.StatusRunning),
		).
		SetStatus(agentsession.StatusDeleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return n > 0, nil
}

// IsActive reports whether the session is still running. The agent loop's
// abort check polls this.
func (s *Service) IsActive(ctx context.Context, sessionID string) (bool, error) {
	sess, err := s.client.AgentSession.Get(ctx, sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to check session %s: %w", sessionID, err)
	}
	return sess.Status == agentsession.StatusRunning, nil
}

// StepRecorder persists agent steps with strictly increasing step numbers.
// One recorder serves one session and is used from a single goroutine.
type StepRecorder struct {
	client     *ent.Client
	sessionID  string
	nextNumber int
}

// NewStepRecorder creates a recorder starting at step 1.
func NewStepRecorder(client *ent.Client, sessionID string) *StepRecorder {
	return &StepRecorder{client: client, sessionID: sessionID, nextNumber: 1}
}

// Record inserts a completed step and returns its id. Every step is written
// after the fact in one insert, so completed_at is the insert time and there
// is no started/running row to reconcile on crash. The input shape is the
// trace package's so the recorder plugs directly into its observers.
func (r *StepRecorder) Record(ctx context.Context, in trace.StepInput) (string, error) {
	id := uuid.NewString()
	create := r.client.AgentStep.Create().
		SetID(id).
		SetSessionID(r.sessionID).
		SetStepNumber(r.nextNumber).
		SetStepType(in.StepType).
		SetCompletedAt(time.Now())
	if in.Content != "" {
		create = create.SetContent(in.Content)
	}
	if len(in.Sources) > 0 {
		create = create.SetSources(in.Sources)
	}
	if in.MessageID != "" {
		create = create.SetMessageID(in.MessageID)
	}
	if len(in.Metadata) > 0 {
		create = create.SetMetadata(in.Metadata)
	}
	if err := create.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to record step %d for session %s: %w", r.nextNumber, r.sessionID, err)
	}
	r.nextNumber++
	return id, nil
}

// ListSteps returns a session's steps in step order.
func (s *Service) ListSteps(ctx context.Context, sessionID string) ([]*ent.AgentStep, error) {
	steps, err := s.client.AgentStep.Query().
		Where(agentstep.SessionID(sessionID)).
		Order(ent.Asc(agentstep.FieldStepNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps for session %s: %w", sessionID, err)
	}
	return steps, nil
}
