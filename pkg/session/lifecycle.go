package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/loomchat/companion/ent"
	"github.com/loomchat/companion/ent/agentsession"
	"github.com/loomchat/companion/pkg/config"
	"github.com/loomchat/companion/pkg/models"
	"github.com/loomchat/companion/pkg/outbox"
)

// Result is what a successful work function reports back for Phase 3.
type Result struct {
	LastSeenSequence  int64
	ResponseMessageID string
	SentMessageIDs    []string
}

// Outcome is the lifecycle verdict for one job. Skipped outcomes are
// non-errors: the trigger was already handled, or another session holds the
// stream.
type Outcome struct {
	Skipped bool
	Reason  string
	Session *ent.AgentSession
}

// WorkFunc runs Phase 2. It must not hold database transactions across LLM
// calls; the manager supplies heartbeats out of band.
type WorkFunc func(ctx context.Context, sess *ent.AgentSession) (*Result, error)

// Manager drives the three-phase session lifecycle: claim in one
// transaction, work with a heartbeat and no held connection, then complete
// or fail in a second transaction.
type Manager struct {
	client   *ent.Client
	serverID string
	cfg      config.QueueConfig
	logger   *slog.Logger
}

// NewManager creates the lifecycle manager. serverID identifies this replica
// in session rows for startup orphan sweeps.
func NewManager(client *ent.Client, serverID string, cfg config.QueueConfig, logger *slog.Logger) *Manager {
	return &Manager{
		client:   client,
		serverID: serverID,
		cfg:      cfg,
		logger:   logger.With("component", "lifecycle"),
	}
}

// WithCompanionSession claims a session for the job's trigger message, runs
// work under a heartbeat, and finalizes. Exclusivity conflicts come back as
// skipped outcomes, never errors.
func (m *Manager) WithCompanionSession(ctx context.Context, job models.PersonaJob, initialSequence int64, work WorkFunc) (Outcome, error) {
	sess, outcome, err := m.acquire(ctx, job, initialSequence)
	if err != nil || outcome.Skipped {
		return outcome, err
	}

	log := m.logger.With("session_id", sess.ID, "stream_id", sess.StreamID)
	log.Info("Session acquired", "trigger_message_id", sess.TriggerMessageID)

	heartbeatCtx, stopHeartbeat := context.WithCancel(ctx)
	go m.runHeartbeat(heartbeatCtx, sess.ID)

	result, workErr := m.runWork(ctx, sess, work)
	stopHeartbeat()

	if workErr != nil {
		if failErr := m.fail(sess, workErr); failErr != nil {
			log.Error("Failed to record session failure", "error", failErr)
		}
		return Outcome{Session: sess}, workErr
	}

	return m.complete(ctx, sess, result)
}

// runWork invokes the work function, containing panics so Phase 3 always
// runs.
func (m *Manager) runWork(ctx context.Context, sess *ent.AgentSession, work WorkFunc) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("session work panicked: %v", r)
		}
	}()
	return work(ctx, sess)
}

// acquire is Phase 1: resolve or create the session row in one transaction
// and append the session_started outbox entry.
func (m *Manager) acquire(ctx context.Context, job models.PersonaJob, initialSequence int64) (*ent.AgentSession, Outcome, error) {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return nil, Outcome{}, fmt.Errorf("failed to start acquire transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sess, outcome, err := m.resolveSession(ctx, tx, job, initialSequence)
	if err != nil || outcome.Skipped {
		return nil, outcome, err
	}

	if err := outbox.InsertTx(ctx, tx, models.OutboxSessionStarted, models.SessionStatusPayload{
		SessionID: sess.ID,
		StreamID:  sess.StreamID,
		PersonaID: sess.PersonaID,
		Status:    string(agentsession.StatusRunning),
	}); err != nil {
		return nil, Outcome{}, err
	}

	if err := tx.Commit(); err != nil {
		if ent.IsConstraintError(err) {
			// Lost the partial-unique-index race at commit time.
			return nil, Outcome{Skipped: true, Reason: "agent already running for stream"}, nil
		}
		return nil, Outcome{}, fmt.Errorf("failed to commit session acquire: %w", err)
	}
	return sess, Outcome{Session: sess}, nil
}

func (m *Manager) resolveSession(ctx context.Context, tx *ent.Tx, job models.PersonaJob, initialSequence int64) (*ent.AgentSession, Outcome, error) {
	existing, err := tx.AgentSession.Query().
		Where(agentsession.TriggerMessageID(job.MessageID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, Outcome{}, fmt.Errorf("failed to look up session by trigger: %w", err)
	}

	now := time.Now()
	if existing != nil {
		switch existing.Status {
		case agentsession.StatusCompleted:
			return nil, Outcome{Skipped: true, Reason: "already completed", Session: existing}, nil
		case agentsession.StatusSuperseded, agentsession.StatusDeleted:
			return nil, Outcome{Skipped: true, Reason: "session was " + string(existing.Status), Session: existing}, nil
		}
		// pending, failed, or running with a stale heartbeat: resume as a
		// fresh running claim. The partial unique index rejects the update
		// if another session is running for the stream.
		sess, err := existing.Update().
			SetStatus(agentsession.StatusRunning).
			SetServerID(m.serverID).
			SetHeartbeatAt(now).
			ClearErrorMessage().
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, Outcome{Skipped: true, Reason: "agent already running for stream"}, nil
			}
			return nil, Outcome{}, fmt.Errorf("failed to resume session %s: %w", existing.ID, err)
		}
		return sess, Outcome{Session: sess}, nil
	}

	sess, err := tx.AgentSession.Create().
		SetID(uuid.NewString()).
		SetWorkspaceID(job.WorkspaceID).
		SetStreamID(job.StreamID).
		SetPersonaID(job.PersonaID).
		SetTriggerMessageID(job.MessageID).
		SetStatus(agentsession.StatusRunning).
		SetServerID(m.serverID).
		SetHeartbeatAt(now).
		SetLastSeenSequence(initialSequence).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Either another running session holds the stream or a
			// concurrent worker inserted the same trigger first.
			return nil, Outcome{Skipped: true, Reason: "agent already running for stream"}, nil
		}
		return nil, Outcome{}, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, Outcome{Session: sess}, nil
}

// runHeartbeat writes heartbeat_at on a fixed cadence so the orphan reaper
// can distinguish live sessions from crashed ones. Each tick uses one short
// connection.
func (m *Manager) runHeartbeat(ctx context.Context, sessionID string) {
	ticker := time.NewTicker(m.cfg.HeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.client.AgentSession.UpdateOneID(sessionID).
				SetHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				m.logger.Warn("Heartbeat update failed", "session_id", sessionID, "error", err)
			}
		}
	}
}

// complete is Phase 3: finalize the session and append the completion outbox
// entry. A completion update matching no row means the session was
// superseded or deleted mid-flight; the whole run downgrades to skipped.
func (m *Manager) complete(ctx context.Context, sess *ent.AgentSession, result *Result) (Outcome, error) {
	if result == nil {
		result = &Result{LastSeenSequence: sess.LastSeenSequence}
	}

	tx, err := m.client.Tx(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to start completion transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	update := tx.AgentSession.Update().
		Where(
			agentsession.ID(sess.ID),
			agentsession.StatusEQ(agentsession.StatusRunning),
		).
		SetStatus(agentsession.StatusCompleted).
		SetCompletedAt(time.Now())
	if result.LastSeenSequence > sess.LastSeenSequence {
		update = update.SetLastSeenSequence(result.LastSeenSequence)
	}
	if result.ResponseMessageID != "" {
		update = update.SetResponseMessageID(result.ResponseMessageID)
	}
	if len(result.SentMessageIDs) > 0 {
		update = update.SetSentMessageIds(result.SentMessageIDs)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to complete session %s: %w", sess.ID, err)
	}
	if n == 0 {
		m.logger.Info("Session no longer running at completion, skipping",
			"session_id", sess.ID)
		return Outcome{Skipped: true, Reason: "session superseded or deleted during work", Session: sess}, nil
	}

	if err := outbox.InsertTx(ctx, tx, models.OutboxSessionCompleted, models.SessionStatusPayload{
		SessionID: sess.ID,
		StreamID:  sess.StreamID,
		PersonaID: sess.PersonaID,
		Status:    string(agentsession.StatusCompleted),
	}); err != nil {
		return Outcome{}, err
	}

	if err := tx.Commit(); err != nil {
		return Outcome{}, fmt.Errorf("failed to commit session completion: %w", err)
	}

	m.logger.Info("Session completed",
		"session_id", sess.ID,
		"last_seen_sequence", result.LastSeenSequence,
		"messages_sent", len(result.SentMessageIDs))
	return Outcome{Session: sess}, nil
}

// fail mirrors complete for the error path. It runs on a background context
// so cancellation of the work context cannot strand the session in running.
func (m *Manager) fail(sess *ent.AgentSession, workErr error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := m.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start failure transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.AgentSession.Update().
		Where(
			agentsession.ID(sess.ID),
			agentsession.StatusEQ(agentsession.StatusRunning),
		).
		SetStatus(agentsession.StatusFailed).
		SetErrorMessage(workErr.Error()).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark session %s failed: %w", sess.ID, err)
	}
	if n == 0 {
		// Superseded or deleted while failing; nothing further to record.
		return tx.Commit()
	}

	if err := outbox.InsertTx(ctx, tx, models.OutboxSessionFailed, models.SessionStatusPayload{
		SessionID: sess.ID,
		StreamID:  sess.StreamID,
		PersonaID: sess.PersonaID,
		Status:    string(agentsession.StatusFailed),
	}); err != nil {
		return err
	}

	return tx.Commit()
}
