package session

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomchat/companion/ent"
	"github.com/loomchat/companion/ent/agentsession"
	"github.com/loomchat/companion/ent/outboxentry"
	"github.com/loomchat/companion/pkg/config"
	"github.com/loomchat/companion/pkg/models"
	testdb "github.com/loomchat/companion/test/database"
)

func testQueueConfig() config.QueueConfig {
	return config.QueueConfig{
		WorkerCount:         1,
		PollInterval:        50 * time.Millisecond,
		HeartbeatInterval:   50 * time.Millisecond,
		OrphanThreshold:     time.Second,
		OrphanSweepInterval: 100 * time.Millisecond,
		JobMaxAttempts:      3,
		RetryBackoff:        time.Second,
	}
}

func testJob() models.PersonaJob {
	return models.PersonaJob{
		WorkspaceID: "ws-1",
		StreamID:    "stream-" + uuid.NewString(),
		MessageID:   "msg-" + uuid.NewString(),
		PersonaID:   "persona-1",
		TriggeredBy: models.TriggerCompanion,
	}
}

func outboxKinds(t *testing.T, client *ent.Client) []string {
	t.Helper()
	rows, err := client.OutboxEntry.Query().
		Order(ent.Asc(outboxentry.FieldID)).
		All(context.Background())
	require.NoError(t, err)
	kinds := make([]string, 0, len(rows))
	for _, row := range rows {
		kinds = append(kinds, row.Kind)
	}
	return kinds
}

func TestWithCompanionSessionCompletes(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	mgr := NewManager(client.Client, "test-server", testQueueConfig(), slog.Default())

	job := testJob()
	outcome, err := mgr.WithCompanionSession(ctx, job, 5,
		func(ctx context.Context, sess *ent.AgentSession) (*Result, error) {
			assert.Equal(t, agentsession.StatusRunning, sess.Status)
			assert.Equal(t, int64(5), sess.LastSeenSequence)
			return &Result{
				LastSeenSequence:  9,
				ResponseMessageID: "msg-out",
				SentMessageIDs:    []string{"msg-out"},
			}, nil
		})
	require.NoError(t, err)
	require.False(t, outcome.Skipped)

	sess, err := client.AgentSession.Get(ctx, outcome.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusCompleted, sess.Status)
	assert.Equal(t, int64(9), sess.LastSeenSequence)
	require.NotNil(t, sess.ResponseMessageID)
	assert.Equal(t, "msg-out", *sess.ResponseMessageID)
	assert.Equal(t, []string{"msg-out"}, sess.SentMessageIds)
	assert.NotNil(t, sess.CompletedAt)

	assert.Equal(t,
		[]string{models.OutboxSessionStarted, models.OutboxSessionCompleted},
		outboxKinds(t, client.Client))
}

func TestWithCompanionSessionDuplicateTriggerSkipped(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	mgr := NewManager(client.Client, "test-server", testQueueConfig(), slog.Default())

	job := testJob()
	_, err := mgr.WithCompanionSession(ctx, job, 1,
		func(ctx context.Context, sess *ent.AgentSession) (*Result, error) {
			return &Result{LastSeenSequence: 1}, nil
		})
	require.NoError(t, err)

	// Redelivery of the same trigger must not run the work again.
	outcome, err := mgr.WithCompanionSession(ctx, job, 1,
		func(ctx context.Context, sess *ent.AgentSession) (*Result, error) {
			t.Fatal("work ran for a completed trigger")
			return nil, nil
		})
	require.NoError(t, err)
	assert.True(t, outcome.Skipped)
	assert.Equal(t, "already completed", outcome.Reason)
}

func TestWithCompanionSessionStreamExclusivity(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	mgr := NewManager(client.Client, "test-server", testQueueConfig(), slog.Default())

	job := testJob()
	_, err := client.AgentSession.Create().
		SetID(uuid.NewString()).
		SetWorkspaceID(job.WorkspaceID).
		SetStreamID(job.StreamID).
		SetPersonaID(job.PersonaID).
		SetTriggerMessageID("msg-other").
		SetStatus(agentsession.StatusRunning).
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	outcome, err := mgr.WithCompanionSession(ctx, job, 1,
		func(ctx context.Context, sess *ent.AgentSession) (*Result, error) {
			t.Fatal("work ran while another session held the stream")
			return nil, nil
		})
	require.NoError(t, err)
	assert.True(t, outcome.Skipped)
	assert.Equal(t, "agent already running for stream", outcome.Reason)
}

func TestWithCompanionSessionWorkFailure(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	mgr := NewManager(client.Client, "test-server", testQueueConfig(), slog.Default())

	outcome, err := mgr.WithCompanionSession(ctx, testJob(), 1,
		func(ctx context.Context, sess *ent.AgentSession) (*Result, error) {
			return nil, errors.New("model unavailable")
		})
	require.Error(t, err)

	sess, err := client.AgentSession.Get(ctx, outcome.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusFailed, sess.Status)
	require.NotNil(t, sess.ErrorMessage)
	assert.Equal(t, "model unavailable", *sess.ErrorMessage)

	assert.Equal(t,
		[]string{models.OutboxSessionStarted, models.OutboxSessionFailed},
		outboxKinds(t, client.Client))
}

func TestWithCompanionSessionSupersededDuringWork(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	mgr := NewManager(client.Client, "test-server", testQueueConfig(), slog.Default())
	svc := NewService(client.Client, slog.Default())

	outcome, err := mgr.WithCompanionSession(ctx, testJob(), 1,
		func(ctx context.Context, sess *ent.AgentSession) (*Result, error) {
			superseded, err := svc.Supersede(ctx, sess.ID)
			require.NoError(t, err)
			require.True(t, superseded)
			return &Result{LastSeenSequence: 2}, nil
		})
	require.NoError(t, err)
	assert.True(t, outcome.Skipped)
	assert.Equal(t, "session superseded or deleted during work", outcome.Reason)

	sess, err := client.AgentSession.Get(ctx, outcome.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusSuperseded, sess.Status)
}

func TestReaperSweepFailsStaleSessions(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	cfg := testQueueConfig()
	reaper := NewReaper(client.Client, "test-server", cfg, slog.Default())

	stale, err := client.AgentSession.Create().
		SetID(uuid.NewString()).
		SetWorkspaceID("ws-1").
		SetStreamID("stream-stale").
		SetPersonaID("persona-1").
		SetTriggerMessageID("msg-stale").
		SetStatus(agentsession.StatusRunning).
		SetHeartbeatAt(time.Now().Add(-2 * cfg.OrphanThreshold)).
		Save(ctx)
	require.NoError(t, err)

	fresh, err := client.AgentSession.Create().
		SetID(uuid.NewString()).
		SetWorkspaceID("ws-1").
		SetStreamID("stream-fresh").
		SetPersonaID("persona-1").
		SetTriggerMessageID("msg-fresh").
		SetStatus(agentsession.StatusRunning).
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	n, err := reaper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	staleRow, err := client.AgentSession.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusFailed, staleRow.Status)

	freshRow, err := client.AgentSession.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusRunning, freshRow.Status)
}

func TestReaperSweepStartupOrphans(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	reaper := NewReaper(client.Client, "server-a", testQueueConfig(), slog.Default())

	mine, err := client.AgentSession.Create().
		SetID(uuid.NewString()).
		SetWorkspaceID("ws-1").
		SetStreamID("stream-a").
		SetPersonaID("persona-1").
		SetTriggerMessageID("msg-a").
		SetStatus(agentsession.StatusRunning).
		SetServerID("server-a").
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	theirs, err := client.AgentSession.Create().
		SetID(uuid.NewString()).
		SetWorkspaceID("ws-1").
		SetStreamID("stream-b").
		SetPersonaID("persona-1").
		SetTriggerMessageID("msg-b").
		SetStatus(agentsession.StatusRunning).
		SetServerID("server-b").
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	n, err := reaper.SweepStartupOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	mineRow, err := client.AgentSession.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusFailed, mineRow.Status)

	theirsRow, err := client.AgentSession.Get(ctx, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusRunning, theirsRow.Status)
}
