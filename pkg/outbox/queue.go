package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/loomchat/companion/ent"
	"github.com/loomchat/companion/ent/job"
)

// ErrNoJobs is returned by Claim when no runnable job exists.
var ErrNoJobs = errors.New("no jobs available")

// Job is a claimed queue job.
type Job struct {
	ID       int64
	Queue    string
	Payload  map[string]interface{}
	Attempts int
}

// DecodePayload unmarshals the job payload into a typed value.
func (j *Job) DecodePayload(out any) error {
	raw, err := json.Marshal(j.Payload)
	if err != nil {
		return fmt.Errorf("failed to re-encode job payload: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode job payload for job %d: %w", j.ID, err)
	}
	return nil
}

// Queue is the FIFO-per-named-queue contract with at-least-once delivery.
// Handlers must be idempotent; the session layer's unique-per-trigger
// insert provides the actual exactly-once effect.
type Queue interface {
	Send(ctx context.Context, queue string, payload any) error
}

// PostgresQueue is the durable queue implementation. Workers claim the
// oldest runnable pending job with FOR UPDATE SKIP LOCKED so concurrent
// claims never block or double-deliver.
type PostgresQueue struct {
	client       *ent.Client
	maxAttempts  int
	retryBackoff time.Duration
}

// NewPostgresQueue creates the queue over the shared ent client.
func NewPostgresQueue(client *ent.Client, maxAttempts int, retryBackoff time.Duration) *PostgresQueue {
	return &PostgresQueue{
		client:       client,
		maxAttempts:  maxAttempts,
		retryBackoff: retryBackoff,
	}
}

// Send enqueues a job.
func (q *PostgresQueue) Send(ctx context.Context, queue string, payload any) error {
	raw, err := toJSONMap(payload)
	if err != nil {
		return fmt.Errorf("failed to encode job payload: %w", err)
	}
	if err := q.client.Job.Create().
		SetQueue(queue).
		SetPayload(raw).
		SetMaxAttempts(q.maxAttempts).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to enqueue job on %s: %w", queue, err)
	}
	return nil
}

// Claim atomically claims the oldest runnable pending job on the queue.
func (q *PostgresQueue) Claim(ctx context.Context, queue string) (*Job, error) {
	tx, err := q.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.Job.Query().
		Where(
			job.QueueEQ(queue),
			job.StatusEQ(job.StatusPending),
			job.RunAtLTE(time.Now()),
		).
		Order(ent.Asc(job.FieldID)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobs
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	row, err = row.Update().
		SetStatus(job.StatusRunning).
		SetAttempts(row.Attempts + 1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job %d: %w", row.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return &Job{ID: row.ID, Queue: row.Queue, Payload: row.Payload, Attempts: row.Attempts}, nil
}

// Complete marks a job done.
func (q *PostgresQueue) Complete(ctx context.Context, jobID int64) error {
	if err := q.client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusCompleted).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to complete job %d: %w", jobID, err)
	}
	return nil
}

// Fail records a handler failure. Jobs with attempts left go back to pending
// with a linear backoff on run_at; exhausted jobs are marked failed.
func (q *PostgresQueue) Fail(ctx context.Context, j *Job, handlerErr error) error {
	update := q.client.Job.UpdateOneID(j.ID).
		SetLastError(handlerErr.Error())
	if j.Attempts >= q.maxAttempts {
		update = update.SetStatus(job.StatusFailed)
	} else {
		update = update.
			SetStatus(job.StatusPending).
			SetRunAt(time.Now().Add(q.retryBackoff * time.Duration(j.Attempts)))
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record job failure for %d: %w", j.ID, err)
	}
	return nil
}
