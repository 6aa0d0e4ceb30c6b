package outbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/loomchat/companion/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is a snapshot of one worker for introspection endpoints.
type WorkerHealth struct {
	ID            string       `json:"id"`
	Status        WorkerStatus `json:"status"`
	CurrentJobID  int64        `json:"currentJobId,omitempty"`
	JobsProcessed int          `json:"jobsProcessed"`
	LastActivity  time.Time    `json:"lastActivity"`
}

// HandlerFunc processes one claimed job. A returned error triggers the
// queue's retry policy.
type HandlerFunc func(ctx context.Context, job *Job) error

// Worker polls one named queue and processes jobs one at a time.
type Worker struct {
	id       string
	queue    string
	q        *PostgresQueue
	cfg      config.QueueConfig
	handler  HandlerFunc
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  int64
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a queue worker.
func NewWorker(id, queue string, q *PostgresQueue, cfg config.QueueConfig, handler HandlerFunc) *Worker {
	return &Worker{
		id:           id,
		queue:        queue,
		q:            q,
		cfg:          cfg,
		handler:      handler,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the in-flight job to finish.
// Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        w.status,
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "queue", w.queue)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobs) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollInterval adds jitter so workers on the same queue spread their polls.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.PollInterval
	jitter := time.Duration(rand.Int64N(int64(base) / 2))
	return base + jitter - base/4
}

func (w *Worker) pollAndProcess(ctx context.Context) error {
	job, err := w.q.Claim(ctx, w.queue)
	if err != nil {
		return err
	}

	log := slog.With("worker_id", w.id, "job_id", job.ID, "attempt", job.Attempts)
	log.Info("Job claimed")

	w.setStatus(WorkerStatusWorking, job.ID)
	defer w.setStatus(WorkerStatusIdle, 0)

	jobCtx, cancel := context.WithTimeout(ctx, w.cfg.SessionTimeout)
	defer cancel()

	if handlerErr := w.handler(jobCtx, job); handlerErr != nil {
		log.Error("Job handler failed", "error", handlerErr)
		// Terminal status writes use a background context so shutdown does
		// not strand a claimed job in running state.
		failCtx, failCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer failCancel()
		if err := w.q.Fail(failCtx, job, handlerErr); err != nil {
			return err
		}
		return nil
	}

	doneCtx, doneCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer doneCancel()
	if err := w.q.Complete(doneCtx, job.ID); err != nil {
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job complete")
	return nil
}

func (w *Worker) setStatus(status WorkerStatus, jobID int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}

// WorkerPool manages the queue workers for one named queue and tracks
// running sessions so they can be cancelled from the API.
type WorkerPool struct {
	serverID string
	queue    string
	q        *PostgresQueue
	cfg      config.QueueConfig
	handler  HandlerFunc
	workers  []*Worker
	started  bool

	mu             sync.RWMutex
	activeSessions map[string]context.CancelFunc
}

// NewWorkerPool creates a pool; Start spawns the workers.
func NewWorkerPool(serverID, queue string, q *PostgresQueue, cfg config.QueueConfig, handler HandlerFunc) *WorkerPool {
	return &WorkerPool{
		serverID:       serverID,
		queue:          queue,
		q:              q,
		cfg:            cfg,
		handler:        handler,
		workers:        make([]*Worker, 0, cfg.WorkerCount),
		activeSessions: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines. Subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "server_id", p.serverID)
		return
	}
	p.started = true

	slog.Info("Starting worker pool",
		"server_id", p.serverID, "queue", p.queue, "worker_count", p.cfg.WorkerCount)
	for i := 0; i < p.cfg.WorkerCount; i++ {
		w := NewWorker(fmt.Sprintf("%s-worker-%d", p.serverID, i), p.queue, p.q, p.cfg, p.handler)
		p.workers = append(p.workers, w)
		w.Start(ctx)
	}
}

// Stop signals all workers and waits; workers finish their current job.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")
	if active := p.activeSessionIDs(); len(active) > 0 {
		slog.Info("Waiting for active sessions to complete",
			"count", len(active), "session_ids", active)
	}
	for _, w := range p.workers {
		w.Stop()
	}
	slog.Info("Worker pool stopped")
}

// Health returns snapshots for every worker.
func (p *WorkerPool) Health() []WorkerHealth {
	health := make([]WorkerHealth, 0, len(p.workers))
	for _, w := range p.workers {
		health = append(health, w.Health())
	}
	return health
}

// RegisterSession stores a cancel function for external cancellation.
func (p *WorkerPool) RegisterSession(sessionID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeSessions[sessionID] = cancel
}

// UnregisterSession removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterSession(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeSessions, sessionID)
}

// CancelSession cancels a running session on this server. Returns false when
// the session is not running here (another replica may own it).
func (p *WorkerPool) CancelSession(sessionID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeSessions[sessionID]; ok {
		cancel()
		return true
	}
	return false
}

func (p *WorkerPool) activeSessionIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeSessions))
	for id := range p.activeSessions {
		ids = append(ids, id)
	}
	return ids
}
