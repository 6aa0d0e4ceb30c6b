package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/loomchat/companion/ent"
	"github.com/loomchat/companion/ent/agentsession"
	"github.com/loomchat/companion/pkg/config"
)

const orphanError = "orphaned (stale heartbeat)"

// Reaper fails running sessions whose heartbeat went stale, unblocking the
// single-running-per-stream invariant after a crash. Safe to run on every
// replica concurrently: the sweep is a conditional bulk update.
type Reaper struct {
	client   *ent.Client
	serverID string
	cfg      config.QueueConfig
	logger   *slog.Logger
}

// NewReaper creates the orphan reaper.
func NewReaper(client *ent.Client, serverID string, cfg config.QueueConfig, logger *slog.Logger) *Reaper {
	return &Reaper{
		client:   client,
		serverID: serverID,
		cfg:      cfg,
		logger:   logger.With("component", "reaper"),
	}
}

// Run sweeps periodically until ctx is cancelled.
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.OrphanSweepInterval)
	defer ticker.Stop()

	r.logger.Info("Orphan reaper started",
		"sweep_interval", r.cfg.OrphanSweepInterval,
		"stale_threshold", r.cfg.OrphanThreshold)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Orphan reaper stopped")
			return
		case <-ticker.C:
			if n, err := r.Sweep(ctx); err != nil {
				r.logger.Error("Orphan sweep failed", "error", err)
			} else if n > 0 {
				r.logger.Warn("Orphaned sessions failed", "count", n)
			}
		}
	}
}

// Sweep fails every running session whose heartbeat is older than the stale
// threshold and returns how many it transitioned.
func (r *Reaper) Sweep(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-r.cfg.OrphanThreshold)
	n, err := r.client.AgentSession.Update().
		Where(
			agentsession.StatusEQ(agentsession.StatusRunning),
			agentsession.Or(
				agentsession.HeartbeatAtLT(cutoff),
				agentsession.HeartbeatAtIsNil(),
			),
		).
		SetStatus(agentsession.StatusFailed).
		SetErrorMessage(orphanError).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep orphaned sessions: %w", err)
	}
	return n, nil
}

// SweepStartupOrphans fails sessions this server id left running before a
// restart. Called once at boot, before workers start, so the streams those
// sessions held are released immediately instead of after the stale
// threshold.
func (r *Reaper) SweepStartupOrphans(ctx context.Context) (int, error) {
	n, err := r.client.AgentSession.Update().
		Where(
			agentsession.StatusEQ(agentsession.StatusRunning),
			agentsession.ServerID(r.serverID),
		).
		SetStatus(agentsession.StatusFailed).
		SetErrorMessage("server restarted during session").
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep startup orphans: %w", err)
	}
	if n > 0 {
		r.logger.Warn("Failed sessions left over from previous run", "count", n)
	}
	return n, nil
}
