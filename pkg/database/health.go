package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
)

// HealthStatus is a snapshot of the connection pool.
type HealthStatus struct {
	Connected    bool  `json:"connected"`
	OpenConns    int   `json:"openConnections"`
	InUse        int   `json:"inUse"`
	Idle         int   `json:"idle"`
	MaxOpenConns int   `json:"maxOpenConnections"`
	WaitCount    int64 `json:"waitCount"`
}

// Health pings the database and reports pool statistics.
func Health(ctx context.Context, db *stdsql.DB) (*HealthStatus, error) {
	stats := db.Stats()
	status := &HealthStatus{
		OpenConns:    stats.OpenConnections,
		InUse:        stats.InUse,
		Idle:         stats.Idle,
		MaxOpenConns: stats.MaxOpenConnections,
		WaitCount:    stats.WaitCount,
	}
	if err := db.PingContext(ctx); err != nil {
		return status, fmt.Errorf("database ping failed: %w", err)
	}
	status.Connected = true
	return status, nil
}
