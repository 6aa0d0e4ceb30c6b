package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loomchat/companion/pkg/database"
	"github.com/loomchat/companion/pkg/outbox"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Database    *database.HealthStatus `json:"database"`
	Workers     []outbox.WorkerHealth  `json:"workers,omitempty"`
	Connections int                    `json:"websocketConnections"`
}

// healthHandler reports database and worker pool health. Only this process's
// own components are checked; external collaborators are excluded so an
// upstream outage cannot trigger restarts here.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := HealthResponse{Status: healthStatusHealthy}
	dbHealth, err := database.Health(ctx, s.db.DB())
	resp.Database = dbHealth
	if err != nil {
		resp.Status = healthStatusUnhealthy
	}

	if s.pool != nil {
		resp.Workers = s.pool.Health()
	}
	if s.connManager != nil {
		resp.Connections = s.connManager.ActiveConnections()
	}

	code := http.StatusOK
	if resp.Status == healthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}
