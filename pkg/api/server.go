// Package api is the HTTP surface: health, session inspection and control,
// and the realtime WebSocket endpoint.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loomchat/companion/pkg/database"
	"github.com/loomchat/companion/pkg/events"
	"github.com/loomchat/companion/pkg/outbox"
	"github.com/loomchat/companion/pkg/session"
)

// Server hosts the HTTP API.
type Server struct {
	db          *database.Client
	sessions    *session.Service
	pool        *outbox.WorkerPool
	connManager *events.ConnectionManager
	logger      *slog.Logger

	httpServer *http.Server
}

// NewServer creates the API server.
func NewServer(db *database.Client, sessions *session.Service, pool *outbox.WorkerPool, connManager *events.ConnectionManager, logger *slog.Logger) *Server {
	return &Server{
		db:          db,
		sessions:    sessions,
		pool:        pool,
		connManager: connManager,
		logger:      logger.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.healthHandler)
	r.GET("/ws", s.wsHandler)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/streams/:streamId/sessions", s.listSessionsHandler)
		v1.GET("/sessions/:sessionId", s.getSessionHandler)
		v1.POST("/sessions/:sessionId/cancel", s.cancelSessionHandler)
	}
	return r
}

// Start runs the HTTP server until the listener fails.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("API server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
