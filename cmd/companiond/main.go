// Companion agent runtime server. Hosts the outbox dispatchers, the
// persona-agent worker pool, and the HTTP/WebSocket observability surface.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/loomchat/companion/pkg/agent"
	"github.com/loomchat/companion/pkg/api"
	"github.com/loomchat/companion/pkg/chatstore"
	"github.com/loomchat/companion/pkg/config"
	"github.com/loomchat/companion/pkg/database"
	"github.com/loomchat/companion/pkg/events"
	"github.com/loomchat/companion/pkg/guard"
	"github.com/loomchat/companion/pkg/llm"
	"github.com/loomchat/companion/pkg/models"
	"github.com/loomchat/companion/pkg/outbox"
	"github.com/loomchat/companion/pkg/session"
	"github.com/loomchat/companion/pkg/summary"
	"github.com/loomchat/companion/pkg/trace"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolveServerID determines the replica identifier for multi-replica
// coordination. Priority: SERVER_ID env > HOSTNAME env > "local"
func resolveServerID() string {
	if id := os.Getenv("SERVER_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	serverID := resolveServerID()
	logger := slog.Default()

	slog.Info("Starting companiond",
		"http_port", httpPort,
		"server_id", serverID)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup, then the periodic reaper
	reaper := session.NewReaper(dbClient.Client, serverID, cfg.Queue, logger)
	if _, err := reaper.SweepStartupOrphans(ctx); err != nil {
		slog.Error("Failed to sweep startup orphans", "error", err)
		// Non-fatal, the periodic sweep retries
	}

	reaperCtx, stopReaper := context.WithCancel(ctx)
	defer stopReaper()
	go reaper.Run(reaperCtx)

	// 4. Chat collaborator stores (shared database)
	store := chatstore.New(dbClient.DB(), cfg.Agent.AttachmentWaitInterval)

	// 5. Session services and LLM client
	sessionService := session.NewService(dbClient.Client, logger)
	lifecycle := session.NewManager(dbClient.Client, serverID, cfg.Queue, logger)

	anthropicClient, err := llm.NewAnthropicClient(logger)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	llmClient := llm.NewRateLimitedClient(anthropicClient, cfg.LLM.RequestsPerSecond)
	slog.Info("LLM client initialized", "model", cfg.LLM.Model)

	// 6. Realtime fanout: publisher, connection manager, LISTEN connection
	eventService := events.NewService(dbClient.Client)
	publisher := events.NewPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(eventService, 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Realtime infrastructure initialized")

	// 7. Agent handler and worker pool. The pool dispatches jobs to the
	// handler, and the handler registers cancellable sessions with the pool,
	// so the pool is built over a late-bound handler reference.
	summaries := summary.NewService(dbClient.Client, llmClient, store, cfg.Summary, cfg.LLM.SummaryModel, logger)
	builder := agent.NewContextBuilder(store, store, summaries, cfg.Agent, logger)
	boundary := guard.NewBoundary(logger)
	registry := agent.DefaultRegistryFactory(store, store, cfg.Agent)

	queue := outbox.NewPostgresQueue(dbClient.Client, cfg.Queue.JobMaxAttempts, cfg.Queue.RetryBackoff)

	var handler *agent.Handler
	pool := outbox.NewWorkerPool(serverID, models.PersonaJobQueue, queue, cfg.Queue,
		func(ctx context.Context, job *outbox.Job) error {
			return handler.HandleJob(ctx, job)
		})
	handler = agent.NewHandler(lifecycle, sessionService, dbClient.Client,
		store, store, store, builder, llmClient, registry, boundary,
		publisher, pool, cfg.Agent, cfg.LLM, logger)
	handler.AttachObserver(trace.NewOTELObserver())

	pool.Start(ctx)
	slog.Info("Worker pool started", "workers", cfg.Queue.WorkerCount)

	// 8. Outbox dispatchers, one cursor-locked listener each
	entries := outbox.NewStore(dbClient.Client)
	companion := outbox.NewCompanionDispatcher(entries, store, store, sessionService,
		queue, cfg.Listener.BatchSize, logger)
	mention := outbox.NewMentionDispatcher(entries, store,
		queue, cfg.Listener.BatchSize, logger)

	companionListener := outbox.NewListener(dbClient.Client, cfg.Listener,
		outbox.CompanionListenerID, companion.Process, logger)
	mentionListener := outbox.NewListener(dbClient.Client, cfg.Listener,
		outbox.MentionListenerID, mention.Process, logger)

	listenerCtx, stopListeners := context.WithCancel(ctx)
	defer stopListeners()
	for _, l := range []*outbox.Listener{companionListener, mentionListener} {
		go func(l *outbox.Listener) {
			if err := l.Run(listenerCtx); err != nil && listenerCtx.Err() == nil {
				slog.Error("Outbox listener failed", "error", err)
			}
		}(l)
	}
	slog.Info("Outbox dispatchers started")

	// 9. HTTP server (non-blocking)
	httpServer := api.NewServer(dbClient, sessionService, pool, connManager, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("Companiond started successfully",
		"server_id", serverID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop intake first, then drain running sessions,
	// then tear down the realtime and HTTP surfaces.
	stopListeners()
	stopReaper()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete sessions will be orphan-recovered")
	}

	notifyListener.Stop(ctx)

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
