// Package config loads runtime configuration from the environment.
// Every knob has a production default; integrators override via env vars
// (loaded from .env by cmd/companiond).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the top-level runtime configuration.
type Config struct {
	Agent    AgentConfig
	Listener ListenerConfig
	Queue    QueueConfig
	Summary  SummaryConfig
	LLM      LLMConfig
}

// AgentConfig bounds the agent loop and message truncation.
type AgentConfig struct {
	MaxIterations          int
	MaxSingleMessageChars  int
	MaxMessageChars        int
	HistoryWindow          int // messages loaded into the active window
	ToolTimeout            time.Duration
	AllowNoMessageOutput   bool
	FetchMaxRedirects      int
	FetchMaxBodyBytes      int64
	AttachmentWaitInterval time.Duration
}

// ListenerConfig tunes the cursor-locked outbox listeners.
type ListenerConfig struct {
	LockDuration    time.Duration
	RefreshInterval time.Duration
	MaxRetries      int
	BaseBackoff     time.Duration
	Debounce        time.Duration
	MaxWait         time.Duration
	PollInterval    time.Duration
	BatchSize       int
}

// QueueConfig tunes job workers, heartbeats, and orphan recovery.
type QueueConfig struct {
	WorkerCount             int
	PollInterval            time.Duration
	HeartbeatInterval       time.Duration
	OrphanThreshold         time.Duration
	OrphanSweepInterval     time.Duration
	JobMaxAttempts          int
	RetryBackoff            time.Duration
	SessionTimeout          time.Duration
	GracefulShutdownTimeout time.Duration
}

// SummaryConfig bounds the rolling summary service.
type SummaryConfig struct {
	BatchSize  int
	MaxBatches int
	MaxChars   int
}

// LLMConfig selects provider models and pacing.
type LLMConfig struct {
	Model             string
	SummaryModel      string
	Temperature       float64
	MaxTokens         int
	RequestsPerSecond float64
}

// Load reads configuration from the environment, falling back to defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Agent: AgentConfig{
			MaxIterations:          envInt("AGENT_MAX_ITERATIONS", 20),
			MaxSingleMessageChars:  envInt("AGENT_MAX_SINGLE_MESSAGE_CHARS", 50_000),
			MaxMessageChars:        envInt("AGENT_MAX_MESSAGE_CHARS", 400_000),
			HistoryWindow:          envInt("AGENT_HISTORY_WINDOW", 60),
			ToolTimeout:            envDuration("AGENT_TOOL_TIMEOUT", 60*time.Second),
			AllowNoMessageOutput:   envBool("AGENT_ALLOW_NO_MESSAGE_OUTPUT", false),
			FetchMaxRedirects:      envInt("AGENT_FETCH_MAX_REDIRECTS", 3),
			FetchMaxBodyBytes:      int64(envInt("AGENT_FETCH_MAX_BODY_BYTES", 2_000_000)),
			AttachmentWaitInterval: envDuration("AGENT_ATTACHMENT_WAIT_INTERVAL", 500*time.Millisecond),
		},
		Listener: ListenerConfig{
			LockDuration:    envDuration("LISTENER_LOCK_DURATION", 30*time.Second),
			RefreshInterval: envDuration("LISTENER_REFRESH_INTERVAL", 10*time.Second),
			MaxRetries:      envInt("LISTENER_MAX_RETRIES", 5),
			BaseBackoff:     envDuration("LISTENER_BASE_BACKOFF", 200*time.Millisecond),
			Debounce:        envDuration("LISTENER_DEBOUNCE", 250*time.Millisecond),
			MaxWait:         envDuration("LISTENER_MAX_WAIT", 2*time.Second),
			PollInterval:    envDuration("LISTENER_POLL_INTERVAL", 5*time.Second),
			BatchSize:       envInt("LISTENER_BATCH_SIZE", 100),
		},
		Queue: QueueConfig{
			WorkerCount:             envInt("QUEUE_WORKER_COUNT", 4),
			PollInterval:            envDuration("QUEUE_POLL_INTERVAL", time.Second),
			HeartbeatInterval:       envDuration("QUEUE_HEARTBEAT_INTERVAL", 15*time.Second),
			OrphanThreshold:         envDuration("QUEUE_ORPHAN_THRESHOLD", 60*time.Second),
			OrphanSweepInterval:     envDuration("QUEUE_ORPHAN_SWEEP_INTERVAL", 15*time.Second),
			JobMaxAttempts:          envInt("QUEUE_JOB_MAX_ATTEMPTS", 3),
			RetryBackoff:            envDuration("QUEUE_RETRY_BACKOFF", 5*time.Second),
			SessionTimeout:          envDuration("QUEUE_SESSION_TIMEOUT", 10*time.Minute),
			GracefulShutdownTimeout: envDuration("QUEUE_GRACEFUL_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Summary: SummaryConfig{
			BatchSize:  envInt("SUMMARY_BATCH_SIZE", 40),
			MaxBatches: envInt("SUMMARY_MAX_BATCHES", 3),
			MaxChars:   envInt("SUMMARY_MAX_CHARS", 4000),
		},
		LLM: LLMConfig{
			Model:             envString("LLM_MODEL", "claude-sonnet-4-5"),
			SummaryModel:      envString("LLM_SUMMARY_MODEL", "claude-haiku-4-5"),
			Temperature:       envFloat("LLM_TEMPERATURE", 0.7),
			MaxTokens:         envInt("LLM_MAX_TOKENS", 8192),
			RequestsPerSecond: envFloat("LLM_REQUESTS_PER_SECOND", 2),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that break runtime invariants.
func (c *Config) Validate() error {
	if c.Listener.RefreshInterval >= c.Listener.LockDuration/2 {
		return fmt.Errorf("listener refresh interval %v must be less than half the lock duration %v",
			c.Listener.RefreshInterval, c.Listener.LockDuration)
	}
	if c.Agent.MaxIterations <= 0 {
		return fmt.Errorf("agent max iterations must be positive, got %d", c.Agent.MaxIterations)
	}
	if c.Agent.MaxSingleMessageChars > c.Agent.MaxMessageChars {
		return fmt.Errorf("per-message cap %d exceeds aggregate cap %d",
			c.Agent.MaxSingleMessageChars, c.Agent.MaxMessageChars)
	}
	if c.Queue.HeartbeatInterval >= c.Queue.OrphanThreshold {
		return fmt.Errorf("heartbeat interval %v must be below the orphan threshold %v",
			c.Queue.HeartbeatInterval, c.Queue.OrphanThreshold)
	}
	if c.Summary.BatchSize <= 0 {
		return fmt.Errorf("summary batch size must be positive, got %d", c.Summary.BatchSize)
	}
	return nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
