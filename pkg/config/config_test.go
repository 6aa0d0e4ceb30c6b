package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Agent.MaxIterations)
	assert.Equal(t, 60, cfg.Agent.HistoryWindow)
	assert.False(t, cfg.Agent.AllowNoMessageOutput)
	assert.Equal(t, 4, cfg.Queue.WorkerCount)
	assert.Equal(t, 40, cfg.Summary.BatchSize)
	assert.NotEmpty(t, cfg.LLM.Model)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("AGENT_MAX_ITERATIONS", "7")
	t.Setenv("AGENT_ALLOW_NO_MESSAGE_OUTPUT", "true")
	t.Setenv("AGENT_TOOL_TIMEOUT", "90s")
	t.Setenv("LLM_MODEL", "claude-opus-4-5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Agent.MaxIterations)
	assert.True(t, cfg.Agent.AllowNoMessageOutput)
	assert.Equal(t, 90*time.Second, cfg.Agent.ToolTimeout)
	assert.Equal(t, "claude-opus-4-5", cfg.LLM.Model)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("AGENT_MAX_ITERATIONS", "not-a-number")
	t.Setenv("AGENT_TOOL_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Agent.MaxIterations)
	assert.Equal(t, 60*time.Second, cfg.Agent.ToolTimeout)
}

func TestValidateRejectsBrokenInvariants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"refresh interval too close to lock duration", func(c *Config) {
			c.Listener.RefreshInterval = c.Listener.LockDuration
		}},
		{"non-positive max iterations", func(c *Config) {
			c.Agent.MaxIterations = 0
		}},
		{"per-message cap above aggregate cap", func(c *Config) {
			c.Agent.MaxSingleMessageChars = c.Agent.MaxMessageChars + 1
		}},
		{"heartbeat slower than orphan threshold", func(c *Config) {
			c.Queue.HeartbeatInterval = c.Queue.OrphanThreshold
		}},
		{"non-positive summary batch", func(c *Config) {
			c.Summary.BatchSize = 0
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
