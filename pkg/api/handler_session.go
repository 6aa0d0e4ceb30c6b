package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loomchat/companion/ent"
)

// SessionResponse is the JSON projection of a session row.
type SessionResponse struct {
	ID                string     `json:"id"`
	WorkspaceID       string     `json:"workspaceId"`
	StreamID          string     `json:"streamId"`
	PersonaID         string     `json:"personaId"`
	TriggerMessageID  string     `json:"triggerMessageId"`
	Status            string     `json:"status"`
	LastSeenSequence  int64      `json:"lastSeenSequence"`
	SentMessageIDs    []string   `json:"sentMessageIds,omitempty"`
	ResponseMessageID string     `json:"responseMessageId,omitempty"`
	ErrorMessage      string     `json:"errorMessage,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
}

// StepResponse is the JSON projection of one agent step.
type StepResponse struct {
	ID         string                 `json:"id"`
	StepNumber int                    `json:"stepNumber"`
	StepType   string                 `json:"stepType"`
	Content    string                 `json:"content,omitempty"`
	Sources    []map[string]string    `json:"sources,omitempty"`
	MessageID  string                 `json:"messageId,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	StartedAt  time.Time              `json:"startedAt"`
}

func sessionResponse(sess *ent.AgentSession) SessionResponse {
	resp := SessionResponse{
		ID:               sess.ID,
		WorkspaceID:      sess.WorkspaceID,
		StreamID:         sess.StreamID,
		PersonaID:        sess.PersonaID,
		TriggerMessageID: sess.TriggerMessageID,
		Status:           string(sess.Status),
		LastSeenSequence: sess.LastSeenSequence,
		SentMessageIDs:   sess.SentMessageIds,
		CreatedAt:        sess.CreatedAt,
		CompletedAt:      sess.CompletedAt,
	}
	if sess.ResponseMessageID != nil {
		resp.ResponseMessageID = *sess.ResponseMessageID
	}
	if sess.ErrorMessage != nil {
		resp.ErrorMessage = *sess.ErrorMessage
	}
	return resp
}

func stepResponse(step *ent.AgentStep) StepResponse {
	resp := StepResponse{
		ID:         step.ID,
		StepNumber: step.StepNumber,
		StepType:   step.StepType,
		Content:    step.Content,
		Sources:    step.Sources,
		Metadata:   step.Metadata,
		StartedAt:  step.StartedAt,
	}
	if step.MessageID != nil {
		resp.MessageID = *step.MessageID
	}
	return resp
}

// listSessionsHandler returns a stream's sessions, newest first.
func (s *Server) listSessionsHandler(c *gin.Context) {
	streamID := c.Param("streamId")
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	sessions, err := s.sessions.ListByStream(c.Request.Context(), streamID, limit)
	if err != nil {
		s.logger.Error("Failed to list sessions", "stream_id", streamID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sessions"})
		return
	}

	out := make([]SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, sessionResponse(sess))
	}
	c.JSON(http.StatusOK, gin.H{"sessions": out})
}

// getSessionHandler returns one session with its steps.
func (s *Server) getSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionId")

	sess, err := s.sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		s.logger.Error("Failed to load session", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}

	steps, err := s.sessions.ListSteps(c.Request.Context(), sessionID)
	if err != nil {
		s.logger.Error("Failed to load steps", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session steps"})
		return
	}

	stepsOut := make([]StepResponse, 0, len(steps))
	for _, step := range steps {
		stepsOut = append(stepsOut, stepResponse(step))
	}
	c.JSON(http.StatusOK, gin.H{
		"session": sessionResponse(sess),
		"steps":   stepsOut,
	})
}

// cancelSessionHandler supersedes a running session. The database update is
// authoritative; the local cancel only speeds up a run hosted on this
// replica.
func (s *Server) cancelSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionId")

	superseded, err := s.sessions.Supersede(c.Request.Context(), sessionID)
	if err != nil {
		s.logger.Error("Failed to supersede session", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel session"})
		return
	}
	if !superseded {
		c.JSON(http.StatusConflict, gin.H{"error": "session is not running"})
		return
	}

	cancelledLocally := false
	if s.pool != nil {
		cancelledLocally = s.pool.CancelSession(sessionID)
	}
	c.JSON(http.StatusOK, gin.H{
		"status":           "superseded",
		"cancelledLocally": cancelledLocally,
	})
}
