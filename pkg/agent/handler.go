package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/loomchat/companion/ent"
	"github.com/loomchat/companion/pkg/config"
	"github.com/loomchat/companion/pkg/guard"
	"github.com/loomchat/companion/pkg/llm"
	"github.com/loomchat/companion/pkg/models"
	"github.com/loomchat/companion/pkg/outbox"
	"github.com/loomchat/companion/pkg/session"
	"github.com/loomchat/companion/pkg/tools"
	"github.com/loomchat/companion/pkg/trace"
)

// RegistryFactory builds the tool set for one workspace. Workspace-scoped
// tools (search) need the workspace id at construction.
type RegistryFactory func(workspaceID string) (*tools.Registry, error)

// SessionCanceller lets the handler register running sessions for external
// cancellation. Implemented by outbox.WorkerPool.
type SessionCanceller interface {
	RegisterSession(sessionID string, cancel context.CancelFunc)
	UnregisterSession(sessionID string)
}

// Handler processes persona-agent jobs: it claims the session through the
// lifecycle manager, builds the context, and drives the runtime loop.
type Handler struct {
	lifecycle *session.Manager
	sessions  *session.Service
	client    *ent.Client

	streams  models.StreamStore
	personas models.PersonaStore
	messages models.MessageStore

	builder   *ContextBuilder
	llm       llm.Client
	registry  RegistryFactory
	boundary  *guard.Boundary
	publisher trace.RoomPublisher
	observers []trace.Observer
	pool      SessionCanceller

	cfg    config.AgentConfig
	llmCfg config.LLMConfig
	logger *slog.Logger
}

// NewHandler wires the persona-job handler.
func NewHandler(
	lifecycle *session.Manager,
	sessions *session.Service,
	client *ent.Client,
	streams models.StreamStore,
	personas models.PersonaStore,
	messages models.MessageStore,
	builder *ContextBuilder,
	llmClient llm.Client,
	registry RegistryFactory,
	boundary *guard.Boundary,
	publisher trace.RoomPublisher,
	pool SessionCanceller,
	cfg config.AgentConfig,
	llmCfg config.LLMConfig,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		lifecycle: lifecycle,
		sessions:  sessions,
		client:    client,
		streams:   streams,
		personas:  personas,
		messages:  messages,
		builder:   builder,
		llm:       llmClient,
		registry:  registry,
		boundary:  boundary,
		publisher: publisher,
		pool:      pool,
		cfg:       cfg,
		llmCfg:    llmCfg,
		logger:    logger.With("component", "persona_handler"),
	}
}

// AttachObserver adds a process-wide trace observer (e.g. OTEL) that joins
// every session's bus alongside the per-session persistence observer.
func (h *Handler) AttachObserver(o trace.Observer) {
	h.observers = append(h.observers, o)
}

// HandleJob is the worker entry point for one persona-agent job.
func (h *Handler) HandleJob(ctx context.Context, job *outbox.Job) error {
	var pj models.PersonaJob
	if err := job.DecodePayload(&pj); err != nil {
		// Malformed payloads never become valid; don't retry.
		h.logger.Error("Dropping malformed persona job", "job_id", job.ID, "error", err)
		return nil
	}
	log := h.logger.With("job_id", job.ID, "stream_id", pj.StreamID, "persona_id", pj.PersonaID)

	stream, err := h.streams.GetStream(ctx, pj.StreamID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Info("Stream deleted since enqueue, dropping job")
			return nil
		}
		return fmt.Errorf("failed to load stream %s: %w", pj.StreamID, err)
	}
	persona, err := h.personas.GetPersona(ctx, pj.PersonaID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Info("Persona deleted since enqueue, dropping job")
			return nil
		}
		return fmt.Errorf("failed to load persona %s: %w", pj.PersonaID, err)
	}
	if !persona.Active {
		log.Info("Persona deactivated since enqueue, dropping job")
		return nil
	}
	trigger, err := h.messages.FindByID(ctx, pj.MessageID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Info("Trigger message deleted since enqueue, dropping job")
			return nil
		}
		return fmt.Errorf("failed to load trigger message %s: %w", pj.MessageID, err)
	}

	outcome, err := h.lifecycle.WithCompanionSession(ctx, pj, trigger.Sequence,
		func(ctx context.Context, sess *ent.AgentSession) (*session.Result, error) {
			return h.runSession(ctx, sess, stream, persona, trigger, pj.TriggeredBy)
		})
	if err != nil {
		if errors.Is(err, ErrAborted) {
			log.Info("Session aborted externally")
			return nil
		}
		return err
	}
	if outcome.Skipped {
		log.Info("Session skipped", "reason", outcome.Reason)
	}
	return nil
}

// runSession is the Phase 2 work: per-session trace bus, context build, and
// the runtime loop.
func (h *Handler) runSession(ctx context.Context, sess *ent.AgentSession, stream *models.Stream, persona *models.Persona, trigger *models.Message, triggeredBy models.Trigger) (*session.Result, error) {
	recorder := session.NewStepRecorder(h.client, sess.ID)
	bus := trace.NewBus(h.logger, trace.NewSessionObserver(recorder, h.publisher, h.logger))
	for _, o := range h.observers {
		bus.Attach(o)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	h.pool.RegisterSession(sess.ID, cancel)
	defer h.pool.UnregisterSession(sess.ID)

	parentChannel := ""
	if stream.Type == models.StreamThread {
		parentChannel = stream.ParentChannelID
	}

	bus.Publish(runCtx, trace.Event{
		Type:            trace.EventSessionStart,
		SessionID:       sess.ID,
		StreamID:        stream.ID,
		ParentChannelID: parentChannel,
		Metadata:        map[string]interface{}{"trigger": string(triggeredBy)},
	})

	result, err := h.run(runCtx, bus, sess, stream, persona, trigger, triggeredBy, parentChannel)
	if err != nil {
		bus.Publish(context.WithoutCancel(runCtx), trace.Event{
			Type:            trace.EventSessionError,
			SessionID:       sess.ID,
			StreamID:        stream.ID,
			ParentChannelID: parentChannel,
			Error:           err.Error(),
		})
		return nil, err
	}

	bus.Publish(runCtx, trace.Event{
		Type:            trace.EventSessionEnd,
		SessionID:       sess.ID,
		StreamID:        stream.ID,
		ParentChannelID: parentChannel,
		Metadata: map[string]interface{}{
			"status":        string(result.Status),
			"messages_sent": len(result.SentMessageIDs),
		},
	})

	return &session.Result{
		LastSeenSequence:  result.LastSeenSequence,
		ResponseMessageID: result.ResponseMessageID,
		SentMessageIDs:    result.SentMessageIDs,
	}, nil
}

func (h *Handler) run(ctx context.Context, bus *trace.Bus, sess *ent.AgentSession, stream *models.Stream, persona *models.Persona, trigger *models.Message, triggeredBy models.Trigger, parentChannel string) (*RunResult, error) {
	built, err := h.builder.Build(ctx, BuildInput{
		Stream:         stream,
		Persona:        persona,
		TriggerMessage: trigger,
		Trigger:        triggeredBy,
	})
	if err != nil {
		return nil, err
	}

	registry, err := h.registry(stream.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to build tool registry: %w", err)
	}

	runtime := NewRuntime(h.llm, registry, h.boundary, bus, h.messages, h.cfg, h.llmCfg, h.logger)
	return runtime.Run(ctx, RunInput{
		SessionID:       sess.ID,
		StreamID:        stream.ID,
		ParentChannelID: parentChannel,
		ExcludeAuthorID: persona.ID,
		SystemPrompt:    built.SystemPrompt,
		Messages:        built.Messages,
		LastSequence:    built.LastSequence,
		Send: func(ctx context.Context, content string, sources []models.Source) (*models.CreateMessageResult, error) {
			return h.messages.CreateMessage(ctx, models.CreateMessageRequest{
				WorkspaceID: stream.WorkspaceID,
				StreamID:    stream.ID,
				AuthorID:    persona.ID,
				AuthorType:  models.AuthorPersona,
				Content:     content,
				Sources:     sources,
				SessionID:   sess.ID,
			})
		},
		ShouldAbort: func(ctx context.Context) bool {
			if ctx.Err() != nil {
				return true
			}
			active, err := h.sessions.IsActive(ctx, sess.ID)
			if err != nil {
				// Can't tell; let the completion update arbitrate.
				return false
			}
			return !active
		},
	})
}

// DefaultRegistryFactory assembles the standard tool set: workspace search,
// web fetch, attachment loading, and the send/keep markers.
func DefaultRegistryFactory(messages models.MessageStore, attachments models.AttachmentStore, cfg config.AgentConfig) RegistryFactory {
	return func(workspaceID string) (*tools.Registry, error) {
		r := tools.NewRegistry()
		toolSet := []*tools.Tool{
			tools.NewWorkspaceSearchTool(messages, workspaceID),
			tools.NewWebFetchTool(cfg),
			tools.NewLoadAttachmentTool(attachments),
			tools.NewSendMessageTool(),
		}
		if cfg.AllowNoMessageOutput {
			toolSet = append(toolSet, tools.NewKeepResponseTool())
		}
		for _, t := range toolSet {
			if err := r.Register(t); err != nil {
				return nil, err
			}
		}
		return r, nil
	}
}
