// Package agent is the iterative runtime: LLM call, tool execution,
// new-context check, and the prep-then-send commit protocol.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/loomchat/companion/pkg/config"
	"github.com/loomchat/companion/pkg/guard"
	"github.com/loomchat/companion/pkg/llm"
	"github.com/loomchat/companion/pkg/models"
	"github.com/loomchat/companion/pkg/tools"
	"github.com/loomchat/companion/pkg/trace"
)

// ErrAborted reports that shouldAbort fired; the session transitions to
// failed.
var ErrAborted = errors.New("agent run aborted")

// ErrNoMessage reports loop exhaustion without a committed message when
// no-message output is not allowed.
var ErrNoMessage = errors.New("loop completed without sending a message")

// RunStatus classifies how a run ended.
type RunStatus string

const (
	StatusSent      RunStatus = "sent"
	StatusNoMessage RunStatus = "no-message"
)

// PendingMessage is a staged send_message call awaiting the context check.
type PendingMessage struct {
	Content    string
	Sources    []models.Source
	PreparedAt time.Time
}

// SendFunc commits a message through the chat collaborator.
type SendFunc func(ctx context.Context, content string, sources []models.Source) (*models.CreateMessageResult, error)

// ValidateFunc vets a final response. A non-empty return is the rejection
// reason; the model is asked to revise.
type ValidateFunc func(ctx context.Context, content string) string

// AbortFunc is polled at the top of each iteration.
type AbortFunc func(ctx context.Context) bool

// RunInput is one session's work order.
type RunInput struct {
	SessionID       string
	StreamID        string
	ParentChannelID string
	// ExcludeAuthorID filters the persona's own messages out of
	// new-message checks.
	ExcludeAuthorID string
	SystemPrompt    string
	Messages        []models.ConversationMessage
	// LastSequence is the newest sequence already present in Messages.
	LastSequence int64

	Send        SendFunc
	Validate    ValidateFunc
	ShouldAbort AbortFunc
}

// RunResult is what the lifecycle manager persists on completion.
type RunResult struct {
	Status            RunStatus
	Reason            string
	LastSeenSequence  int64
	ResponseMessageID string
	SentMessageIDs    []string
	Sources           []models.Source
}

// Runtime drives the agent loop. One instance serves all sessions; per-run
// state lives in runState.
type Runtime struct {
	llm      llm.Client
	registry *tools.Registry
	boundary *guard.Boundary
	bus      *trace.Bus
	messages models.MessageStore
	cfg      config.AgentConfig
	llmCfg   config.LLMConfig
	logger   *slog.Logger
}

// NewRuntime creates the runtime.
func NewRuntime(llmClient llm.Client, registry *tools.Registry, boundary *guard.Boundary, bus *trace.Bus, messages models.MessageStore, cfg config.AgentConfig, llmCfg config.LLMConfig, logger *slog.Logger) *Runtime {
	return &Runtime{
		llm:      llmClient,
		registry: registry,
		boundary: boundary,
		bus:      bus,
		messages: messages,
		cfg:      cfg,
		llmCfg:   llmCfg,
		logger:   logger.With("component", "agent_runtime"),
	}
}

// runState is the mutable per-run loop state.
type runState struct {
	in RunInput

	history          []models.ConversationMessage
	retrievedContext []string
	sources          []models.Source
	sourcesSeen      map[string]bool

	pending      []PendingMessage
	keepSeen     bool
	keepReason   string
	reconsidered bool

	lastProcessed     int64
	sentMessageIDs    []string
	responseMessageID string
}

// Run executes the loop until a message commits, a keep is confirmed, the
// iteration ceiling is hit, or an abort fires.
func (r *Runtime) Run(ctx context.Context, in RunInput) (*RunResult, error) {
	log := r.logger.With("session_id", in.SessionID, "stream_id", in.StreamID)
	st := &runState{
		in:            in,
		history:       append([]models.ConversationMessage(nil), in.Messages...),
		sourcesSeen:   make(map[string]bool),
		lastProcessed: in.LastSequence,
	}

	for iteration := 1; iteration <= r.cfg.MaxIterations; iteration++ {
		if in.ShouldAbort != nil && in.ShouldAbort(ctx) {
			log.Info("Run aborted", "iteration", iteration)
			return nil, ErrAborted
		}

		result, err := r.generate(ctx, st)
		if err != nil {
			return nil, fmt.Errorf("LLM call failed on iteration %d: %w", iteration, err)
		}
		r.appendAssistantTurn(st, result)
		r.emitThinking(ctx, st, result)

		if len(result.ToolCalls) == 0 {
			done, runResult, err := r.handleImplicitResponse(ctx, st, result.Text, log)
			if err != nil {
				return nil, err
			}
			if done {
				return runResult, nil
			}
			continue
		}

		r.executeTools(ctx, st, result.ToolCalls, log)

		done, runResult, err := r.finalizeOrReconsider(ctx, st, log)
		if err != nil {
			return nil, err
		}
		if done {
			return runResult, nil
		}
	}

	log.Warn("Iteration ceiling reached without a committed message")
	if r.cfg.AllowNoMessageOutput {
		return r.result(st, StatusNoMessage, "iteration limit reached without a committed message"), nil
	}
	return nil, ErrNoMessage
}

// generate runs one LLM call under the observers' execution wrappers.
func (r *Runtime) generate(ctx context.Context, st *runState) (*llm.GenerateResult, error) {
	system := st.in.SystemPrompt
	if len(st.retrievedContext) > 0 {
		system += "\n\n## Retrieved context\n" + strings.Join(st.retrievedContext, "\n")
	}
	input := llm.GenerateInput{
		Model:       r.llmCfg.Model,
		System:      system,
		Messages:    truncateHistory(st.history, r.cfg.MaxSingleMessageChars, r.cfg.MaxMessageChars),
		Tools:       r.registry.Definitions(),
		Temperature: r.llmCfg.Temperature,
		MaxTokens:   r.llmCfg.MaxTokens,
	}

	var result *llm.GenerateResult
	err := r.bus.WrapExecution(ctx, st.in.SessionID, func(ctx context.Context) error {
		var genErr error
		result, genErr = r.llm.GenerateWithTools(ctx, input)
		return genErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Runtime) appendAssistantTurn(st *runState, result *llm.GenerateResult) {
	msg := models.ConversationMessage{
		Role:      models.RoleAssistant,
		Content:   models.TextContent(result.Text),
		ToolCalls: result.ToolCalls,
	}
	st.history = append(st.history, msg)
}

func (r *Runtime) emitThinking(ctx context.Context, st *runState, result *llm.GenerateResult) {
	e := r.event(st, trace.EventThinking)
	if result.Text != "" {
		e.Content = result.Text
	} else if len(result.ToolCalls) > 0 {
		names := make([]string, len(result.ToolCalls))
		for i, tc := range result.ToolCalls {
			names[i] = tc.Name
		}
		e.Content = "Planning tool calls: " + strings.Join(names, ", ")
		e.Metadata = map[string]interface{}{"plan": names}
	}
	r.bus.Publish(ctx, e)
}

// handleImplicitResponse treats a text-only turn as the response. New context
// triggers one reconsideration; validation may demand a revision; otherwise
// the text commits.
func (r *Runtime) handleImplicitResponse(ctx context.Context, st *runState, text string, log *slog.Logger) (bool, *RunResult, error) {
	if strings.TrimSpace(text) == "" {
		// Nothing to commit and nothing asked for; let the loop retry.
		return false, nil, nil
	}

	newMsgs, err := r.newMessages(ctx, st)
	if err != nil {
		return false, nil, err
	}
	if len(newMsgs) > 0 && !st.reconsidered {
		st.reconsidered = true
		r.injectNewMessages(ctx, st, newMsgs)
		st.history = append(st.history, systemNote(fmt.Sprintf(
			"[New context arrived while you were responding]\nYour draft was:\n%s\nPlease incorporate the new messages and respond.", text)))
		r.publishReconsidering(ctx, st, text, newMsgs)
		return false, nil, nil
	}

	if reason := r.validate(ctx, st, text); reason != "" {
		log.Info("Response rejected by validation", "reason", reason)
		st.history = append(st.history, systemNote(
			"[Your response was not accepted: "+reason+"]\nPlease revise and respond again."))
		return false, nil, nil
	}

	if err := r.commit(ctx, st, PendingMessage{Content: text, Sources: st.sources, PreparedAt: time.Now()}); err != nil {
		return false, nil, err
	}
	return true, r.result(st, StatusSent, ""), nil
}

// executeTools runs one iteration's batch: early phase, then normal, with
// send_message and keep_response intercepted rather than executed.
func (r *Runtime) executeTools(ctx context.Context, st *runState, calls []models.ToolCall, log *slog.Logger) {
	var early, normal []models.ToolCall
	for _, tc := range calls {
		switch tc.Name {
		case tools.SendMessageToolName:
			r.stageSend(st, tc, log)
		case tools.KeepResponseToolName:
			// Only honored when no-message output is enabled; otherwise a
			// hallucinated call falls through to the unknown-tool error so
			// the run cannot end silently.
			if !r.cfg.AllowNoMessageOutput {
				r.publishToolError(ctx, st, tc.Name, fmt.Sprintf("unknown tool %q", tc.Name))
				st.history = append(st.history, toolResultMessage(tc, "Error: unknown tool "+tc.Name))
				continue
			}
			st.keepSeen = true
			st.keepReason = "model chose to keep the previous response"
			st.history = append(st.history, toolResultMessage(tc, `{"status": "kept"}`))
		default:
			tool, ok := r.registry.Get(tc.Name)
			if !ok {
				r.publishToolError(ctx, st, tc.Name, fmt.Sprintf("unknown tool %q", tc.Name))
				st.history = append(st.history, toolResultMessage(tc, "Error: unknown tool "+tc.Name))
				continue
			}
			if tool.ExecutionPhase == tools.PhaseEarly {
				early = append(early, tc)
			} else {
				normal = append(normal, tc)
			}
		}
	}

	for _, tc := range early {
		r.executeOne(ctx, st, tc, log)
	}
	for _, tc := range normal {
		r.executeOne(ctx, st, tc, log)
	}
}

func (r *Runtime) stageSend(st *runState, tc models.ToolCall, log *slog.Logger) {
	var in tools.SendMessageInput
	if err := json.Unmarshal(tc.Arguments, &in); err != nil || strings.TrimSpace(in.Content) == "" {
		log.Warn("Malformed send_message call", "error", err)
		st.history = append(st.history, toolResultMessage(tc, "Error: send_message requires a non-empty content string"))
		return
	}
	st.pending = append(st.pending, PendingMessage{
		Content:    in.Content,
		Sources:    st.sources,
		PreparedAt: time.Now(),
	})
	st.history = append(st.history, toolResultMessage(tc, tools.StagedResponse))
}

// executeOne runs a single tool call with tracing, timeout, the trust
// boundary, and result accumulation.
func (r *Runtime) executeOne(ctx context.Context, st *runState, tc models.ToolCall, log *slog.Logger) {
	tool, _ := r.registry.Get(tc.Name)

	if err := r.registry.Validate(tc.Name, tc.Arguments); err != nil {
		r.publishToolError(ctx, st, tc.Name, err.Error())
		st.history = append(st.history, toolResultMessage(tc, "Error: "+err.Error()))
		return
	}

	e := r.event(st, trace.EventToolStart)
	e.ToolName = tc.Name
	r.bus.Publish(ctx, e)

	toolCtx, cancel := context.WithTimeout(ctx, r.cfg.ToolTimeout)
	start := time.Now()
	result, err := tool.Execute(toolCtx, tc.Arguments)
	cancel()
	elapsed := time.Since(start)

	if err != nil {
		log.Warn("Tool failed", "tool", tc.Name, "elapsed", elapsed, "error", err)
		r.publishToolError(ctx, st, tc.Name, err.Error())
		st.history = append(st.history, toolResultMessage(tc, "Error: "+err.Error()))
		return
	}

	r.mergeSources(st, result.Sources)
	if result.SystemContext != "" {
		st.retrievedContext = append(st.retrievedContext, result.SystemContext)
	}

	complete := r.event(st, trace.EventToolComplete)
	complete.ToolName = tc.Name
	complete.Elapsed = elapsed
	complete.Sources = result.Sources
	complete.Content = traceContent(tool, tc, result)
	r.bus.Publish(ctx, complete)

	sanitized := r.boundary.Apply(tc.Name, result.Output)
	st.history = append(st.history, toolResultMessage(tc, sanitized.Wrapped))

	if len(result.Multimodal) > 0 {
		st.history = append(st.history, models.ConversationMessage{
			Role:    models.RoleUser,
			Content: models.MultipartContent(result.Multimodal...),
		})
	}
}

// finalizeOrReconsider is the prep-then-send protocol: staged messages commit
// only when no new user messages arrived during tool execution.
func (r *Runtime) finalizeOrReconsider(ctx context.Context, st *runState, log *slog.Logger) (bool, *RunResult, error) {
	newMsgs, err := r.newMessages(ctx, st)
	if err != nil {
		return false, nil, err
	}

	switch {
	case len(st.pending) > 0 && len(newMsgs) == 0:
		for _, p := range st.pending {
			if reason := r.validate(ctx, st, p.Content); reason != "" {
				log.Info("Staged message rejected by validation", "reason", reason)
				st.pending = nil
				st.history = append(st.history, systemNote(
					"[Your staged message was not accepted: "+reason+"]\nPlease revise and call send_message again."))
				return false, nil, nil
			}
		}
		for _, p := range st.pending {
			if err := r.commit(ctx, st, p); err != nil {
				return false, nil, err
			}
		}
		st.pending = nil
		return true, r.result(st, StatusSent, ""), nil

	case len(st.pending) > 0 && len(newMsgs) > 0:
		drafts := make([]string, len(st.pending))
		for i, p := range st.pending {
			drafts[i] = p.Content
		}
		r.injectNewMessages(ctx, st, newMsgs)
		r.publishReconsidering(ctx, st, strings.Join(drafts, "\n---\n"), newMsgs)
		st.history = append(st.history, systemNote(fmt.Sprintf(
			"[New messages arrived before your staged response was sent]\nYour draft was:\n%s\nRe-evaluate: you may keep your draft by calling send_message with the same content, or revise it.",
			strings.Join(drafts, "\n---\n"))))
		st.pending = nil
		return false, nil, nil

	case st.keepSeen && len(newMsgs) == 0:
		e := r.event(st, trace.EventResponseKept)
		e.Content = st.keepReason
		r.bus.Publish(ctx, e)
		return true, r.result(st, StatusNoMessage, st.keepReason), nil

	case st.keepSeen && len(newMsgs) > 0:
		r.injectNewMessages(ctx, st, newMsgs)
		r.publishReconsidering(ctx, st, "", newMsgs)
		st.history = append(st.history, systemNote(
			"[New messages arrived]\nRe-evaluate: respond with send_message, or call keep_response again if no response is still the right call."))
		st.keepSeen = false
		return false, nil, nil

	case len(newMsgs) > 0:
		r.injectNewMessages(ctx, st, newMsgs)
		return false, nil, nil

	default:
		return false, nil, nil
	}
}

// newMessages polls for user messages committed after lastProcessed.
func (r *Runtime) newMessages(ctx context.Context, st *runState) ([]models.Message, error) {
	msgs, err := r.messages.ListSince(ctx, st.in.StreamID, st.lastProcessed, models.SinceOptions{
		ExcludeAuthor: st.in.ExcludeAuthorID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check for new messages: %w", err)
	}
	return msgs, nil
}

// injectNewMessages pushes arrivals into history and bumps lastProcessed.
func (r *Runtime) injectNewMessages(ctx context.Context, st *runState, msgs []models.Message) {
	previews := make([]string, 0, len(msgs))
	for _, m := range msgs {
		st.history = append(st.history, models.ConversationMessage{
			Role:    models.RoleUser,
			Content: models.TextContent(formatUserMessage(m, nil)),
		})
		if m.Sequence > st.lastProcessed {
			st.lastProcessed = m.Sequence
		}
		previews = append(previews, preview(m.Content, 200))
	}

	e := r.event(st, trace.EventContextReceived)
	e.Content = strings.Join(previews, "\n")
	e.Metadata = map[string]interface{}{"count": len(msgs)}
	r.bus.Publish(ctx, e)
}

func (r *Runtime) publishReconsidering(ctx context.Context, st *runState, draft string, newMsgs []models.Message) {
	previews := make([]string, 0, len(newMsgs))
	for _, m := range newMsgs {
		previews = append(previews, preview(m.Content, 200))
	}
	e := r.event(st, trace.EventReconsidering)
	e.Content = draft
	e.Metadata = map[string]interface{}{"new_messages": previews}
	r.bus.Publish(ctx, e)
}

func (r *Runtime) publishToolError(ctx context.Context, st *runState, toolName, errMsg string) {
	e := r.event(st, trace.EventToolError)
	e.ToolName = toolName
	e.Error = errMsg
	r.bus.Publish(ctx, e)
}

// commit sends one message through the hook and records the outcome.
func (r *Runtime) commit(ctx context.Context, st *runState, p PendingMessage) error {
	res, err := st.in.Send(ctx, p.Content, p.Sources)
	if err != nil {
		return fmt.Errorf("failed to commit message: %w", err)
	}

	st.sentMessageIDs = append(st.sentMessageIDs, res.ID)
	if st.responseMessageID == "" {
		st.responseMessageID = res.ID
	}

	eventType := trace.EventMessageSent
	if res.Operation == "edited" {
		eventType = trace.EventMessageEdited
	}
	e := r.event(st, eventType)
	e.MessageID = res.ID
	e.Content = p.Content
	e.Sources = p.Sources
	r.bus.Publish(ctx, e)
	return nil
}

func (r *Runtime) validate(ctx context.Context, st *runState, content string) string {
	if st.in.Validate == nil {
		return ""
	}
	return st.in.Validate(ctx, content)
}

func (r *Runtime) mergeSources(st *runState, sources []models.Source) {
	for _, s := range sources {
		key := s.URL + "\x00" + s.Title
		if st.sourcesSeen[key] {
			continue
		}
		st.sourcesSeen[key] = true
		st.sources = append(st.sources, s)
	}
}

func (r *Runtime) result(st *runState, status RunStatus, reason string) *RunResult {
	return &RunResult{
		Status:            status,
		Reason:            reason,
		LastSeenSequence:  st.lastProcessed,
		ResponseMessageID: st.responseMessageID,
		SentMessageIDs:    st.sentMessageIDs,
		Sources:           st.sources,
	}
}

func (r *Runtime) event(st *runState, t trace.EventType) trace.Event {
	return trace.Event{
		Type:            t,
		SessionID:       st.in.SessionID,
		StreamID:        st.in.StreamID,
		ParentChannelID: st.in.ParentChannelID,
	}
}

func systemNote(text string) models.ConversationMessage {
	return models.ConversationMessage{
		Role:    models.RoleSystem,
		Content: models.TextContent(text),
	}
}

func toolResultMessage(tc models.ToolCall, output string) models.ConversationMessage {
	return models.ConversationMessage{
		Role:       models.RoleTool,
		Content:    models.TextContent(output),
		ToolCallID: tc.ID,
		ToolName:   tc.Name,
	}
}

func traceContent(tool *tools.Tool, tc models.ToolCall, result *tools.Result) string {
	if tool.Trace.FormatContent == nil {
		return preview(result.Output, 500)
	}
	var input map[string]any
	_ = json.Unmarshal(tc.Arguments, &input)
	return tool.Trace.FormatContent(input, result)
}

func preview(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Back off to a rune boundary so the preview stays valid UTF-8.
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max] + "…"
}
