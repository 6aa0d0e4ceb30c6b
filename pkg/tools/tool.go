// Package tools defines the uniform tool contract the agent runtime executes,
// the registry that validates tool inputs, and the built-in tools.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/loomchat/companion/pkg/llm"
	"github.com/loomchat/companion/pkg/models"
)

// ExecutionPhase orders tool execution within one iteration's batch. Early
// tools run before normal ones so search results can seed sources and system
// context that later tools and the final message reference.
type ExecutionPhase string

const (
	PhaseEarly  ExecutionPhase = "early"
	PhaseNormal ExecutionPhase = "normal"
)

// Result is what a tool execution produces. Output is the string handed back
// to the model (after the trust boundary wraps it). Multimodal parts are
// appended as a separate user message. SystemContext is folded into the next
// iteration's system prompt.
type Result struct {
	Output        string
	Multimodal    []models.Part
	Sources       []models.Source
	SystemContext string
}

// Trace configures how a tool's executions appear on the trace bus.
type Trace struct {
	// StepType names the persisted step kind, e.g. "tool_call".
	StepType string
	// FormatContent renders the step content from the validated input and the
	// result. Nil falls back to the raw output.
	FormatContent func(input map[string]any, result *Result) string
}

// Tool is one executable capability exposed to the model.
type Tool struct {
	Name           string
	Description    string
	InputSchema    json.RawMessage
	ExecutionPhase ExecutionPhase
	Execute        func(ctx context.Context, input json.RawMessage) (*Result, error)
	Trace          Trace
}

// Registry holds the tool set for a session. Registration order is preserved
// so the model always sees tools in a stable order. Read-only after
// construction; safe to share across goroutines.
type Registry struct {
	order   []string
	tools   map[string]*Tool
	schemas map[string]*jsonschema.Schema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools:   make(map[string]*Tool),
		schemas: make(map[string]*jsonschema.Schema),
	}
}

// Register adds a tool, compiling its input schema.
func (r *Registry) Register(t *Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool %q already registered", t.Name)
	}
	if t.Execute == nil {
		return fmt.Errorf("tool %q has no execute function", t.Name)
	}

	var schemaDoc any
	if err := json.Unmarshal(t.InputSchema, &schemaDoc); err != nil {
		return fmt.Errorf("tool %q input schema is not valid JSON: %w", t.Name, err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaDoc); err != nil {
		return fmt.Errorf("tool %q: add schema resource: %w", t.Name, err)
	}
	schema, err := c.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("tool %q: compile schema: %w", t.Name, err)
	}

	r.order = append(r.order, t.Name)
	r.tools[t.Name] = t
	r.schemas[t.Name] = schema
	return nil
}

// Get looks a tool up by name.
func (r *Registry) Get(name string) (*Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Validate checks a tool input against the tool's schema.
func (r *Registry) Validate(name string, input json.RawMessage) error {
	schema, ok := r.schemas[name]
	if !ok {
		return fmt.Errorf("unknown tool %q", name)
	}
	var doc any
	if err := json.Unmarshal(input, &doc); err != nil {
		return fmt.Errorf("tool %q input is not valid JSON: %w", name, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("tool %q input rejected: %w", name, err)
	}
	return nil
}

// Definitions projects the registry into the shape the LLM provider consumes,
// in registration order.
func (r *Registry) Definitions() []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		defs = append(defs, llm.ToolDefinition{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		})
	}
	return defs
}

// Names returns the registered tool names in order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
