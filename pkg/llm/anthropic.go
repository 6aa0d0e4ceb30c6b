package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/loomchat/companion/pkg/models"
)

// AnthropicClient implements Client against the Anthropic Messages API.
type AnthropicClient struct {
	client sdk.Client
	logger *slog.Logger
}

// NewAnthropicClient builds a client from ANTHROPIC_API_KEY.
func NewAnthropicClient(logger *slog.Logger) (*AnthropicClient, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
	}
	return &AnthropicClient{
		client: sdk.NewClient(option.WithAPIKey(apiKey)),
		logger: logger.With("component", "anthropic"),
	}, nil
}

// GenerateWithTools sends the conversation with bound tools and translates
// the assistant turn back into the provider-neutral shape.
func (c *AnthropicClient) GenerateWithTools(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	params := sdk.MessageNewParams{
		Model:     sdk.Model(input.Model),
		MaxTokens: int64(input.MaxTokens),
		Messages:  encodeMessages(input.Messages),
	}
	if input.System != "" {
		params.System = []sdk.TextBlockParam{{Text: input.System}}
	}
	if input.Temperature > 0 {
		params.Temperature = sdk.Float(input.Temperature)
	}
	if len(input.Tools) > 0 {
		tools, err := encodeTools(input.Tools)
		if err != nil {
			return nil, err
		}
		params.Tools = tools
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic message request failed: %w", err)
	}

	result := &GenerateResult{
		Usage: TokenUsage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
			TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
	}
	for _, block := range msg.Content {
		switch block.Type {
		case "text":
			if result.Text != "" {
				result.Text += "\n"
			}
			result.Text += block.Text
		case "tool_use":
			result.ToolCalls = append(result.ToolCalls, models.ToolCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: []byte(block.Input),
			})
		}
	}

	c.logger.Debug("Generation complete",
		"model", input.Model,
		"stop_reason", msg.StopReason,
		"tool_calls", len(result.ToolCalls),
		"input_tokens", msg.Usage.InputTokens,
		"output_tokens", msg.Usage.OutputTokens)

	return result, nil
}

// structuredOutputTool is the forced tool name used to obtain
// schema-conforming structured responses.
const structuredOutputTool = "record_output"

// GenerateObject forces a single tool call whose input schema is the target
// schema, then unmarshals the tool input into out.
func (c *AnthropicClient) GenerateObject(ctx context.Context, input ObjectInput, out any) error {
	schemaParam, err := decodeSchema(input.Schema)
	if err != nil {
		return err
	}
	tool := sdk.ToolUnionParamOfTool(schemaParam, structuredOutputTool)
	desc := "Record the structured output."
	if input.SchemaName != "" {
		desc = fmt.Sprintf("Record the structured %s output.", input.SchemaName)
	}
	tool.OfTool.Description = sdk.String(desc)

	params := sdk.MessageNewParams{
		Model:      sdk.Model(input.Model),
		MaxTokens:  int64(input.MaxTokens),
		Messages:   encodeMessages(input.Messages),
		Tools:      []sdk.ToolUnionParam{tool},
		ToolChoice: sdk.ToolChoiceParamOfTool(structuredOutputTool),
	}
	if input.Temperature > 0 {
		params.Temperature = sdk.Float(input.Temperature)
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return fmt.Errorf("anthropic structured request failed: %w", err)
	}

	for _, block := range msg.Content {
		if block.Type == "tool_use" && block.Name == structuredOutputTool {
			if err := json.Unmarshal([]byte(block.Input), out); err != nil {
				return fmt.Errorf("structured output did not match schema: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("model returned no structured output (stop reason %q)", msg.StopReason)
}

// encodeMessages maps the generic conversation onto Anthropic message params.
// System messages mid-conversation become user turns (the API accepts system
// text only as the top-level system parameter); tool results become user
// turns carrying tool_result blocks, per the Messages API shape.
func encodeMessages(messages []models.ConversationMessage) []sdk.MessageParam {
	out := make([]sdk.MessageParam, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case models.RoleAssistant:
			blocks := make([]sdk.ContentBlockParamUnion, 0, 1+len(m.ToolCalls))
			if text := m.Content.PlainText(); text != "" {
				blocks = append(blocks, sdk.NewTextBlock(text))
			}
			for _, tc := range m.ToolCalls {
				blocks = append(blocks, sdk.NewToolUseBlock(tc.ID, json.RawMessage(tc.Arguments), tc.Name))
			}
			if len(blocks) == 0 {
				continue
			}
			out = append(out, sdk.NewAssistantMessage(blocks...))
		case models.RoleTool:
			out = append(out, sdk.NewUserMessage(
				sdk.NewToolResultBlock(m.ToolCallID, m.Content.PlainText(), false)))
		default:
			// user and interleaved system notes
			out = append(out, sdk.NewUserMessage(encodeContent(m.Content)...))
		}
	}
	return out
}

// encodeContent maps a content variant to Anthropic content blocks.
func encodeContent(c models.Content) []sdk.ContentBlockParamUnion {
	if !c.IsMultipart() {
		return []sdk.ContentBlockParamUnion{sdk.NewTextBlock(c.Text)}
	}
	blocks := make([]sdk.ContentBlockParamUnion, 0, len(c.Parts))
	for _, p := range c.Parts {
		switch p.Type {
		case models.PartText:
			blocks = append(blocks, sdk.NewTextBlock(p.Text))
		case models.PartImage:
			blocks = append(blocks, sdk.NewImageBlockBase64(p.MediaType, p.Data))
		case models.PartImageURL:
			// URL sources are not uploaded; surface the reference as text.
			blocks = append(blocks, sdk.NewTextBlock(fmt.Sprintf("[image: %s]", p.URL)))
		}
	}
	if len(blocks) == 0 {
		blocks = append(blocks, sdk.NewTextBlock(""))
	}
	return blocks
}

// encodeTools projects tool definitions into Anthropic tool params.
func encodeTools(defs []ToolDefinition) ([]sdk.ToolUnionParam, error) {
	out := make([]sdk.ToolUnionParam, 0, len(defs))
	for _, def := range defs {
		schemaParam, err := decodeSchema(def.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", def.Name, err)
		}
		tool := sdk.ToolUnionParamOfTool(schemaParam, def.Name)
		if def.Description != "" {
			tool.OfTool.Description = sdk.String(def.Description)
		}
		out = append(out, tool)
	}
	return out, nil
}

// decodeSchema converts a raw JSON Schema document into the SDK input schema
// param. The top-level "type" is fixed to object by the param type itself.
func decodeSchema(raw json.RawMessage) (sdk.ToolInputSchemaParam, error) {
	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		return sdk.ToolInputSchemaParam{}, fmt.Errorf("invalid input schema: %w", err)
	}
	delete(schema, "type")
	return sdk.ToolInputSchemaParam{ExtraFields: schema}, nil
}
