package tools

import (
	"context"
	"encoding/json"
)

// SendMessageToolName and KeepResponseToolName are intercepted by the agent
// runtime: send_message calls are staged as pending messages instead of
// executing, and keep_response marks the previous implicit response as final.
const (
	SendMessageToolName  = "send_message"
	KeepResponseToolName = "keep_response"
)

// StagedResponse is what the model sees for an intercepted send_message call.
const StagedResponse = `{"status": "pending", "message": "staged for delivery after the context check"}`

var sendMessageSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"content": {
			"type": "string",
			"description": "The markdown message to post to the stream"
		}
	},
	"required": ["content"],
	"additionalProperties": false
}`)

var keepResponseSchema = json.RawMessage(`{
	"type": "object",
	"properties": {},
	"additionalProperties": false
}`)

// SendMessageInput is the staged payload of a send_message call.
type SendMessageInput struct {
	Content string `json:"content"`
}

// NewSendMessageTool registers the message-commit marker. The Execute
// function only runs if interception is bypassed; it returns the same staged
// status the runtime would.
func NewSendMessageTool() *Tool {
	return &Tool{
		Name:           SendMessageToolName,
		Description:    "Post a message to the conversation. The message is staged and delivered once the turn completes.",
		InputSchema:    sendMessageSchema,
		ExecutionPhase: PhaseNormal,
		Execute: func(ctx context.Context, input json.RawMessage) (*Result, error) {
			return &Result{Output: StagedResponse}, nil
		},
		Trace: Trace{StepType: "message_sent"},
	}
}

// NewKeepResponseTool registers the keep-response marker used during
// reconsideration to confirm the previously drafted text unchanged.
func NewKeepResponseTool() *Tool {
	return &Tool{
		Name:           KeepResponseToolName,
		Description:    "Confirm that your previously drafted response should be sent as-is, without changes.",
		InputSchema:    keepResponseSchema,
		ExecutionPhase: PhaseNormal,
		Execute: func(ctx context.Context, input json.RawMessage) (*Result, error) {
			return &Result{Output: `{"status": "kept"}`}, nil
		},
		Trace: Trace{StepType: "response_kept"},
	}
}
