// Package models defines the shared domain types: message content variants,
// conversation shapes, job payloads, and the contracts of the external chat
// collaborators the runtime consumes.
package models

import "strings"

// Role identifies the speaker of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// PartType discriminates multipart content parts.
type PartType string

const (
	PartText     PartType = "text"
	PartImage    PartType = "image"
	PartImageURL PartType = "image_url"
)

// Part is one element of multipart content. Text parts carry Text; image
// parts carry base64 Data plus MediaType; image_url parts carry URL.
type Part struct {
	Type      PartType `json:"type"`
	Text      string   `json:"text,omitempty"`
	MediaType string   `json:"media_type,omitempty"`
	Data      string   `json:"data,omitempty"`
	URL       string   `json:"url,omitempty"`
}

// Content is a tagged variant: plain text or an ordered list of parts.
// Exactly one of Text/Parts is meaningful; IsMultipart reports which.
type Content struct {
	Text  string `json:"text,omitempty"`
	Parts []Part `json:"parts,omitempty"`
}

// TextContent builds a plain-text content value.
func TextContent(s string) Content {
	return Content{Text: s}
}

// MultipartContent builds a multipart content value.
func MultipartContent(parts ...Part) Content {
	return Content{Parts: parts}
}

// IsMultipart reports whether the content carries parts instead of text.
func (c Content) IsMultipart() bool {
	return len(c.Parts) > 0
}

// imagePartCost is the character weight assigned to a non-text part when
// measuring content length for truncation.
const imagePartCost = 64

// Len measures the content in characters. Non-text parts count a fixed
// weight so images participate in aggregate budgeting without dominating it.
func (c Content) Len() int {
	if !c.IsMultipart() {
		return len(c.Text)
	}
	total := 0
	for _, p := range c.Parts {
		if p.Type == PartText {
			total += len(p.Text)
		} else {
			total += imagePartCost
		}
	}
	return total
}

// PlainText flattens the content to text, joining text parts and eliding
// image parts.
func (c Content) PlainText() string {
	if !c.IsMultipart() {
		return c.Text
	}
	var b strings.Builder
	for _, p := range c.Parts {
		if p.Type == PartText {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

// ToolCall is a model-requested tool invocation.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments []byte `json:"arguments"` // raw JSON input
}

// ConversationMessage is the generic message shape passed to the LLM.
// Tool-role messages carry ToolCallID/ToolName; assistant messages may carry
// ToolCalls alongside (or instead of) content.
type ConversationMessage struct {
	Role       Role
	Content    Content
	ToolCalls  []ToolCall
	ToolCallID string
	ToolName   string
}
