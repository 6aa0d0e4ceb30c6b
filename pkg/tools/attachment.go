package tools

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/loomchat/companion/pkg/models"
)

// LoadAttachmentToolName is the registry name of the attachment loader.
const LoadAttachmentToolName = "load_attachment"

// pdfTextLimit caps extracted PDF text pushed into the conversation.
const pdfTextLimit = 100_000

var loadAttachmentSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"attachmentId": {
			"type": "string",
			"description": "The id of the attachment to load, as listed in the message's attachment descriptors"
		}
	},
	"required": ["attachmentId"],
	"additionalProperties": false
}`)

type loadAttachmentInput struct {
	AttachmentID string `json:"attachmentId"`
}

// NewLoadAttachmentTool loads attachment blobs on demand: images come back
// as multimodal parts the model can see, PDFs as extracted text, everything
// else as a descriptor only.
func NewLoadAttachmentTool(store models.AttachmentStore) *Tool {
	return &Tool{
		Name:           LoadAttachmentToolName,
		Description:    "Load the content of a message attachment. Images are returned for viewing; PDFs are returned as extracted text.",
		InputSchema:    loadAttachmentSchema,
		ExecutionPhase: PhaseNormal,
		Execute: func(ctx context.Context, input json.RawMessage) (*Result, error) {
			var in loadAttachmentInput
			if err := json.Unmarshal(input, &in); err != nil {
				return nil, fmt.Errorf("invalid load_attachment input: %w", err)
			}
			data, mimeType, err := store.LoadBlob(ctx, in.AttachmentID)
			if err != nil {
				return nil, fmt.Errorf("failed to load attachment %s: %w", in.AttachmentID, err)
			}

			switch {
			case strings.HasPrefix(mimeType, "image/"):
				return &Result{
					Output: fmt.Sprintf("Loaded image attachment %s (%s, %d bytes). The image follows.", in.AttachmentID, mimeType, len(data)),
					Multimodal: []models.Part{{
						Type:      models.PartImage,
						MediaType: mimeType,
						Data:      base64.StdEncoding.EncodeToString(data),
					}},
				}, nil

			case mimeType == "application/pdf":
				text, err := extractPDFText(data)
				if err != nil {
					return nil, fmt.Errorf("failed to extract PDF text: %w", err)
				}
				return &Result{Output: text}, nil

			case strings.HasPrefix(mimeType, "text/"):
				return &Result{Output: string(data)}, nil

			default:
				return &Result{
					Output: fmt.Sprintf("Attachment %s has unsupported type %s (%d bytes); its content cannot be loaded.", in.AttachmentID, mimeType, len(data)),
				}, nil
			}
		},
		Trace: Trace{
			StepType: "tool_call",
			FormatContent: func(input map[string]any, result *Result) string {
				id, _ := input["attachmentId"].(string)
				return fmt.Sprintf("Loaded attachment %s", id)
			},
		},
	}
}

func extractPDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF: %w", err)
	}
	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}
	text, err := io.ReadAll(io.LimitReader(reader, pdfTextLimit))
	if err != nil {
		return "", fmt.Errorf("failed to read extracted text: %w", err)
	}
	if len(text) == 0 {
		return "The PDF contains no extractable text.", nil
	}
	return string(text), nil
}
