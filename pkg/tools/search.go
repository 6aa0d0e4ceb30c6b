package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/loomchat/companion/pkg/models"
)

// WorkspaceSearchToolName is the registry name of the workspace search tool.
const WorkspaceSearchToolName = "workspace_search"

const searchResultLimit = 20

var workspaceSearchSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"query": {
			"type": "string",
			"description": "Full-text search query over workspace messages"
		}
	},
	"required": ["query"],
	"additionalProperties": false
}`)

type workspaceSearchInput struct {
	Query string `json:"query"`
}

// NewWorkspaceSearchTool searches the workspace's message history. Runs in
// the early phase so its results can seed context for other tools in the same
// batch.
func NewWorkspaceSearchTool(messages models.MessageStore, workspaceID string) *Tool {
	return &Tool{
		Name:           WorkspaceSearchToolName,
		Description:    "Search past messages across the workspace. Use to recall earlier discussions, decisions, or shared links.",
		InputSchema:    workspaceSearchSchema,
		ExecutionPhase: PhaseEarly,
		Execute: func(ctx context.Context, input json.RawMessage) (*Result, error) {
			var in workspaceSearchInput
			if err := json.Unmarshal(input, &in); err != nil {
				return nil, fmt.Errorf("invalid workspace_search input: %w", err)
			}
			hits, err := messages.Search(ctx, workspaceID, in.Query, searchResultLimit)
			if err != nil {
				return nil, fmt.Errorf("workspace search failed: %w", err)
			}
			if len(hits) == 0 {
				return &Result{Output: "No messages matched the query."}, nil
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%d matching messages:\n", len(hits))
			for _, m := range hits {
				fmt.Fprintf(&b, "- [%s] %s: %s\n",
					m.CreatedAt.Format("2006-01-02"), m.AuthorName, m.Content)
			}
			return &Result{
				Output:        b.String(),
				SystemContext: fmt.Sprintf("Workspace search for %q returned %d results.", in.Query, len(hits)),
			}, nil
		},
		Trace: Trace{
			StepType: "tool_call",
			FormatContent: func(input map[string]any, result *Result) string {
				q, _ := input["query"].(string)
				return fmt.Sprintf("Searched workspace for %q", q)
			},
		},
	}
}
