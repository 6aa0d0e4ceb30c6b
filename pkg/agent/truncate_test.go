package agent

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomchat/companion/pkg/models"
)

func textMsg(role models.Role, text string) models.ConversationMessage {
	return models.ConversationMessage{Role: role, Content: models.TextContent(text)}
}

func TestTruncateHistoryPerMessageCap(t *testing.T) {
	long := strings.Repeat("a", 200)
	msgs := []models.ConversationMessage{
		textMsg(models.RoleUser, long),
		textMsg(models.RoleAssistant, "short"),
	}

	got := truncateHistory(msgs, 100, 10_000)
	require.Len(t, got, 2)
	assert.Len(t, got[0].Content.Text, 100)
	assert.True(t, strings.HasSuffix(got[0].Content.Text, truncationMarker))
	assert.True(t, strings.HasPrefix(got[0].Content.Text, "aaa"), "head is preserved")
	assert.Equal(t, "short", got[1].Content.Text)
}

func TestTruncateHistoryAggregateDropsOldest(t *testing.T) {
	msgs := []models.ConversationMessage{
		textMsg(models.RoleUser, strings.Repeat("a", 100)),
		textMsg(models.RoleAssistant, strings.Repeat("b", 100)),
		textMsg(models.RoleUser, strings.Repeat("c", 100)),
	}

	got := truncateHistory(msgs, 1000, 250)
	require.Len(t, got, 2)
	assert.True(t, strings.HasPrefix(got[0].Content.Text, "b"))
	assert.True(t, strings.HasPrefix(got[1].Content.Text, "c"))
}

func TestTruncateHistoryAlwaysKeepsNewest(t *testing.T) {
	msgs := []models.ConversationMessage{
		textMsg(models.RoleUser, strings.Repeat("a", 100)),
		textMsg(models.RoleUser, strings.Repeat("b", 400)),
	}

	got := truncateHistory(msgs, 1000, 50)
	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(got[0].Content.Text, "b"))
}

func TestTruncateHistoryKeepsImagePartsVerbatim(t *testing.T) {
	msgs := []models.ConversationMessage{
		{Role: models.RoleUser, Content: models.MultipartContent(
			models.Part{Type: models.PartText, Text: strings.Repeat("x", 200)},
			models.Part{Type: models.PartImage, MediaType: "image/png", Data: "base64data"},
		)},
	}

	got := truncateHistory(msgs, 100, 10_000)
	require.Len(t, got, 1)
	parts := got[0].Content.Parts
	require.Len(t, parts, 2)
	assert.True(t, strings.HasSuffix(parts[0].Text, truncationMarker))
	assert.Equal(t, "base64data", parts[1].Data, "image parts are never truncated")
}

func TestTruncateHistoryNoChangeUnderBudget(t *testing.T) {
	msgs := []models.ConversationMessage{
		textMsg(models.RoleUser, "hello"),
		textMsg(models.RoleAssistant, "hi there"),
	}
	got := truncateHistory(msgs, 1000, 10_000)
	assert.Equal(t, msgs, got)
}

func TestTruncateHistoryEmpty(t *testing.T) {
	assert.Empty(t, truncateHistory(nil, 100, 1000))
}

func TestTruncateHistoryNeverOpensWithToolResult(t *testing.T) {
	// Budget of 250 lands the cut on the tool result, whose tool_use turn
	// would be gone; the window must open on the following user message.
	msgs := []models.ConversationMessage{
		textMsg(models.RoleAssistant, strings.Repeat("a", 100)),
		{Role: models.RoleTool, ToolCallID: "t1", Content: models.TextContent(strings.Repeat("b", 100))},
		textMsg(models.RoleUser, strings.Repeat("c", 100)),
		textMsg(models.RoleUser, strings.Repeat("d", 100)),
	}

	got := truncateHistory(msgs, 1000, 250)
	require.Len(t, got, 2)
	assert.Equal(t, models.RoleUser, got[0].Role)
	assert.True(t, strings.HasPrefix(got[0].Content.Text, "c"))
}

func TestTruncateHistoryKeepsAssistantTurnForToolTail(t *testing.T) {
	// When everything inside the budget is tool results, the assistant turn
	// that issued them is kept even though it exceeds the budget.
	msgs := []models.ConversationMessage{
		textMsg(models.RoleUser, strings.Repeat("u", 100)),
		{Role: models.RoleAssistant, Content: models.TextContent(strings.Repeat("a", 300)),
			ToolCalls: []models.ToolCall{{ID: "t1", Name: "web_fetch"}, {ID: "t2", Name: "web_fetch"}}},
		{Role: models.RoleTool, ToolCallID: "t1", Content: models.TextContent(strings.Repeat("b", 80))},
		{Role: models.RoleTool, ToolCallID: "t2", Content: models.TextContent(strings.Repeat("c", 80))},
	}

	got := truncateHistory(msgs, 1000, 200)
	require.Len(t, got, 3)
	assert.Equal(t, models.RoleAssistant, got[0].Role)
	assert.Equal(t, models.RoleTool, got[1].Role)
	assert.Equal(t, models.RoleTool, got[2].Role)
}

func TestTruncateTextCutsAtRuneBoundary(t *testing.T) {
	s := strings.Repeat("héllo wörld ", 40)
	for _, max := range []int{30, 31, 32, 33, 50} {
		got := truncateText(s, max)
		assert.True(t, utf8.ValidString(got), "max=%d produced invalid UTF-8", max)
		assert.True(t, strings.HasSuffix(got, truncationMarker))
	}
}

func TestPreviewCutsAtRuneBoundary(t *testing.T) {
	s := strings.Repeat("日本語テキスト", 20)
	for _, max := range []int{10, 11, 12, 13} {
		got := preview(s, max)
		assert.True(t, utf8.ValidString(got), "max=%d produced invalid UTF-8", max)
		assert.True(t, strings.HasSuffix(got, "…"))
	}
}
