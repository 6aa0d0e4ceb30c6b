package agent

import (
	"fmt"
	"unicode/utf8"

	"github.com/loomchat/companion/pkg/models"
)

const truncationMarker = "\n\n[content truncated]"

// truncateHistory applies the two-stage deterministic truncation: first cap
// every individual message, then walk from the newest backward until the
// aggregate budget is spent. The newest message always survives. Older
// messages are dropped outright; the rolling summary service preserves their
// substance out-of-band.
func truncateHistory(msgs []models.ConversationMessage, maxSingle, maxTotal int) []models.ConversationMessage {
	if len(msgs) == 0 {
		return msgs
	}

	capped := make([]models.ConversationMessage, len(msgs))
	for i, m := range msgs {
		m.Content = capContent(m.Content, maxSingle)
		capped[i] = m
	}

	total := 0
	for _, m := range capped {
		total += m.Content.Len()
	}
	if total <= maxTotal {
		return capped
	}

	// Newest backward; cut is the index of the oldest kept message.
	cut := len(capped) - 1
	budget := maxTotal - capped[cut].Content.Len()
	for i := cut - 1; i >= 0; i-- {
		size := capped[i].Content.Len()
		if size > budget {
			break
		}
		budget -= size
		cut = i
	}

	// The window must not open with tool results whose assistant tool_use
	// turn was dropped; providers reject a tool_result with no matching
	// tool_use before it.
	for cut < len(capped)-1 && capped[cut].Role == models.RoleTool {
		cut++
	}
	if capped[cut].Role == models.RoleTool {
		// The whole tail is tool results; keep the assistant turn that
		// issued them even though it exceeds the budget.
		for cut > 0 && capped[cut].Role == models.RoleTool {
			cut--
		}
	}
	return capped[cut:]
}

// capContent truncates text head-first with an explicit marker. Non-text
// parts are kept verbatim; only text parts shrink.
func capContent(c models.Content, maxSingle int) models.Content {
	if !c.IsMultipart() {
		if len(c.Text) <= maxSingle {
			return c
		}
		return models.TextContent(truncateText(c.Text, maxSingle))
	}

	budget := maxSingle
	parts := make([]models.Part, 0, len(c.Parts))
	for _, p := range c.Parts {
		if p.Type != models.PartText {
			parts = append(parts, p)
			continue
		}
		if len(p.Text) <= budget {
			budget -= len(p.Text)
			parts = append(parts, p)
			continue
		}
		if budget > 0 {
			p.Text = truncateText(p.Text, budget)
			parts = append(parts, p)
		}
		budget = 0
	}
	return models.MultipartContent(parts...)
}

func truncateText(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	keep := maxLen - len(truncationMarker)
	if keep < 0 {
		keep = 0
	}
	// Never split a rune at the cut point.
	for keep > 0 && !utf8.RuneStart(s[keep]) {
		keep--
	}
	return fmt.Sprintf("%s%s", s[:keep], truncationMarker)
}
