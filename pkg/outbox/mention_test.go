package outbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMentions(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     []string
	}{
		{
			name:     "simple mention",
			markdown: "hey @sage can you look at this?",
			want:     []string{"sage"},
		},
		{
			name:     "multiple personas",
			markdown: "@sage and @scribe please compare notes",
			want:     []string{"sage", "scribe"},
		},
		{
			name:     "duplicate mention yields one slug",
			markdown: "@sage hello @sage again",
			want:     []string{"sage"},
		},
		{
			name:     "code span ignored",
			markdown: "use `@sage` to trigger, but I mean @scribe",
			want:     []string{"scribe"},
		},
		{
			name:     "fenced code block ignored",
			markdown: "```\nsend @sage a ping\n```\nreal ask: @scribe",
			want:     []string{"scribe"},
		},
		{
			name:     "mention inside emphasis",
			markdown: "please *@sage* respond",
			want:     []string{"sage"},
		},
		{
			name:     "email-like text still matches slug",
			markdown: "contact ops@sage-team today",
			want:     []string{"sage-team"},
		},
		{
			name:     "no mentions",
			markdown: "nothing to see here",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMentions(tt.markdown))
		})
	}
}
