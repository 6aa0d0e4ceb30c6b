package outbox

import (
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var mentionPattern = regexp.MustCompile(`@([A-Za-z0-9][A-Za-z0-9_-]{0,63})`)

// ExtractMentions returns the @slug mentions in a markdown document, in
// first-appearance order with duplicates removed. Mentions inside code
// spans and code blocks are ignored, so pasted snippets never trigger a
// persona.
func ExtractMentions(markdown string) []string {
	source := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var slugs []string
	seen := make(map[string]bool)
	collect := func(segment string) {
		for _, m := range mentionPattern.FindAllStringSubmatch(segment, -1) {
			slug := m[1]
			if !seen[slug] {
				seen[slug] = true
				slugs = append(slugs, slug)
			}
		}
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindCodeSpan, ast.KindCodeBlock, ast.KindFencedCodeBlock:
			return ast.WalkSkipChildren, nil
		case ast.KindText:
			t := n.(*ast.Text)
			collect(string(t.Segment.Value(source)))
		}
		return ast.WalkContinue, nil
	})

	return slugs
}
