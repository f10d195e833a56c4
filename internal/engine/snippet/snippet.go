// Package snippet extracts bounded excerpts of document content centred on
// the first query-term match.
package snippet

import (
	"strings"

	"github.com/martinolai/minisearch/internal/engine/tokenizer"
)

// Defaults for excerpt extraction: up to Width characters, starting Context
// characters before the match.
const (
	DefaultWidth   = 150
	DefaultContext = 75
)

// Generator extracts excerpts with a fixed window geometry.
type Generator struct {
	Width   int
	Context int
}

// NewGenerator returns a Generator, substituting defaults for non-positive
// dimensions.
func NewGenerator(width, context int) Generator {
	if width <= 0 {
		width = DefaultWidth
	}
	if context < 0 {
		context = DefaultContext
	}
	return Generator{Width: width, Context: context}
}

// Extract returns an excerpt of content around the first query term that
// matches. Terms are tried in the order given; the first one found anywhere
// in the normalised content wins. When no term matches, the excerpt is taken
// from the start of the content.
//
// Matching runs on the normalised content but the excerpt is sliced from the
// raw content. Normalisation is length-preserving, so offsets line up.
func (g Generator) Extract(content string, queryTerms []string) string {
	normalized := tokenizer.Normalize(content)

	matchPos := 0
	for _, term := range queryTerms {
		if pos := strings.Index(normalized, term); pos >= 0 {
			matchPos = pos
			break
		}
	}

	start := 0
	if matchPos > g.Context {
		start = matchPos - g.Context
	}
	length := len(content) - start
	if length > g.Width {
		length = g.Width
	}

	excerpt := content[start : start+length]
	if start > 0 {
		excerpt = "..." + excerpt
	}
	if start+length < len(content) {
		excerpt += "..."
	}
	return excerpt
}
