// Package tokenizer provides text normalisation and tokenisation for the
// search engine. Normalisation is byte-wise and length-preserving: positions
// found in normalised text are valid offsets into the raw text, which the
// snippet extractor relies on.
package tokenizer

import "strings"

// minTermLength is the shortest token worth indexing. Shorter tokens are
// almost always noise ("a", "of", "is").
const minTermLength = 3

// Normalize lowercases ASCII letters, keeps digits and whitespace, and maps
// every other byte to a single space. The output has exactly the same length
// as the input.
func Normalize(text string) string {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			out[i] = c
		case c >= 'A' && c <= 'Z':
			out[i] = c + ('a' - 'A')
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
			out[i] = c
		default:
			out[i] = ' '
		}
	}
	return string(out)
}

// Tokenize normalises text and splits it into terms, dropping tokens shorter
// than minTermLength. It is deterministic and preserves occurrence order; an
// empty input yields no terms.
func Tokenize(text string) []string {
	fields := strings.Fields(Normalize(text))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= minTermLength {
			terms = append(terms, f)
		}
	}
	return terms
}
