// Package rank computes TF-IDF relevance scores and orders scored documents.
package rank

import (
	"math"
	"sort"
)

// ScoredDoc is a document id with its aggregate relevance score.
type ScoredDoc struct {
	DocID int
	Score float64
}

// Score computes the TF-IDF weight for a single (term, document) pair from
// the raw term frequency tf, the term's document frequency df, and the total
// document count n.
//
// A tf of 0 means the term is absent from the document: zero relevance, not
// an error. A df of 0 can only happen on a term never indexed; it is treated
// as zero relevance as well rather than dividing by zero. A term present in
// every document scores ln(1) = 0 regardless of tf.
func Score(tf, df, n int) float64 {
	if tf == 0 || df == 0 || n == 0 {
		return 0
	}
	idf := math.Log(float64(n) / float64(df))
	return float64(tf) * idf
}

// Rank orders accumulated per-document scores by descending score, breaking
// ties by ascending document id, and truncates to limit entries. A
// non-positive limit disables truncation.
func Rank(scores map[int]float64, limit int) []ScoredDoc {
	ranked := make([]ScoredDoc, 0, len(scores))
	for id, score := range scores {
		ranked = append(ranked, ScoredDoc{DocID: id, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].DocID < ranked[j].DocID
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
