// Package index maintains the inverted index and the frequency tables the
// scorer reads: term to document-id set, per-document term counts, and the
// per-term distinct-document counter.
package index

import "sort"

// Index is the in-memory inverted index. Title terms are indexed twice so
// title matches outrank body matches.
//
// The term-frequency tables are a dense slice keyed by document id: ids are
// assigned sequentially and documents are never deleted.
type Index struct {
	inverted map[string]map[int]struct{}
	termFreq []map[string]int
	docFreq  map[string]int
}

// New creates an empty index.
func New() *Index {
	return &Index{
		inverted: make(map[string]map[int]struct{}),
		docFreq:  make(map[string]int),
	}
}

// Add indexes a document's terms under the given id. The weighted token
// stream is titleTerms twice followed by contentTerms; every occurrence
// bumps the document's term count, while the document-frequency counter is
// bumped once per distinct term. Ids must arrive in insertion order.
func (ix *Index) Add(id int, titleTerms, contentTerms []string) {
	counts := make(map[string]int, len(titleTerms)+len(contentTerms))
	for _, term := range titleTerms {
		counts[term] += 2
	}
	for _, term := range contentTerms {
		counts[term]++
	}

	for id >= len(ix.termFreq) {
		ix.termFreq = append(ix.termFreq, nil)
	}
	ix.termFreq[id] = counts

	for term := range counts {
		docs, ok := ix.inverted[term]
		if !ok {
			docs = make(map[int]struct{})
			ix.inverted[term] = docs
		}
		docs[id] = struct{}{}
		ix.docFreq[term]++
	}
}

// Candidates returns the ids of documents containing term, sorted ascending.
// An unindexed term yields nil.
func (ix *Index) Candidates(term string) []int {
	docs, ok := ix.inverted[term]
	if !ok {
		return nil
	}
	ids := make([]int, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Frequency returns how many times term occurs in the document's weighted
// token stream, or 0 if it does not occur. Absence is not an error.
func (ix *Index) Frequency(id int, term string) int {
	if id < 0 || id >= len(ix.termFreq) {
		return 0
	}
	return ix.termFreq[id][term]
}

// DocumentFrequency returns the number of distinct documents containing term.
func (ix *Index) DocumentFrequency(term string) int {
	return ix.docFreq[term]
}

// DocumentCount returns the number of indexed documents.
func (ix *Index) DocumentCount() int {
	return len(ix.termFreq)
}

// TermCount returns the number of distinct terms in the inverted index.
func (ix *Index) TermCount() int {
	return len(ix.inverted)
}
