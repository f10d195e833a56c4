package index

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/martinolai/minisearch/internal/engine/tokenizer"
)

func TestTitleWeighting(t *testing.T) {
	ix := New()
	// Title terms are indexed twice, so each title occurrence counts double.
	ix.Add(0, []string{"cat", "cat"}, nil)

	if got := ix.Frequency(0, "cat"); got != 4 {
		t.Errorf(`Frequency(0, "cat") = %d, want 4`, got)
	}
	if got := ix.DocumentFrequency("cat"); got != 1 {
		t.Errorf(`DocumentFrequency("cat") = %d, want 1`, got)
	}
}

func TestWeightedStreamSum(t *testing.T) {
	ix := New()
	title := []string{"dog", "training"}
	content := []string{"training", "dog", "takes", "patience"}
	ix.Add(0, title, content)

	total := 0
	for _, term := range []string{"dog", "training", "takes", "patience"} {
		total += ix.Frequency(0, term)
	}
	if want := 2*len(title) + len(content); total != want {
		t.Errorf("sum of term counts = %d, want weighted stream length %d", total, want)
	}
}

func TestDocumentFrequencyInvariant(t *testing.T) {
	ix := New()
	docs := [][2][]string{
		{{"cats", "and", "dogs"}, {"cats", "are", "great", "pets"}},
		{{"dog", "training"}, {"training", "dog", "takes", "patience"}},
		{{"astronomy"}, {"stars", "and", "planets", "are", "far", "away"}},
		{{"dog", "dog"}, nil},
	}
	terms := make(map[string]struct{})
	for id, d := range docs {
		ix.Add(id, d[0], d[1])
		for _, term := range append(append([]string{}, d[0]...), d[1]...) {
			terms[term] = struct{}{}
		}
	}

	for term := range terms {
		df := ix.DocumentFrequency(term)
		candidates := ix.Candidates(term)
		if df != len(candidates) {
			t.Errorf("term %q: DocumentFrequency = %d, |Candidates| = %d", term, df, len(candidates))
		}
	}
}

func TestCandidatesSorted(t *testing.T) {
	ix := New()
	for id := 0; id < 6; id++ {
		ix.Add(id, []string{"shared"}, nil)
	}
	got := ix.Candidates("shared")
	want := []int{0, 1, 2, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %v, want %v", got, want)
	}
}

func TestUnindexedTerm(t *testing.T) {
	ix := New()
	ix.Add(0, []string{"cat"}, nil)

	if got := ix.Candidates("zebra"); len(got) != 0 {
		t.Errorf(`Candidates("zebra") = %v, want empty`, got)
	}
	if got := ix.Frequency(0, "zebra"); got != 0 {
		t.Errorf(`Frequency(0, "zebra") = %d, want 0`, got)
	}
	if got := ix.Frequency(7, "cat"); got != 0 {
		t.Errorf(`Frequency(7, "cat") = %d, want 0`, got)
	}
	if got := ix.DocumentFrequency("zebra"); got != 0 {
		t.Errorf(`DocumentFrequency("zebra") = %d, want 0`, got)
	}
}

func TestCounts(t *testing.T) {
	ix := New()
	ix.Add(0, []string{"alpha"}, []string{"beta", "gamma"})
	ix.Add(1, []string{"beta"}, []string{"delta"})

	if got := ix.DocumentCount(); got != 2 {
		t.Errorf("DocumentCount = %d, want 2", got)
	}
	if got := ix.TermCount(); got != 4 {
		t.Errorf("TermCount = %d, want 4", got)
	}
}

func BenchmarkIndexAdd(b *testing.B) {
	titleTerms := tokenizer.Tokenize("benchmark title")
	contentTerms := tokenizer.Tokenize("this is a benchmark document with several terms for testing indexing throughput")
	ix := New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ix.Add(i, titleTerms, contentTerms)
	}
}

func BenchmarkIndexCandidates(b *testing.B) {
	ix := New()
	for i := 0; i < 10000; i++ {
		ix.Add(i, []string{"search", "engine"}, []string{"search", "indexing", fmt.Sprintf("term%d", i)})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ix.Candidates("search")
	}
}
