// Package engine implements the document indexing and ranked-retrieval core:
// it owns the document store, the inverted index and its frequency tables,
// and runs the tokenize-retrieve-score-rank-excerpt pipeline at query time.
package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/martinolai/minisearch/internal/engine/cache"
	"github.com/martinolai/minisearch/internal/engine/index"
	"github.com/martinolai/minisearch/internal/engine/rank"
	"github.com/martinolai/minisearch/internal/engine/snippet"
	"github.com/martinolai/minisearch/internal/engine/store"
	"github.com/martinolai/minisearch/internal/engine/tokenizer"
	"github.com/martinolai/minisearch/pkg/config"
	"github.com/martinolai/minisearch/pkg/logger"
	"github.com/martinolai/minisearch/pkg/metrics"
)

// SearchResult is one ranked hit. It is built fresh per query and never
// stored.
type SearchResult struct {
	DocumentID int
	Score      float64
	Title      string
	Snippet    string
	URL        string
}

// Stats summarises the index for reporting surfaces.
type Stats struct {
	Documents   int
	Terms       int
	CacheHits   int64
	CacheMisses int64
}

// Engine owns all mutable search state. Inserts take the write lock, queries
// the read lock; each operation runs to completion before returning.
type Engine struct {
	mu      sync.RWMutex
	store   *store.Store
	index   *index.Index
	snip    snippet.Generator
	cache   *cache.Query[[]SearchResult]
	metrics *metrics.Metrics
	logger  *slog.Logger

	defaultLimit int
	maxResults   int
}

// New creates an empty engine from configuration. m may be nil when metrics
// are disabled.
func New(cfg *config.Config, m *metrics.Metrics) (*Engine, error) {
	e := &Engine{
		store:        store.New(),
		index:        index.New(),
		snip:         snippet.NewGenerator(cfg.Snippet.Width, cfg.Snippet.Context),
		metrics:      m,
		logger:       logger.WithComponent("engine"),
		defaultLimit: cfg.Search.DefaultLimit,
		maxResults:   cfg.Search.MaxResults,
	}
	if e.defaultLimit <= 0 {
		e.defaultLimit = 10
	}
	if cfg.Cache.Enabled {
		c, err := cache.New[[]SearchResult](cfg.Cache.Size)
		if err != nil {
			return nil, err
		}
		e.cache = c
	}
	return e, nil
}

// AddDocument tokenizes and indexes a document, assigning it the next
// sequential id. Any insertion changes the idf of every term, so the query
// cache is purged wholesale.
func (e *Engine) AddDocument(title, content, url string) int {
	titleTerms := tokenizer.Tokenize(title)
	contentTerms := tokenizer.Tokenize(content)

	e.mu.Lock()
	id := e.store.Insert(title, content, url)
	e.index.Add(id, titleTerms, contentTerms)
	termCount := e.index.TermCount()
	e.mu.Unlock()

	if e.cache != nil {
		e.cache.Purge()
	}
	if e.metrics != nil {
		e.metrics.DocsIndexedTotal.Inc()
		e.metrics.IndexedTerms.Set(float64(termCount))
	}
	e.logger.Debug("document indexed",
		"doc_id", id,
		"title_terms", len(titleTerms),
		"content_terms", len(contentTerms),
	)
	return id
}

// Search runs a free-text query and returns ranked results, best first.
//
// Every query term contributes its candidates (implicit OR); scores are
// summed per occurrence, so a term repeated in the query counts repeatedly,
// matching how repeated emphasis reads. Ties break on ascending document id.
// A non-positive limit falls back to the configured default.
func (e *Engine) Search(query string, limit int) []SearchResult {
	start := time.Now()
	terms := tokenizer.Tokenize(query)
	if limit <= 0 {
		limit = e.defaultLimit
	}
	if e.maxResults > 0 && limit > e.maxResults {
		limit = e.maxResults
	}

	if e.cache == nil {
		results := e.runQuery(terms, limit)
		e.observeSearch(start, "disabled", len(results))
		return results
	}

	key := cache.Key(terms, limit)
	results, hit, _ := e.cache.GetOrCompute(key, func() ([]SearchResult, error) {
		return e.runQuery(terms, limit), nil
	})
	status := "miss"
	if hit {
		status = "hit"
	}
	if e.metrics != nil {
		if hit {
			e.metrics.CacheHitsTotal.Inc()
		} else {
			e.metrics.CacheMissesTotal.Inc()
		}
	}
	e.observeSearch(start, status, len(results))
	return results
}

func (e *Engine) runQuery(terms []string, limit int) []SearchResult {
	e.mu.RLock()
	defer e.mu.RUnlock()

	n := e.store.Len()
	scores := make(map[int]float64)
	for _, term := range terms {
		df := e.index.DocumentFrequency(term)
		for _, id := range e.index.Candidates(term) {
			scores[id] += rank.Score(e.index.Frequency(id, term), df, n)
		}
	}

	ranked := rank.Rank(scores, limit)
	results := make([]SearchResult, 0, len(ranked))
	for _, sd := range ranked {
		doc, err := e.store.Get(sd.DocID)
		if err != nil {
			// Candidate ids come straight from the index.
			e.logger.Error("candidate id missing from store", "doc_id", sd.DocID, "error", err)
			continue
		}
		results = append(results, SearchResult{
			DocumentID: doc.ID,
			Score:      sd.Score,
			Title:      doc.Title,
			Snippet:    e.snip.Extract(doc.Content, terms),
			URL:        doc.URL,
		})
	}
	return results
}

// Document returns a stored document by id.
func (e *Engine) Document(id int) (store.Document, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Get(id)
}

// DocumentCount returns the number of indexed documents.
func (e *Engine) DocumentCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Len()
}

// TermCount returns the number of distinct indexed terms.
func (e *Engine) TermCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.index.TermCount()
}

// Stats returns index and cache statistics.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	docs := e.store.Len()
	terms := e.index.TermCount()
	e.mu.RUnlock()

	s := Stats{Documents: docs, Terms: terms}
	if e.cache != nil {
		s.CacheHits, s.CacheMisses = e.cache.Stats()
	}
	return s
}

func (e *Engine) observeSearch(start time.Time, cacheStatus string, resultCount int) {
	if e.metrics == nil {
		return
	}
	resultType := "hit"
	if resultCount == 0 {
		resultType = "zero_result"
	}
	e.metrics.SearchQueriesTotal.WithLabelValues(resultType).Inc()
	e.metrics.SearchLatency.WithLabelValues(cacheStatus).Observe(time.Since(start).Seconds())
	e.metrics.SearchResultsCount.Observe(float64(resultCount))
}
