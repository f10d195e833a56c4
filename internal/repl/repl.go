// Package repl implements the plain line-oriented interactive search loop
// used when the TUI is not wanted (pipes, scripts, dumb terminals).
package repl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/martinolai/minisearch/internal/engine"
	"github.com/martinolai/minisearch/pkg/logger"
)

// REPL reads queries line by line and prints ranked results. The literal
// inputs "quit" and "exit" end the loop; empty lines are ignored.
type REPL struct {
	engine *engine.Engine
	in     io.Reader
	out    io.Writer
	limit  int
	logger *slog.Logger
}

// New creates a REPL over the given engine and streams.
func New(e *engine.Engine, in io.Reader, out io.Writer, limit int) *REPL {
	return &REPL{
		engine: e,
		in:     in,
		out:    out,
		limit:  limit,
		logger: logger.WithComponent("repl"),
	}
}

// Run processes queries until EOF or a quit command.
func (r *REPL) Run() error {
	stats := r.engine.Stats()
	fmt.Fprintf(r.out, "minisearch: %d documents, %d terms indexed\n", stats.Documents, stats.Terms)

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "\nsearch> ")
		if !scanner.Scan() {
			break
		}
		query := scanner.Text()
		if query == "quit" || query == "exit" {
			break
		}
		if query == "" {
			continue
		}
		results := r.engine.Search(query, r.limit)
		r.logger.Debug("query executed", "query", query, "results", len(results))
		Render(r.out, query, results)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading query input: %w", err)
	}
	fmt.Fprintln(r.out, "bye")
	return nil
}

// Render prints ranked results in the one-shot / REPL text format.
func Render(w io.Writer, query string, results []engine.SearchResult) {
	fmt.Fprintf(w, "\n=== Results for: %q ===\n", query)
	fmt.Fprintf(w, "Found %d results\n\n", len(results))
	for i, res := range results {
		fmt.Fprintf(w, "[%d] %s\n", i+1, res.Title)
		if res.URL != "" {
			fmt.Fprintf(w, "    URL: %s\n", res.URL)
		}
		fmt.Fprintf(w, "    %s\n", res.Snippet)
		fmt.Fprintf(w, "    Score: %.3f\n\n", res.Score)
	}
}
