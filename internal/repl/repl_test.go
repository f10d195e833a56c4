package repl

import (
	"strings"
	"testing"

	"github.com/martinolai/minisearch/internal/engine"
	"github.com/martinolai/minisearch/pkg/config"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	cfg := &config.Config{
		Search:  config.SearchConfig{DefaultLimit: 10},
		Snippet: config.SnippetConfig{Width: 150, Context: 75},
	}
	e, err := engine.New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	e.AddDocument("Dog Training", "Training a dog takes patience.", "https://example.com/dogs")
	return e
}

func TestRunQueryAndQuit(t *testing.T) {
	e := newTestEngine(t)
	var out strings.Builder
	r := New(e, strings.NewReader("dog\nquit\n"), &out, 10)

	if err := r.Run(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, `=== Results for: "dog" ===`) {
		t.Errorf("missing results header in output:\n%s", got)
	}
	if !strings.Contains(got, "Dog Training") {
		t.Errorf("missing result title in output:\n%s", got)
	}
	if !strings.Contains(got, "https://example.com/dogs") {
		t.Errorf("missing result URL in output:\n%s", got)
	}
	if !strings.Contains(got, "bye") {
		t.Errorf("missing farewell in output:\n%s", got)
	}
}

func TestEmptyLineIgnored(t *testing.T) {
	e := newTestEngine(t)
	var out strings.Builder
	r := New(e, strings.NewReader("\n\nexit\n"), &out, 10)

	if err := r.Run(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "Results for") {
		t.Errorf("empty lines must not trigger a search:\n%s", out.String())
	}
}

func TestEOFTerminates(t *testing.T) {
	e := newTestEngine(t)
	var out strings.Builder
	r := New(e, strings.NewReader("dog"), &out, 10)
	if err := r.Run(); err != nil {
		t.Fatal(err)
	}
}

func TestZeroMatchQuery(t *testing.T) {
	e := newTestEngine(t)
	var out strings.Builder
	r := New(e, strings.NewReader("xylophone\nquit\n"), &out, 10)

	if err := r.Run(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Found 0 results") {
		t.Errorf("zero-match query should report 0 results:\n%s", out.String())
	}
}
