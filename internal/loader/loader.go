// Package loader ingests pipe-delimited corpus files into the engine and
// provides the built-in sample corpus.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/martinolai/minisearch/internal/engine"
	"github.com/martinolai/minisearch/pkg/logger"
)

// FromFile loads a corpus file where each line is "title|content|url" with
// the url optional. It returns how many lines were indexed and how many were
// skipped.
func FromFile(e *engine.Engine, path string) (loaded, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening corpus file %s: %w", path, err)
	}
	defer f.Close()
	loaded, skipped = FromReader(e, f)
	return loaded, skipped, nil
}

// FromReader indexes one document per pipe-delimited line, preserving line
// order so line order determines document ids. Lines without a delimiter are
// skipped, not treated as errors.
func FromReader(e *engine.Engine, r io.Reader) (loaded, skipped int) {
	log := logger.WithComponent("loader")
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		parts := strings.SplitN(line, "|", 3)
		if len(parts) < 2 {
			if strings.TrimSpace(line) != "" {
				log.Debug("skipping malformed corpus line", "line", lineNo)
			}
			skipped++
			continue
		}
		url := ""
		if len(parts) == 3 {
			url = parts[2]
		}
		e.AddDocument(parts[0], parts[1], url)
		loaded++
	}
	return loaded, skipped
}

// Seed loads the built-in sample corpus so the tool is usable without a
// corpus file. It returns the number of documents added.
func Seed(e *engine.Engine) int {
	docs := []struct {
		title, content, url string
	}{
		{
			"Introduction to Go Programming",
			"Go is a statically typed, compiled programming language designed for simplicity and reliability. It is used to build servers, command line tools, cloud services and much more.",
			"https://example.com/go-intro",
		},
		{
			"Search Algorithms",
			"Search algorithms are fundamental in computer science. They include linear search, binary search, and more complex algorithms like those used in web search engines.",
			"https://example.com/search-algorithms",
		},
		{
			"Data Structures in Practice",
			"Data structures are essential for organizing and managing data efficiently. Arrays, slices, maps, trees and many other structures each trade space for lookup speed differently.",
			"https://example.com/data-structures",
		},
		{
			"Machine Learning with Python",
			"Python is the most popular language for machine learning. Libraries like TensorFlow, PyTorch and scikit-learn make it easy to implement machine learning algorithms.",
			"https://example.com/ml-python",
		},
		{
			"Web Development with JavaScript",
			"JavaScript is essential for modern web development. It allows you to create interactive user interfaces and dynamic web applications. It is used in both frontend and backend.",
			"https://example.com/js-web",
		},
	}
	for _, d := range docs {
		e.AddDocument(d.title, d.content, d.url)
	}
	return len(docs)
}
