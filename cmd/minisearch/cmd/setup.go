package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/martinolai/minisearch/internal/engine"
	"github.com/martinolai/minisearch/internal/loader"
	"github.com/martinolai/minisearch/pkg/metrics"
)

// buildEngine constructs the engine, loads the corpus, and starts the
// metrics server when enabled. The returned shutdown function stops the
// metrics server.
func buildEngine() (*engine.Engine, func(), error) {
	var m *metrics.Metrics
	shutdown := func() {}
	if cfg.Metrics.Enabled {
		m = metrics.New()
		stop := metrics.StartServer(cfg.Metrics.Port)
		shutdown = func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := stop(ctx); err != nil {
				slog.Error("metrics server shutdown error", "error", err)
			}
		}
	}

	e, err := engine.New(cfg, m)
	if err != nil {
		shutdown()
		return nil, nil, err
	}

	if cfg.Corpus.Path != "" {
		loaded, skipped, err := loader.FromFile(e, cfg.Corpus.Path)
		if err != nil {
			shutdown()
			return nil, nil, err
		}
		slog.Info("corpus loaded", "path", cfg.Corpus.Path, "documents", loaded, "skipped_lines", skipped)
	} else {
		n := loader.Seed(e)
		slog.Info("sample corpus loaded", "documents", n)
	}
	return e, shutdown, nil
}
