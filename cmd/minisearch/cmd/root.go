// Package cmd provides the CLI commands for minisearch.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/martinolai/minisearch/pkg/config"
	"github.com/martinolai/minisearch/pkg/logger"
)

var (
	cfg        *config.Config
	cfgPath    string
	corpusPath string
	logLevel   string
	logFormat  string
)

// NewRootCmd creates the root command. Running it with no subcommand starts
// the interactive search loop.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minisearch",
		Short: "In-memory TF-IDF document search",
		Long: `Minisearch indexes a corpus of short text documents in memory and
answers free-text queries with TF-IDF-ranked results and contextual
excerpts. Corpora are pipe-delimited files with one "title|content|url"
document per line; without a corpus file a small sample corpus is loaded.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(false, 0)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&corpusPath, "corpus", "", "path to pipe-delimited corpus file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// A missing .env file is fine.
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if corpusPath != "" {
			cfg.Corpus.Path = corpusPath
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if logFormat != "" {
			cfg.Logging.Format = logFormat
		}
		logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
		return nil
	}

	cmd.AddCommand(newReplCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newStatsCmd())
	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
