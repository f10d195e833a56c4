package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/martinolai/minisearch/internal/repl"
	"github.com/martinolai/minisearch/internal/tui"
)

func newReplCmd() *cobra.Command {
	var plain bool
	var limit int

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive search loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(plain, limit)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "line-oriented REPL instead of the TUI")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum results per query (0 = configured default)")
	return cmd
}

func runRepl(plain bool, limit int) error {
	e, shutdown, err := buildEngine()
	if err != nil {
		return err
	}
	defer shutdown()

	if limit <= 0 {
		limit = cfg.Search.DefaultLimit
	}

	if plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		return repl.New(e, os.Stdin, os.Stdout, limit).Run()
	}

	program := tea.NewProgram(tui.New(e, limit), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
