package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/martinolai/minisearch/internal/repl"
)

func newSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Run a single query and print ranked results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, shutdown, err := buildEngine()
			if err != nil {
				return err
			}
			defer shutdown()

			query := strings.Join(args, " ")
			results := e.Search(query, limit)
			repl.Render(os.Stdout, query, results)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum results (0 = configured default)")
	return cmd
}
