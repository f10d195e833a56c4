package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Load the corpus and print index statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, shutdown, err := buildEngine()
			if err != nil {
				return err
			}
			defer shutdown()

			stats := e.Stats()
			fmt.Fprintln(os.Stdout, "=== Search Engine Statistics ===")
			fmt.Fprintf(os.Stdout, "Indexed documents: %d\n", stats.Documents)
			fmt.Fprintf(os.Stdout, "Unique terms:      %d\n", stats.Terms)
			return nil
		},
	}
}
