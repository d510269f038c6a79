package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chillibeats/chilli/internal/errmsg"
	"github.com/chillibeats/chilli/internal/search"
)

func newSearchCmd(opts *options) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search artists, songs and genres",
		Long: `Search the catalog the same way the search popup does: weighted
keyword matches first, then fuzzy suggestions when nothing matches.
An empty query lists the popular picks.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			engine, err := search.FromSource(cat)
			if err != nil {
				return fmt.Errorf("%s: %w", errmsg.OpSearchIndex, err)
			}

			query := strings.Join(args, " ")
			results := engine.Popular()
			if strings.TrimSpace(query) != "" {
				results = engine.Search(query)
			}
			opts.log.Debug().Str("query", query).Int("results", len(results)).Msg("search")

			out := cmd.OutOrStdout()
			if jsonOut {
				if results == nil {
					results = []search.Result{}
				}
				return writeJSON(out, results)
			}
			if len(results) == 0 {
				_, err := fmt.Fprintln(out, "No matches")
				return err
			}
			t := NewTable(out, "TYPE", "TITLE", "DETAILS", "TARGET", "SCORE")
			for _, r := range results {
				score := strconv.Itoa(r.Relevance)
				if r.Fuzzy {
					score += "~"
				}
				t.Row(string(r.Kind), r.Title, r.Subtitle, r.Target, score)
			}
			return t.Flush()
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}
