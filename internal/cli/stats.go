package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/errmsg"
	"github.com/chillibeats/chilli/internal/ui/render"
)

func newStatsCmd(opts *options) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := opts.openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			s, err := cat.Stats()
			if err != nil {
				return fmt.Errorf("%s: %w", errmsg.OpCatalogStats, err)
			}

			out := cmd.OutOrStdout()
			t := NewTable(out)
			t.Row("Tracks:", humanize.Comma(int64(s.TotalTracks)))
			t.Row("Artists:", humanize.Comma(int64(s.TotalArtists)))
			t.Row("Size:", humanize.Bytes(uint64(max(s.TotalBytes, 0))))
			t.Row("Length:", render.FormatDuration(s.TotalLength))
			if !s.LastUpdated.IsZero() {
				t.Row("Updated:", s.LastUpdated.Format(time.DateOnly)+" ("+humanize.Time(s.LastUpdated)+")")
			}
			if err := t.Flush(); err != nil {
				return err
			}

			if top <= 0 || len(s.Artists) == 0 {
				return nil
			}
			fmt.Fprintln(out)
			ranked := slices.Clone(s.Artists)
			slices.SortStableFunc(ranked, func(a, b catalog.ArtistStats) int {
				return cmp.Compare(b.TrackCount, a.TrackCount)
			})
			artists := NewTable(out, "ARTIST", "TRACKS")
			for _, a := range ranked[:min(top, len(ranked))] {
				artists.Row(a.Name, strconv.Itoa(a.TrackCount))
			}
			return artists.Flush()
		},
	}
	cmd.Flags().IntVar(&top, "top", 5, "number of artists to list by track count (0 to hide)")
	return cmd
}
