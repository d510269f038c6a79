package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/errmsg"
	"github.com/chillibeats/chilli/internal/ui/render"
)

// trackJSON is the JSON shape of one listed track.
type trackJSON struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Artist   string   `json:"artist"`
	ArtistID string   `json:"artistId"`
	Featured []string `json:"featuring,omitempty"`
	Genre    string   `json:"genre,omitempty"`
	Duration float64  `json:"duration"`
	URL      string   `json:"url"`
}

func newTracksCmd(opts *options) *cobra.Command {
	var (
		artist  string
		genre   string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "tracks",
		Short: "List catalog tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if artist != "" && genre != "" {
				return errors.New("--artist and --genre are mutually exclusive")
			}
			cat, err := opts.openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			var tracks []catalog.Track
			switch {
			case artist != "":
				tracks, err = cat.TracksByArtist(artist)
				if err != nil {
					return fmt.Errorf("%s: %w", errmsg.OpArtistLoad, err)
				}
				if len(tracks) == 0 {
					return fmt.Errorf("artist %q: %w", artist, catalog.ErrNotFound)
				}
			case genre != "":
				tracks, err = cat.TracksByGenre(genre)
				if err != nil {
					return fmt.Errorf("%s: %w", errmsg.OpGenreLoad, err)
				}
			default:
				tracks, err = cat.AllTracks()
				if err != nil {
					return fmt.Errorf("%s: %w", errmsg.OpCatalogLoad, err)
				}
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				rows := make([]trackJSON, len(tracks))
				for i, t := range tracks {
					rows[i] = trackJSON{
						ID:       t.ID,
						Title:    t.Title,
						Artist:   t.ArtistName,
						ArtistID: t.ArtistID,
						Featured: t.Featuring,
						Genre:    t.Genre,
						Duration: t.DurationSeconds,
						URL:      t.MediaURL,
					}
				}
				return writeJSON(out, rows)
			}

			t := NewTable(out, "ID", "TITLE", "ARTIST", "GENRE", "LENGTH")
			for _, tr := range tracks {
				t.Row(tr.ID, tr.Title, tr.Credits(), tr.Genre, render.FormatDuration(tr.Duration()))
			}
			return t.Flush()
		},
	}
	cmd.Flags().StringVar(&artist, "artist", "", "only tracks by this artist id")
	cmd.Flags().StringVar(&genre, "genre", "", "only tracks of this genre")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}
