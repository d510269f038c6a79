// Package errmsg turns errors into the one-line messages shown in the
// status bar and logged by the CLI.
package errmsg

import "fmt"

// Op names the operation that failed, phrased to follow "Failed to".
type Op string

const (
	OpCatalogLoad  Op = "load catalog"
	OpCatalogStats Op = "compute catalog statistics"
	OpArtistLoad   Op = "load artist"
	OpTrackLoad    Op = "load song"
	OpGenreLoad    Op = "load genre"
	OpRandomTrack  Op = "pick a random song"
	OpSearchIndex  Op = "build search index"

	OpPlaybackStart Op = "start playback"

	OpNotify     Op = "show notification"
	OpMPRISStart Op = "start media remote"

	OpConfigLoad Op = "load configuration"
	OpLogSetup   Op = "set up logging"
	OpInitialize Op = "initialize application"
)

// Format returns "Failed to <op>: <err>", or "" for a nil err.
func Format(op Op, err error) string {
	return FormatWith(op, "", err)
}

// FormatWith is Format naming the subject of op, such as an artist id.
func FormatWith(op Op, subject string, err error) string {
	switch {
	case err == nil:
		return ""
	case subject == "":
		return fmt.Sprintf("Failed to %s: %v", op, err)
	default:
		return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
	}
}
