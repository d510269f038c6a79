// internal/playback/state_test.go
package playback

import (
	"testing"

	"github.com/chillibeats/chilli/internal/catalog"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Mode{}, "Off"},
		{Mode{Loop: true}, "Loop"},
		{Mode{Shuffle: true}, "Shuffle"},
		{Mode{Loop: true, Shuffle: true}, "Loop+Shuffle"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestSnapshot_SameState_IgnoresVersion(t *testing.T) {
	cur := catalog.Track{ID: "a"}
	a := Snapshot{Version: 1, CurrentTrack: &cur, Playlist: tracks("a", "b"), CurrentIndex: 0}
	b := Snapshot{Version: 7, CurrentTrack: &cur, Playlist: tracks("a", "b"), CurrentIndex: 0}

	if !a.SameState(b) {
		t.Error("SameState() = false for snapshots differing only in Version")
	}

	b.IsLooping = true
	if a.SameState(b) {
		t.Error("SameState() = true for snapshots with different loop flags")
	}

	c := Snapshot{Playlist: tracks("a", "c"), CurrentIndex: 0, CurrentTrack: &cur}
	if a.SameState(c) {
		t.Error("SameState() = true for different playlists")
	}
}

func TestSnapshot_Helpers(t *testing.T) {
	cur := catalog.Track{ID: "b"}
	s := Snapshot{CurrentTrack: &cur, Playlist: tracks("a", "b"), CurrentIndex: 1}

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.CanSkip() {
		t.Error("CanSkip() = false with two tracks")
	}
	if !s.IsCurrent(catalog.Track{ID: "b"}) {
		t.Error("IsCurrent(b) = false")
	}
	if s.IsCurrent(catalog.Track{ID: "a"}) {
		t.Error("IsCurrent(a) = true")
	}
	if (Snapshot{}).IsCurrent(cur) {
		t.Error("empty snapshot reports a current track")
	}
}
