package mpris

import (
	"sync"
	"testing"
	"testing/synctest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/playback"
)

type fakeEmitter struct {
	mu      sync.Mutex
	plays   int
	titles  int
	options int
}

func (f *fakeEmitter) OnPlayPause() error { return f.bump(&f.plays) }
func (f *fakeEmitter) OnTitle() error     { return f.bump(&f.titles) }
func (f *fakeEmitter) OnOptions() error   { return f.bump(&f.options) }

func (f *fakeEmitter) bump(n *int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	*n++
	return nil
}

func (f *fakeEmitter) counts() (plays, titles, options int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.plays, f.titles, f.options
}

func TestWatch_EmitsPerChange(t *testing.T) {
	tests := []struct {
		name        string
		act         func(playback.Service)
		wantPlays   int
		wantTitles  int
		wantOptions int
	}{
		{"toggle play", func(s playback.Service) { s.TogglePlay() }, 1, 0, 0},
		{"next track", func(s playback.Service) { s.PlayNext() }, 0, 1, 0},
		{"loop", func(s playback.Service) { s.ToggleLoop() }, 0, 0, 1},
		{"add track", func(s playback.Service) { s.AddToPlaylist(catalog.Track{ID: "c"}) }, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				store := playback.New()
				store.SetQueue([]catalog.Track{{ID: "a"}, {ID: "b"}}, 0)
				sub := store.Subscribe()
				emit := &fakeEmitter{}
				done := make(chan struct{})
				go func() {
					watch(sub, emit, zerolog.Nop())
					close(done)
				}()

				tt.act(store)
				synctest.Wait()

				plays, titles, options := emit.counts()
				assert.Equal(t, tt.wantPlays, plays, "OnPlayPause calls")
				assert.Equal(t, tt.wantTitles, titles, "OnTitle calls")
				assert.Equal(t, tt.wantOptions, options, "OnOptions calls")

				store.Unsubscribe(sub)
				<-done
			})
		})
	}
}

func TestWatch_ClearEmitsStatus(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		store.SetQueue([]catalog.Track{{ID: "a"}}, 0)
		sub := store.Subscribe()
		emit := &fakeEmitter{}
		go watch(sub, emit, zerolog.Nop())

		store.ClearPlaylist()
		synctest.Wait()

		plays, titles, _ := emit.counts()
		assert.Equal(t, 1, titles)
		assert.Equal(t, 1, plays, "losing the current track changes PlaybackStatus")

		store.Unsubscribe(sub)
	})
}
