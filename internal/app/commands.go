package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chillibeats/chilli/internal/playback"
)

// tickInterval is both the refresh period and the media clock step.
const tickInterval = 250 * time.Millisecond

// TickCmd returns a command that sends a TickMsg after tickInterval.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchSnapshots waits for the next snapshot from sub. Only the latest
// pending snapshot matters, so one outstanding read is enough.
func WatchSnapshots(sub *playback.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case snap := <-sub.Snapshots:
			return SnapshotMsg(snap)
		case <-sub.Done:
			return StoreClosedMsg{}
		}
	}
}
