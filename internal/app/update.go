package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chillibeats/chilli/internal/keymap"
	"github.com/chillibeats/chilli/internal/playback"
	"github.com/chillibeats/chilli/internal/ui/action"
	"github.com/chillibeats/chilli/internal/ui/confirm"
	"github.com/chillibeats/chilli/internal/ui/helpbindings"
	"github.com/chillibeats/chilli/internal/ui/queuepanel"
	"github.com/chillibeats/chilli/internal/ui/searchpopup"
	"github.com/chillibeats/chilli/internal/ui/tracklist"
)

// clearPlaylistContext tags the confirm popup opened by the playlist panel.
type clearPlaylistContext struct{}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.Layout.SetSize(msg.Width, msg.Height)
		m.Popups.SetSize(msg.Width, msg.Height)
		m.resizePages()
		return m, nil
	case TickMsg:
		m.Player.Advance(tickInterval)
		return m, TickCmd()
	case SnapshotMsg:
		m.handleSnapshot(playback.Snapshot(msg))
		return m, WatchSnapshots(m.Sub)
	case StoreClosedMsg:
		m.log.Debug().Msg("store subscription closed")
		return m, nil
	case action.Msg:
		return m.handleAction(msg)
	}
	return m, m.Popups.Update(msg)
}

// handleKeyMsg routes keys: popups first, then app-level bindings, then the
// focused panel.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	if act := m.Keys.Resolve(msg.String()); act != "" {
		if cmd, handled := m.handleAppAction(act); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	if m.Focus == FocusQueue && m.Layout.IsQueueVisible() {
		*m.Layout.QueuePanel(), cmd = m.Layout.QueuePanel().Update(msg)
		return m, cmd
	}
	page := m.Nav.Current()
	page.List, cmd = page.List.Update(msg)
	return m, cmd
}

// handleAppAction runs a global, playback or song-page action. It reports
// false when the action does not apply here.
func (m *Model) handleAppAction(act keymap.Action) (tea.Cmd, bool) {
	switch act {
	case keymap.ActionQuit:
		return tea.Quit, true
	case keymap.ActionSwitchFocus:
		m.switchFocus()
	case keymap.ActionToggleQueue:
		m.Layout.ToggleQueue()
		if !m.Layout.IsQueueVisible() {
			m.Focus = FocusPage
		}
		m.resizePages()
		m.applyFocus()
	case keymap.ActionSearch:
		return m.Popups.ShowSearch(), true
	case keymap.ActionHelp:
		m.Popups.ShowHelp(m.helpContexts())
	case keymap.ActionBack:
		m.GoBack()
	case keymap.ActionFullPlayer:
		m.OpenFullPlayer()
	case keymap.ActionRandomSong:
		m.OpenRandomSong()

	case keymap.ActionPlayPause:
		m.Player.TogglePlay()
	case keymap.ActionNextTrack:
		m.Player.Next()
	case keymap.ActionPrevTrack:
		m.Player.Previous()
	case keymap.ActionSeekForward:
		m.SeekBy(m.Config.SeekStep())
	case keymap.ActionSeekBack:
		m.SeekBy(-m.Config.SeekStep())
	case keymap.ActionVolumeUp:
		m.ChangeVolume(m.Config.VolumeStep())
	case keymap.ActionVolumeDown:
		m.ChangeVolume(-m.Config.VolumeStep())
	case keymap.ActionToggleMute:
		m.ToggleMute()
	case keymap.ActionToggleLoop:
		m.Store.ToggleLoop()
	case keymap.ActionToggleShuffle:
		m.Store.ToggleShuffle()
	case keymap.ActionRetry:
		m.Retry()

	case keymap.ActionNextSong, keymap.ActionPrevSong:
		if m.Nav.Current().Kind != PageSong {
			return nil, false
		}
		m.StepSong(act == keymap.ActionNextSong)
	default:
		return nil, false
	}
	return nil, true
}

// handleSnapshot renders a new store state and lets the surfaces follow it.
func (m *Model) handleSnapshot(snap playback.Snapshot) {
	if snap.Version < m.Snapshot.Version {
		return
	}
	m.Snapshot = snap
	m.Player.Sync(snap)
	m.Layout.QueuePanel().SetSnapshot(snap)
	m.applyCurrentMarker()
	if m.NowPlaying != nil {
		m.NowPlaying.Update(snap)
	}
}

// handleAction dispatches component actions.
func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case tracklist.OpenSong:
		m.OpenSong(a.Track)
	case tracklist.AddTrack:
		m.AddToPlaylist(a.Track)
	case tracklist.OpenArtist:
		m.OpenArtist(a.ArtistID, a.Name)
	case tracklist.PlayAll:
		m.PlayAll(a.Tracks, a.Index)

	case queuepanel.JumpToTrack:
		m.JumpTo(a.Index)
	case queuepanel.RemoveTrack:
		m.RemoveFromPlaylist(a.TrackID)
	case queuepanel.ClearPlaylist:
		m.Popups.ShowConfirm("Clear playlist?",
			clearMessage(a.Count), clearPlaylistContext{})

	case confirm.Result:
		if _, ok := a.Context.(clearPlaylistContext); ok && a.Confirmed {
			m.ClearPlaylist()
		}

	case searchpopup.Selected:
		m.Popups.HideSearch()
		m.OpenSearchResult(a.Result)
	case searchpopup.Canceled:
		m.Popups.HideSearch()

	case helpbindings.Close:
		m.Popups.HideHelp()

	default:
		m.log.Debug().Str("source", msg.Source).Str("action", msg.Action.ActionType()).Msg("unhandled action")
	}
	return m, nil
}
