package app

import "fmt"

// switchFocus moves list keys between the page and the playlist panel.
func (m *Model) switchFocus() {
	if !m.Layout.IsQueueVisible() {
		m.Focus = FocusPage
	} else if m.Focus == FocusPage {
		m.Focus = FocusQueue
	} else {
		m.Focus = FocusPage
	}
	m.applyFocus()
}

// applyFocus propagates the focus target to the components.
func (m *Model) applyFocus() {
	queueFocused := m.Focus == FocusQueue && m.Layout.IsQueueVisible()
	m.Layout.QueuePanel().SetFocused(queueFocused)
	for _, p := range m.Nav.Pages() {
		p.List.SetFocused(false)
	}
	m.Nav.Current().List.SetFocused(!queueFocused)
}

// helpContexts lists the binding groups that apply to the visible page.
func (m *Model) helpContexts() []string {
	contexts := []string{"global", "playback", "list"}
	if m.Layout.IsQueueVisible() {
		contexts = append(contexts, "queue")
	}
	if m.Nav.Current().Kind == PageSong {
		contexts = append(contexts, "song")
	}
	return contexts
}

// applyCurrentMarker marks the current track in every page list.
func (m *Model) applyCurrentMarker() {
	id := ""
	if m.Snapshot.CurrentTrack != nil {
		id = m.Snapshot.CurrentTrack.ID
	}
	for _, p := range m.Nav.Pages() {
		p.List.SetCurrent(id)
	}
}

func clearMessage(count int) string {
	if count == 1 {
		return "Remove the only song from the playlist?"
	}
	return fmt.Sprintf("Remove all %d songs from the playlist?", count)
}

func (m *Model) setStatus(msg string) {
	m.StatusMsg = msg
	m.StatusErr = false
}

func (m *Model) setError(msg string) {
	m.log.Warn().Msg(msg)
	m.StatusMsg = msg
	m.StatusErr = true
}

func (m *Model) clearStatus() {
	m.StatusMsg = ""
	m.StatusErr = false
}
