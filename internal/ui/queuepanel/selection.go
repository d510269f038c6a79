package queuepanel

// SyncCursor moves the cursor to the current track.
func (m *Model) SyncCursor() {
	if idx := m.snap.CurrentIndex; idx >= 0 && idx < m.snap.Len() {
		m.cursor.Follow(idx, m.snap.Len(), m.listHeight())
	}
}

// CursorPos returns the cursor position.
func (m Model) CursorPos() int {
	return m.cursor.Pos()
}
