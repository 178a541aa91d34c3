package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/snaplist/internal/store"
)

func waitForSnapshotCmd(ch <-chan store.Snapshot) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return SnapshotMsg{Snapshot: snap}
	}
}

// applySnapshot replaces the visible collection. Snapshots older than the one
// already shown are ignored.
func (m Model) applySnapshot(snap store.Snapshot) Model {
	if snap.Version <= m.Version {
		return m
	}
	m.Version = snap.Version
	m.Tasks = snap.Tasks
	m.clampCursor()
	if m.viewer.IsOpen() {
		m.refreshDetail()
	}
	return m
}
