package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/snaplist/internal/model"
	"github.com/sandeepkv93/snaplist/internal/views"
)

func (m Model) handleDetailKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc", "enter", "q":
		return m.closeDetail()
	case m.Keys.Theme:
		return m.toggleTheme()
	case m.Keys.Palette:
		return m.openPalette()
	}
	m.detailViewport, _ = m.detailViewport.Update(msg)
	return m
}

func (m Model) openDetail(task model.Task) Model {
	m.viewer.Open(task)
	m.refreshDetail()
	m.detailViewport.GotoTop()
	m.Focus = FocusDetail
	return m
}

func (m Model) closeDetail() Model {
	m.viewer.Close()
	m.detailViewport.SetContent("")
	m.Focus = FocusList
	return m
}

// refreshDetail re-renders the open snapshot. The snapshot itself is not
// refreshed; only the deleted marker follows the collection.
func (m *Model) refreshDetail() {
	snap, ok := m.viewer.Current()
	if !ok {
		return
	}
	theme := views.ThemeFor(m.DarkMode)
	data := views.DetailData{
		Title:     snap.Title,
		Completed: snap.Completed,
		Body:      views.RenderMarkdown(snap.Description, m.DarkMode, m.detailViewport.Width-2),
		Stale:     m.viewer.Stale(m.Tasks),
	}
	if snap.Media != nil && snap.Media.IsImage() {
		data.HasImage = true
		data.ImageName = snap.Media.DisplayName
		data.ImageURI = snap.Media.URI
	}
	m.detailViewport.SetContent(views.DetailBody(data, theme))
}
