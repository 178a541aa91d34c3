package update

import (
	"github.com/sandeepkv93/snaplist/internal/session"
	"github.com/sandeepkv93/snaplist/internal/views"
)

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}

func (m Model) renderTaskListView(theme views.Theme) string {
	return views.RenderTaskList(views.TaskListData{
		ListView: m.taskList.View(),
		Count:    len(m.Tasks),
		Focused:  m.Focus == FocusList,
	}, theme)
}

func (m Model) renderFormView(theme views.Theme) string {
	data := views.FormData{
		Editing:         m.draft.Mode() == session.ModeEdit,
		TitleView:       m.titleInput.View(),
		DescriptionView: m.descArea.View(),
		Focused:         m.Focus == FocusForm,
	}
	if att := m.draft.PendingMedia(); att != nil {
		data.Attached = true
		data.AttachmentName = att.DisplayName
	}
	return views.RenderForm(data, theme)
}

func (m Model) renderDetailView(theme views.Theme) string {
	return views.RenderDetail(views.DetailData{ContentView: m.detailViewport.View()}, theme)
}

func (m Model) renderPickerView(theme views.Theme) string {
	return views.RenderPicker(views.PickerData{
		Directory: m.filePicker.CurrentDirectory,
		View:      m.filePicker.View(),
	}, theme)
}
