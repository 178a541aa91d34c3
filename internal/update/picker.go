package update

import (
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/snaplist/internal/media"
	"github.com/sandeepkv93/snaplist/internal/model"
)

// pickMediaCmd runs p off the update loop. A cancelled pick reports
// PickCancelledMsg and never touches the pending attachment.
func pickMediaCmd(p media.Picker) tea.Cmd {
	return func() tea.Msg {
		att, err := p.Pick(opContext())
		switch {
		case errors.Is(err, media.ErrCancelled):
			return PickCancelledMsg{}
		case err != nil:
			return PickFailedMsg{Err: err}
		case att == nil:
			return PickCancelledMsg{}
		}
		return PickedMediaMsg{Media: att}
	}
}

func (m Model) openPicker(from Focus) (Model, tea.Cmd) {
	m.pickerReturn = from
	m.filePicker = newImagePicker(m.pickerDir)
	m.resetPickerHeight()
	m.Focus = FocusPicker
	m.Status = StatusBar{Text: "pick a photo", IsError: false}
	return m, m.filePicker.Init()
}

func (m *Model) resetPickerHeight() {
	if m.detailViewport.Height > 8 {
		m.filePicker.Height = m.detailViewport.Height - 4
	}
}

func (m Model) closePicker() Model {
	m.pickerDir = m.filePicker.CurrentDirectory
	m.Focus = m.pickerReturn
	if m.Focus == "" || m.Focus == FocusPicker {
		m.Focus = FocusList
	}
	return m
}

func (m Model) updatePicker(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m = m.closePicker()
		return m, func() tea.Msg { return PickCancelledMsg{} }
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)
	if selected, path := m.filePicker.DidSelectFile(msg); selected {
		m = m.closePicker()
		return m, pickMediaCmd(media.FilePicker{Path: path})
	}
	if disabled, path := m.filePicker.DidSelectDisabledFile(msg); disabled {
		m.Status = StatusBar{Text: fmt.Sprintf("not an image: %s", filepath.Base(path)), IsError: true}
	}
	return m, cmd
}

func (m Model) attachPickedMedia(att *model.MediaAttachment) Model {
	if att == nil {
		return m
	}
	m.draft.AttachMedia(att)
	m.Status = StatusBar{Text: fmt.Sprintf("photo attached: %s", att.DisplayName), IsError: false}
	m.log.WithField("uri", att.URI).Debug("photo attached to draft")
	return m
}
