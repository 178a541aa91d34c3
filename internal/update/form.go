package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/snaplist/internal/model"
	"github.com/sandeepkv93/snaplist/internal/session"
)

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.leaveForm()
		return m, nil
	case "tab", "shift+tab":
		if m.field == fieldTitle {
			m = m.focusForm(fieldDescription)
		} else {
			m = m.focusForm(fieldTitle)
		}
		return m, nil
	case "ctrl+s":
		return m.saveDraft(), nil
	case "enter":
		if m.field == fieldTitle {
			return m.saveDraft(), nil
		}
	case "ctrl+x":
		return m.cancelDraft(), nil
	case "ctrl+p":
		return m.openPicker(FocusForm)
	}

	var cmd tea.Cmd
	if m.field == fieldTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.descArea, cmd = m.descArea.Update(msg)
	}
	m.syncDraftFromForm()
	return m, cmd
}

func (m Model) focusForm(field formField) Model {
	m.Focus = FocusForm
	m.field = field
	if field == fieldTitle {
		m.descArea.Blur()
		m.titleInput.Focus()
	} else {
		m.titleInput.Blur()
		m.descArea.Focus()
	}
	return m
}

// leaveForm returns to the list and keeps whatever was typed.
func (m Model) leaveForm() Model {
	m.titleInput.Blur()
	m.descArea.Blur()
	m.Focus = FocusList
	return m
}

func (m Model) beginEdit(task model.Task) Model {
	m.draft.BeginEdit(task)
	m.loadFormFromDraft()
	m.Status = StatusBar{Text: fmt.Sprintf("editing task %d", m.positionOf(task.Key)), IsError: false}
	return m.focusForm(fieldTitle)
}

func (m Model) cancelDraft() Model {
	wasEditing := m.draft.Mode() == session.ModeEdit
	m.draft.Cancel()
	m.loadFormFromDraft()
	if wasEditing {
		m.Status = StatusBar{Text: "edit cancelled", IsError: false}
	} else {
		m.Status = StatusBar{Text: "draft cleared", IsError: false}
	}
	return m
}

func (m Model) saveDraft() Model {
	m.syncDraftFromForm()
	res, err := m.draft.Save(opContext())
	if err != nil {
		return m.fail(err)
	}
	m.loadFormFromDraft()
	switch res.Outcome {
	case session.OutcomeCreated:
		m.Status = StatusBar{Text: "task added", IsError: false}
		m.log.WithField("key", res.Task.Key).Info("task added")
	case session.OutcomeUpdated:
		m.Status = StatusBar{Text: "task updated", IsError: false}
		m.log.WithField("key", res.Task.Key).Info("task updated")
		m = m.leaveForm()
	case session.OutcomeRejected:
		m.Status = StatusBar{Text: "title is required", IsError: false}
	case session.OutcomeTargetMissing:
		m.Status = StatusBar{Text: "task no longer exists", IsError: false}
	}
	return m
}

func (m *Model) syncDraftFromForm() {
	m.draft.SetTitle(m.titleInput.Value())
	m.draft.SetDescription(m.descArea.Value())
}

func (m *Model) loadFormFromDraft() {
	m.titleInput.SetValue(m.draft.Title())
	m.descArea.SetValue(m.draft.Description())
}
