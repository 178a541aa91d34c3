package update

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/snaplist/internal/model"
)

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Tasks)-1 {
			m.Cursor++
		}
	case " ", "x":
		if task, ok := m.selectedTask(); ok {
			m = m.toggleTask(task)
		}
	case "e":
		if task, ok := m.selectedTask(); ok {
			m = m.beginEdit(task)
		}
	case "d":
		if task, ok := m.selectedTask(); ok {
			m = m.deleteTask(task)
		}
	case "enter":
		if task, ok := m.selectedTask(); ok {
			m = m.openDetail(task)
		}
	case "n", "i":
		m = m.focusForm(fieldTitle)
	case "p":
		return m.openPicker(FocusList)
	case m.Keys.Theme:
		m = m.toggleTheme()
	case m.Keys.Palette:
		m = m.openPalette()
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown", IsError: false}
		} else {
			m.Status = StatusBar{Text: "help hidden", IsError: false}
		}
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) toggleTask(task model.Task) Model {
	updated, err := m.store.ToggleCompleted(opContext(), task.Key)
	if err != nil {
		return m.fail(err)
	}
	if updated.Completed {
		m.Status = StatusBar{Text: fmt.Sprintf("task completed: %s", updated.Title), IsError: false}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("task reopened: %s", updated.Title), IsError: false}
	}
	return m
}

func (m Model) deleteTask(task model.Task) Model {
	if err := m.store.Delete(opContext(), task.Key); err != nil {
		return m.fail(err)
	}
	m.Status = StatusBar{Text: fmt.Sprintf("task deleted: %s", task.Title), IsError: false}
	return m
}

func (m Model) toggleTheme() Model {
	m.DarkMode = !m.DarkMode
	if m.DarkMode {
		m.Status = StatusBar{Text: "dark theme", IsError: false}
	} else {
		m.Status = StatusBar{Text: "light theme", IsError: false}
	}
	if m.viewer.IsOpen() {
		m.refreshDetail()
	}
	return m
}

func (m Model) fail(err error) Model {
	m.LastError = err
	if errors.Is(err, model.ErrNotFound) {
		m.Status = StatusBar{Text: "task no longer exists", IsError: false}
		return m
	}
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	m.log.WithError(err).Error("task operation failed")
	return m
}
