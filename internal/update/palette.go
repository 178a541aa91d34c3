package update

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/snaplist/internal/commands"
	"github.com/sandeepkv93/snaplist/internal/media"
	"github.com/sandeepkv93/snaplist/internal/model"
)

func (m Model) openPalette() Model {
	m.Palette = CommandPaletteState{Active: true, Return: m.Focus}
	m.Focus = FocusPalette
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active", IsError: false}
	return m
}

func (m Model) closePalette(next Focus) Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	m.Focus = next
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePalette(m.Palette.Return)
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m = m.closePalette(m.Palette.Return)
	if m.Focus == FocusDetail && !m.viewer.IsOpen() {
		m.Focus = FocusList
	}

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var follow tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, err := m.store.Create(opContext(), a.Title, "", nil)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("task added: %s", task.Title)}, nil
		},
		Title: func(a commands.TextArgs) (commands.Result, error) {
			m.draft.SetTitle(a.Text)
			m.loadFormFromDraft()
			return commands.Result{Message: "draft title set"}, nil
		},
		Desc: func(a commands.TextArgs) (commands.Result, error) {
			m.draft.SetDescription(a.Text)
			m.loadFormFromDraft()
			return commands.Result{Message: "draft description set"}, nil
		},
		Photo: func(a commands.PhotoArgs) (commands.Result, error) {
			follow = pickMediaCmd(media.FilePicker{Path: a.Path})
			return commands.Result{Message: "attaching photo"}, nil
		},
		Edit: func(a commands.TargetArgs) (commands.Result, error) {
			task, err := m.taskForCommand(a)
			if err != nil {
				return commands.Result{}, err
			}
			m = m.beginEdit(task)
			return commands.Result{Message: m.Status.Text}, nil
		},
		Done: func(a commands.TargetArgs) (commands.Result, error) {
			task, err := m.taskForCommand(a)
			if err != nil {
				return commands.Result{}, err
			}
			m = m.toggleTask(task)
			return m.statusResult()
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			task, err := m.taskForCommand(a)
			if err != nil {
				return commands.Result{}, err
			}
			m = m.deleteTask(task)
			return m.statusResult()
		},
		Open: func(a commands.TargetArgs) (commands.Result, error) {
			task, err := m.taskForCommand(a)
			if err != nil {
				return commands.Result{}, err
			}
			m = m.openDetail(task)
			return commands.Result{Message: fmt.Sprintf("opened task %d", a.Position)}, nil
		},
		Close: func() (commands.Result, error) {
			if !m.viewer.IsOpen() {
				return commands.Result{Message: "nothing open"}, nil
			}
			m = m.closeDetail()
			return commands.Result{Message: "detail closed"}, nil
		},
		Save: func() (commands.Result, error) {
			m = m.saveDraft()
			return m.statusResult()
		},
		Cancel: func() (commands.Result, error) {
			m = m.cancelDraft()
			return m.statusResult()
		},
		Theme: func() (commands.Result, error) {
			m = m.toggleTheme()
			return m.statusResult()
		},
	})
	if err != nil {
		var se statusError
		if errors.As(err, &se) {
			return m, nil
		}
		m = m.fail(err)
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message, IsError: false}
	return m, follow
}

func (m Model) taskForCommand(a commands.TargetArgs) (model.Task, error) {
	task, ok := m.taskAt(a.Position)
	if !ok {
		return model.Task{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task at position %d", a.Position)}
	}
	return task, nil
}

// statusResult hands a status set by a task action back to the palette,
// keeping failures as errors.
func (m Model) statusResult() (commands.Result, error) {
	if m.Status.IsError {
		return commands.Result{}, statusError(m.Status.Text)
	}
	return commands.Result{Message: m.Status.Text}, nil
}

type statusError string

func (e statusError) Error() string { return string(e) }
