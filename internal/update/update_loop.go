package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/snaplist/internal/model"
	"github.com/sandeepkv93/snaplist/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.sub != nil {
		return waitForSnapshotCmd(m.sub.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch typed := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(typed)
	case tea.WindowSizeMsg:
		m.resize(typed.Width, typed.Height)
	case SnapshotMsg:
		m = m.applySnapshot(typed.Snapshot)
		if m.sub != nil {
			cmd = waitForSnapshotCmd(m.sub.C())
		}
	case PickedMediaMsg:
		m = m.attachPickedMedia(typed.Media)
	case PickCancelledMsg:
		m.Status = StatusBar{Text: "photo pick cancelled", IsError: false}
	case PickFailedMsg:
		m.LastError = typed.Err
		m.Status = StatusBar{Text: fmt.Sprintf("photo rejected: %v", typed.Err), IsError: true}
		m.log.WithError(typed.Err).Warn("photo pick failed")
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
	case ClearStatusMsg:
		m.Status = StatusBar{}
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
	default:
		if m.Focus == FocusPicker {
			m, cmd = m.updatePicker(msg)
		}
	}

	m.syncBubbleData()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}
	switch m.Focus {
	case FocusPalette:
		return m.handlePaletteKey(msg)
	case FocusPicker:
		return m.updatePicker(msg)
	case FocusForm:
		return m.handleFormKey(msg)
	case FocusDetail:
		return m.handleDetailKey(msg), nil
	default:
		return m.handleListKey(msg)
	}
}

func (m Model) View() string {
	theme := views.ThemeFor(m.DarkMode)

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	rightPane := ""
	switch m.Focus {
	case FocusDetail:
		rightPane = m.renderDetailView(theme)
	case FocusPicker:
		rightPane = m.renderPickerView(theme)
	default:
		rightPane = m.renderFormView(theme)
	}
	extras := strings.TrimSpace(strings.Join([]string{m.renderCommandPalette(), m.renderHelpIfVisible()}, "\n"))
	if extras != "" {
		rightPane += "\n\n" + extras
	}

	return views.RenderApp(views.AppData{
		Header:     m.header(),
		LeftPane:   m.renderTaskListView(theme),
		RightPane:  rightPane,
		StatusLine: status,
		IsError:    m.Status.IsError,
		Footer:     m.footer(),
	}, theme)
}

func (m Model) header() string {
	done := 0
	for _, t := range m.Tasks {
		if t.Completed {
			done++
		}
	}
	mode := "light"
	if m.DarkMode {
		mode = "dark"
	}
	return fmt.Sprintf("snaplist | My Tasks | %d open, %d done | focus: %s | theme: %s",
		len(m.Tasks)-done, done, m.Focus, mode)
}

func (m Model) footer() string {
	switch m.Focus {
	case FocusForm:
		return "keys: tab field | ctrl+s save | ctrl+p photo | ctrl+x cancel edit | esc back"
	case FocusDetail:
		return "keys: esc/enter/q close | j/k scroll"
	case FocusPicker:
		return "keys: enter select | esc cancel"
	case FocusPalette:
		return "keys: enter run | esc close"
	default:
		return fmt.Sprintf("keys: j/k move | space done | e edit | d delete | enter open | n new | p photo | %s theme | %s cmd | %s help | %s quit",
			m.Keys.Theme, m.Keys.Palette, m.Keys.Help, m.Keys.Quit)
	}
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	listHeight := height - 8
	if listHeight < 6 {
		listHeight = 6
	}
	m.taskList.SetSize(44, listHeight)
	m.detailViewport.Height = listHeight
	m.filePicker.Height = listHeight - 4
	if m.filePicker.Height < 4 {
		m.filePicker.Height = 4
	}
}

func (m *Model) syncBubbleData() {
	theme := views.ThemeFor(m.DarkMode)
	m.clampCursor()
	m.taskList.SetItems(taskItems(m.Tasks, theme))
	if len(m.Tasks) > 0 {
		m.taskList.Select(m.Cursor)
	}
}

func taskItems(tasks []model.Task, theme views.Theme) []list.Item {
	items := make([]list.Item, 0, len(tasks))
	for i, t := range tasks {
		items = append(items, taskItem{
			title:       views.TaskRowTitle(i+1, truncate(t.Title, 36), t.Completed, theme),
			description: truncate(views.TaskRowDescription(t.Description, t.HasMedia()), 40),
		})
	}
	return items
}
