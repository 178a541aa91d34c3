package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/snaplist/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.focusBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Focus:    string(m.helpFocus()),
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

// helpFocus is the area the help describes; the palette shows the help of the
// area it was opened from.
func (m Model) helpFocus() Focus {
	if m.Focus == FocusPalette {
		return m.Palette.Return
	}
	return m.Focus
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Theme, Action: "toggle light/dark theme"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) focusBindings() []KeyBinding {
	switch m.helpFocus() {
	case FocusList:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "space/x", Action: "toggle completed"},
			{Key: "e", Action: "edit task"},
			{Key: "d", Action: "delete task"},
			{Key: "enter", Action: "open detail"},
			{Key: "n/i", Action: "new task"},
			{Key: "p", Action: "attach photo"},
		}
	case FocusForm:
		return []KeyBinding{
			{Key: "tab", Action: "switch field"},
			{Key: "ctrl+s", Action: "save draft"},
			{Key: "ctrl+p", Action: "attach photo"},
			{Key: "ctrl+x", Action: "cancel edit"},
			{Key: "esc", Action: "back to list"},
		}
	case FocusDetail:
		return []KeyBinding{
			{Key: "esc/enter/q", Action: "close detail"},
			{Key: "j/k", Action: "scroll"},
		}
	case FocusPicker:
		return []KeyBinding{
			{Key: "enter", Action: "select image"},
			{Key: "esc", Action: "cancel"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.focusBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.focusBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
