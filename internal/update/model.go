package update

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/snaplist/internal/media"
	"github.com/sandeepkv93/snaplist/internal/model"
	"github.com/sandeepkv93/snaplist/internal/session"
	"github.com/sandeepkv93/snaplist/internal/store"
	"github.com/sirupsen/logrus"
)

type Focus string

const (
	FocusList    Focus = "List"
	FocusForm    Focus = "Form"
	FocusDetail  Focus = "Detail"
	FocusPicker  Focus = "Picker"
	FocusPalette Focus = "Palette"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Palette string
	Theme   string
	Help    string
	Quit    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
	Return Focus
}

type Model struct {
	Focus       Focus
	Tasks       []model.Task
	Version     uint64
	Cursor      int
	DarkMode    bool
	HelpVisible bool
	Palette     CommandPaletteState
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	store  *store.Store
	draft  *session.Draft
	viewer *session.Viewer
	sub    *store.Subscription
	log    logrus.FieldLogger

	// Bubble components
	taskList       list.Model
	titleInput     textinput.Model
	descArea       textarea.Model
	commandInput   textinput.Model
	detailViewport viewport.Model
	filePicker     filepicker.Model
	helpModel      help.Model
	field          formField
	pickerReturn   Focus
	pickerDir      string
}

type taskItem struct {
	title       string
	description string
}

func (i taskItem) FilterValue() string { return i.title }
func (i taskItem) Title() string       { return i.title }
func (i taskItem) Description() string { return i.description }

type SnapshotMsg struct {
	Snapshot store.Snapshot
}

type PickedMediaMsg struct {
	Media *model.MediaAttachment
}

type PickCancelledMsg struct{}

type PickFailedMsg struct {
	Err error
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// NewModel wires the UI to st. A nil store gets a fresh in-memory one and a
// nil logger discards.
func NewModel(st *store.Store, cfg RuntimeConfig, log logrus.FieldLogger) Model {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if st == nil {
		st = store.New(nil, store.WithLogger(log))
	}
	buffer := cfg.SnapshotBuffer
	if buffer <= 0 {
		buffer = DefaultRuntimeConfig().SnapshotBuffer
	}
	m := Model{
		Focus:    FocusList,
		DarkMode: cfg.DarkMode,
		Keys: GlobalKeyMap{
			Palette: "/",
			Theme:   "t",
			Help:    "?",
			Quit:    "q",
		},
		store:     st,
		draft:     session.NewDraft(st, log.WithField("component", "draft")),
		viewer:    session.NewViewer(),
		sub:       st.Subscribe(buffer),
		log:       log,
		pickerDir: cfg.PickerDir,
	}
	if tasks, err := st.List(context.Background()); err == nil {
		m.Tasks = tasks
	} else {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

// Close releases the snapshot subscription.
func (m Model) Close() {
	if m.sub != nil {
		m.sub.Close()
	}
}

func (m Model) Draft() *session.Draft   { return m.draft }
func (m Model) Viewer() *session.Viewer { return m.viewer }

func (m *Model) initBubbleComponents() {
	m.taskList = list.New([]list.Item{}, list.NewDefaultDelegate(), 44, 14)
	m.taskList.Title = "My Tasks"
	m.taskList.SetShowHelp(false)
	m.taskList.SetShowTitle(false)
	m.taskList.SetFilteringEnabled(false)
	m.taskList.SetShowStatusBar(false)

	m.titleInput = textinput.New()
	m.titleInput.Prompt = "title> "
	m.titleInput.Placeholder = "Task Title..."
	m.titleInput.CharLimit = 256
	m.titleInput.Width = 46

	m.descArea = textarea.New()
	m.descArea.SetWidth(54)
	m.descArea.SetHeight(5)
	m.descArea.ShowLineNumbers = false
	m.descArea.Placeholder = "Description (markdown)"

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.detailViewport = viewport.New(54, 14)

	m.filePicker = newImagePicker(m.pickerDir)

	m.helpModel = help.New()
}

func newImagePicker(dir string) filepicker.Model {
	fp := filepicker.New()
	fp.AllowedTypes = pickerTypes(media.ImageExtensions)
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.ShowHidden = false
	fp.AutoHeight = false
	fp.Height = 12
	fp.CurrentDirectory = resolvePickerStart(dir)
	return fp
}
