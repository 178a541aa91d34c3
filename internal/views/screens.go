package views

import (
	"fmt"
	"strings"
)

const NoDescription = "No description provided."

type TaskListData struct {
	ListView string
	Count    int
	Focused  bool
}

type FormData struct {
	Editing         bool
	TitleView       string
	DescriptionView string
	Attached        bool
	AttachmentName  string
	Focused         bool
}

type DetailData struct {
	Title       string
	Completed   bool
	Body        string
	HasImage    bool
	ImageName   string
	ImageURI    string
	Stale       bool
	ContentView string
}

type HelpPanelData struct {
	Focus    string
	Bindings []string
	HelpView string
}

type PickerData struct {
	Directory string
	View      string
}

func RenderTaskList(data TaskListData, theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.Accent.Render(fmt.Sprintf("tasks (%d)", data.Count)) + "\n")
	if data.Count == 0 {
		b.WriteString(theme.Muted.Render("No tasks yet. Press n to add one."))
		return b.String()
	}
	b.WriteString(data.ListView)
	return strings.TrimSpace(b.String())
}

// TaskRowTitle is the list label for a task. Completed tasks are struck
// through.
func TaskRowTitle(position int, title string, completed bool, theme Theme) string {
	mark := "[ ]"
	if completed {
		mark = "[x]"
		title = theme.Done.Render(title)
	}
	return fmt.Sprintf("%d. %s %s", position, mark, title)
}

func TaskRowDescription(description string, hasImage bool) string {
	desc := strings.TrimSpace(strings.SplitN(description, "\n", 2)[0])
	if hasImage {
		if desc == "" {
			return "Image attached"
		}
		return desc + " | Image attached"
	}
	return desc
}

func RenderForm(data FormData, theme Theme) string {
	var b strings.Builder
	heading := "new task"
	label := "Add"
	if data.Editing {
		heading = "edit task"
		label = "Save"
	}
	b.WriteString(theme.Accent.Render(heading) + "\n")
	b.WriteString(data.TitleView + "\n")
	b.WriteString(data.DescriptionView + "\n")
	if data.Attached {
		name := data.AttachmentName
		if name == "" {
			name = "Image"
		}
		b.WriteString(fmt.Sprintf("Attached: Image (%s)\n", name))
	}
	b.WriteString(theme.Button.Render(label))
	if data.Focused {
		b.WriteString(theme.Muted.Render("  [ctrl+s]" + strings.ToLower(label) + " [tab]field [ctrl+p]photo [esc]back"))
		if data.Editing {
			b.WriteString(theme.Muted.Render(" [ctrl+x]cancel edit"))
		}
	}
	return strings.TrimSpace(b.String())
}

// DetailBody builds the text shown in the detail viewport.
func DetailBody(data DetailData, theme Theme) string {
	var b strings.Builder
	if data.Stale {
		b.WriteString(theme.Warning.Render("task was deleted") + "\n\n")
	}
	title := data.Title
	if data.Completed {
		title = theme.Done.Render(title) + " (done)"
	}
	b.WriteString(theme.Header.Render(title) + "\n\n")
	if strings.TrimSpace(data.Body) == "" {
		b.WriteString(theme.Muted.Render(NoDescription) + "\n")
	} else {
		b.WriteString(data.Body + "\n")
	}
	if data.HasImage {
		b.WriteString("\nphoto:\n")
		b.WriteString(fmt.Sprintf("  %s\n", data.ImageName))
		b.WriteString(theme.Muted.Render("  "+data.ImageURI) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderDetail(data DetailData, theme Theme) string {
	return theme.Accent.Render("detail") + "\n" + data.ContentView + "\n" +
		theme.Muted.Render("[esc/enter/q]close [j/k]scroll")
}

func RenderPicker(data PickerData, theme Theme) string {
	return fmt.Sprintf("%s\n%s\n%s\n%s",
		theme.Accent.Render("pick a photo"),
		theme.Muted.Render(data.Directory),
		data.View,
		theme.Muted.Render("[enter]select [esc]cancel"),
	)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s:\n%s\n%s",
		strings.ToLower(data.Focus),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
