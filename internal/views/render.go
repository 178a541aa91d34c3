package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	LeftPane   string
	RightPane  string
	StatusLine string
	IsError    bool
	Footer     string
}

// Theme is the set of styles for one colour scheme.
type Theme struct {
	Dark    bool
	Header  lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Panel   lipgloss.Style
	Footer  lipgloss.Style
	Muted   lipgloss.Style
	Done    lipgloss.Style
	Accent  lipgloss.Style
	Button  lipgloss.Style
	Warning lipgloss.Style
}

func ThemeFor(dark bool) Theme {
	if dark {
		return Theme{
			Dark:    true,
			Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			Panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
			Footer:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Done:    lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("242")),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Button:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")).Padding(0, 1),
			Warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		}
	}
	return Theme{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("7")).Padding(0, 1),
		Footer:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Done:    lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("246")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Button:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Padding(0, 1),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	}
}

func RenderApp(data AppData, theme Theme) string {
	left := theme.Panel.Width(46).Render(data.LeftPane)
	right := theme.Panel.Width(58).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := theme.Status.Render(data.StatusLine)
	if data.IsError {
		status = theme.Error.Render(data.StatusLine)
	}

	lines := []string{
		theme.Header.Render(data.Header),
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, theme.Footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders md for the terminal. Rendering failures fall back to
// the raw text.
func RenderMarkdown(md string, dark bool, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if dark {
		style = "dark"
	}
	if width <= 0 {
		width = 54
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
