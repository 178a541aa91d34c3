package update

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/snaplist/internal/model"
)

func opContext() context.Context {
	return context.Background()
}

// taskAt returns the task at the 1-based list position.
func (m Model) taskAt(position int) (model.Task, bool) {
	if position < 1 || position > len(m.Tasks) {
		return model.Task{}, false
	}
	return m.Tasks[position-1], true
}

func (m Model) selectedTask() (model.Task, bool) {
	return m.taskAt(m.Cursor + 1)
}

func (m *Model) clampCursor() {
	if m.Cursor >= len(m.Tasks) {
		m.Cursor = len(m.Tasks) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) positionOf(key model.Key) int {
	for i, t := range m.Tasks {
		if t.Key == key {
			return i + 1
		}
	}
	return 0
}

// pickerTypes adds upper-case variants since the file picker matches
// suffixes exactly.
func pickerTypes(exts []string) []string {
	out := make([]string, 0, len(exts)*2)
	for _, ext := range exts {
		out = append(out, ext, strings.ToUpper(ext))
	}
	return out
}

func resolvePickerStart(dir string) string {
	path := strings.TrimSpace(dir)
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if path != "" && dirExists(path) {
		return path
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
