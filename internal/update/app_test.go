package update

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/snaplist/internal/media"
	"github.com/sandeepkv93/snaplist/internal/model"
	"github.com/sandeepkv93/snaplist/internal/session"
	"github.com/sandeepkv93/snaplist/internal/storage"
	"github.com/sandeepkv93/snaplist/internal/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(store.New(storage.NewMemoryRepository()), DefaultRuntimeConfig(), nil)
	t.Cleanup(m.Close)
	return m
}

// send feeds msgs through Update and delivers any snapshots they publish.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = drain(updated.(Model))
	}
	return m
}

func drain(m Model) Model {
	for {
		select {
		case snap, ok := <-m.sub.C():
			if !ok {
				return m
			}
			updated, _ := m.Update(SnapshotMsg{Snapshot: snap})
			m = updated.(Model)
		default:
			return m
		}
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func palette(t *testing.T, m Model, line string) Model {
	t.Helper()
	return send(t, m, runes("/"), runes(line), tea.KeyMsg{Type: tea.KeyEnter})
}

func seed(t *testing.T, m Model, title, description string, att *model.MediaAttachment) Model {
	t.Helper()
	if _, err := m.store.Create(context.Background(), title, description, att); err != nil {
		t.Fatalf("seed %q: %v", title, err)
	}
	return drain(m)
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)
	if m.Focus != FocusList {
		t.Fatalf("expected list focus, got %q", m.Focus)
	}
	if m.Keys.Quit != "q" || m.Keys.Palette != "/" {
		t.Fatalf("unexpected keys: %+v", m.Keys)
	}
	if len(m.Tasks) != 0 || m.DarkMode {
		t.Fatalf("unexpected initial state: tasks=%d dark=%v", len(m.Tasks), m.DarkMode)
	}
	if m.Draft().Mode() != session.ModeCreate {
		t.Fatalf("expected create mode, got %q", m.Draft().Mode())
	}
}

func TestAddTaskThroughForm(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m,
		runes("n"),
		runes("Buy milk"),
		tea.KeyMsg{Type: tea.KeyTab},
		runes("two litres"),
		tea.KeyMsg{Type: tea.KeyCtrlS},
	)

	if m.Status.Text != "task added" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	if len(m.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(m.Tasks))
	}
	if m.Tasks[0].Title != "Buy milk" || m.Tasks[0].Description != "two litres" || m.Tasks[0].Completed {
		t.Fatalf("unexpected task: %+v", m.Tasks[0])
	}
	if m.titleInput.Value() != "" || m.descArea.Value() != "" {
		t.Fatalf("expected cleared form, got %q / %q", m.titleInput.Value(), m.descArea.Value())
	}
}

func TestBlankTitleKeepsInput(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m,
		runes("n"),
		runes("   "),
		tea.KeyMsg{Type: tea.KeyTab},
		runes("notes"),
		tea.KeyMsg{Type: tea.KeyCtrlS},
	)

	if m.Status.Text != "title is required" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	if len(m.Tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(m.Tasks))
	}
	if m.descArea.Value() != "notes" || m.Draft().Description() != "notes" {
		t.Fatalf("expected description kept, got %q", m.descArea.Value())
	}
}

func TestEscapeLeavesFormAndKeepsInput(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("n"), runes("half typed"), tea.KeyMsg{Type: tea.KeyEsc})

	if m.Focus != FocusList {
		t.Fatalf("expected list focus, got %q", m.Focus)
	}
	if m.Draft().Title() != "half typed" {
		t.Fatalf("expected draft kept, got %q", m.Draft().Title())
	}
}

func TestToggleAndDeleteFromList(t *testing.T) {
	m := newTestModel(t)
	m = seed(t, m, "first", "", nil)
	m = seed(t, m, "second", "", nil)

	m = send(t, m, runes("j"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.Tasks[1].Completed || m.Tasks[0].Completed {
		t.Fatalf("expected only second completed: %+v", m.Tasks)
	}
	if !strings.HasPrefix(m.Status.Text, "task completed") {
		t.Fatalf("unexpected status: %+v", m.Status)
	}

	m = send(t, m, runes("x"))
	if m.Tasks[1].Completed {
		t.Fatal("expected second reopened")
	}

	m = send(t, m, runes("d"))
	if len(m.Tasks) != 1 || m.Tasks[0].Title != "first" {
		t.Fatalf("unexpected tasks after delete: %+v", m.Tasks)
	}
	if m.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", m.Cursor)
	}
}

func TestEditThroughFormUpdatesInPlace(t *testing.T) {
	m := newTestModel(t)
	m = seed(t, m, "first", "", nil)
	m = seed(t, m, "second", "", nil)
	key := m.Tasks[0].Key

	m = send(t, m, runes("e"))
	if m.Focus != FocusForm || m.Draft().Mode() != session.ModeEdit {
		t.Fatalf("expected edit form, focus=%q mode=%q", m.Focus, m.Draft().Mode())
	}
	if m.titleInput.Value() != "first" {
		t.Fatalf("expected loaded title, got %q", m.titleInput.Value())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlU}, runes("renamed"), tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.Status.Text != "task updated" {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	if m.Tasks[0].Key != key || m.Tasks[0].Title != "renamed" || m.Tasks[1].Title != "second" {
		t.Fatalf("unexpected tasks: %+v", m.Tasks)
	}
	if m.Focus != FocusList || m.Draft().Mode() != session.ModeCreate {
		t.Fatalf("expected list focus in create mode, focus=%q mode=%q", m.Focus, m.Draft().Mode())
	}
}

func TestPaletteEditAndSave(t *testing.T) {
	m := newTestModel(t)
	m = seed(t, m, "first", "old", nil)

	m = palette(t, m, "edit 1")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = palette(t, m, "title Renamed")
	m = palette(t, m, "desc")
	m = palette(t, m, "save")

	if m.Status.Text != "task updated" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	if m.Tasks[0].Title != "Renamed" || m.Tasks[0].Description != "" {
		t.Fatalf("unexpected task: %+v", m.Tasks[0])
	}
}

func TestSaveAfterTargetDeletedReportsMissing(t *testing.T) {
	m := newTestModel(t)
	m = seed(t, m, "doomed", "", nil)

	m = send(t, m, runes("e"), tea.KeyMsg{Type: tea.KeyEsc})
	if err := m.store.Delete(context.Background(), m.Tasks[0].Key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	m = drain(m)

	m = palette(t, m, "save")
	if m.Status.Text != "task no longer exists" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	if len(m.Tasks) != 0 || m.Draft().Mode() != session.ModeCreate {
		t.Fatalf("expected empty list and reset draft, tasks=%d mode=%q", len(m.Tasks), m.Draft().Mode())
	}
}

func TestCancelEditReturnsToCreate(t *testing.T) {
	m := newTestModel(t)
	m = seed(t, m, "first", "", nil)

	m = send(t, m, runes("e"), tea.KeyMsg{Type: tea.KeyCtrlX})
	if m.Status.Text != "edit cancelled" {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	if m.Draft().Mode() != session.ModeCreate || m.titleInput.Value() != "" {
		t.Fatalf("expected empty create draft, mode=%q title=%q", m.Draft().Mode(), m.titleInput.Value())
	}
}

func TestDetailViewPlaceholderAndStaleMarker(t *testing.T) {
	m := newTestModel(t)
	m = seed(t, m, "read me", "", nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Focus != FocusDetail || !m.Viewer().IsOpen() {
		t.Fatalf("expected detail open, focus=%q", m.Focus)
	}
	out := m.View()
	if !strings.Contains(out, "No description provided.") {
		t.Fatalf("expected placeholder in output: %q", out)
	}
	if strings.Contains(out, "photo:") {
		t.Fatalf("did not expect photo block: %q", out)
	}

	if err := m.store.Delete(context.Background(), m.Tasks[0].Key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	m = drain(m)
	if !strings.Contains(m.View(), "task was deleted") {
		t.Fatalf("expected deleted marker: %q", m.View())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Focus != FocusList || m.Viewer().IsOpen() {
		t.Fatalf("expected detail closed, focus=%q", m.Focus)
	}
}

func TestDetailShowsImageBlock(t *testing.T) {
	m := newTestModel(t)
	m = seed(t, m, "receipt", "", model.NewImage("file:///tmp/receipt.png", "receipt.png"))

	m = palette(t, m, "open 1")
	out := m.View()
	if !strings.Contains(out, "photo:") || !strings.Contains(out, "receipt.png") {
		t.Fatalf("expected photo block: %q", out)
	}

	m = palette(t, m, "close")
	if m.Viewer().IsOpen() {
		t.Fatal("expected detail closed")
	}
}

func TestListRowsShowMediaAndCompletion(t *testing.T) {
	m := newTestModel(t)
	m = seed(t, m, "with photo", "", model.NewImage("file:///tmp/a.png", "a.png"))
	m = seed(t, m, "plain", "", nil)
	m = palette(t, m, "done 2")

	out := m.View()
	if !strings.Contains(out, "Image attached") {
		t.Fatalf("expected media indicator: %q", out)
	}
	if !strings.Contains(out, "[x]") || !strings.Contains(out, "[ ]") {
		t.Fatalf("expected completion markers: %q", out)
	}
}

func TestPickedMediaAttachesAndCancelKeepsIt(t *testing.T) {
	m := newTestModel(t)
	att := model.NewImage("file:///tmp/a.png", "a.png")

	m = send(t, m, PickedMediaMsg{Media: att})
	if m.Draft().PendingMedia() != att {
		t.Fatal("expected pending media set")
	}
	m = send(t, m, PickCancelledMsg{})
	if m.Draft().PendingMedia() != att {
		t.Fatal("cancel should keep pending media")
	}
	if !strings.Contains(m.View(), "Attached: Image") {
		t.Fatalf("expected attachment indicator: %q", m.View())
	}

	m = send(t, m, runes("n"), runes("snap"), tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.Tasks) != 1 || m.Tasks[0].Media != att {
		t.Fatalf("expected task with attachment: %+v", m.Tasks)
	}
	if m.Draft().PendingMedia() != nil {
		t.Fatal("expected pending media cleared after save")
	}
}

func TestPickMediaCmd(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "a.png")
	txt := filepath.Join(dir, "a.txt")
	for _, p := range []string{png, txt} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}

	if _, ok := pickMediaCmd(media.FilePicker{})().(PickCancelledMsg); !ok {
		t.Fatal("expected cancellation for empty path")
	}
	msg, ok := pickMediaCmd(media.FilePicker{Path: png})().(PickedMediaMsg)
	if !ok || msg.Media.DisplayName != "a.png" {
		t.Fatalf("expected picked png, got %#v", msg)
	}
	if _, ok := pickMediaCmd(media.FilePicker{Path: txt})().(PickFailedMsg); !ok {
		t.Fatal("expected failure for non-image")
	}
}

func TestPickerEscapeCancels(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("p"))
	if m.Focus != FocusPicker {
		t.Fatalf("expected picker focus, got %q", m.Focus)
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.Focus != FocusList {
		t.Fatalf("expected list focus, got %q", m.Focus)
	}
	if cmd == nil {
		t.Fatal("expected cancellation command")
	}
	if _, ok := cmd().(PickCancelledMsg); !ok {
		t.Fatal("expected PickCancelledMsg")
	}
}

func TestPaletteErrors(t *testing.T) {
	m := newTestModel(t)

	m = palette(t, m, "frobnicate")
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "unknown_command") {
		t.Fatalf("unexpected status: %+v", m.Status)
	}

	m = palette(t, m, "done 5")
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "no task at position 5") {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	if m.Focus != FocusList || m.Palette.Active {
		t.Fatalf("expected palette closed, focus=%q", m.Focus)
	}
}

func TestPaletteAddCreatesTask(t *testing.T) {
	m := newTestModel(t)
	m = palette(t, m, "add  call mum ")
	if len(m.Tasks) != 1 || m.Tasks[0].Title != "call mum" {
		t.Fatalf("unexpected tasks: %+v", m.Tasks)
	}
}

func TestThemeAndHelpToggle(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("t"))
	if !m.DarkMode || !strings.Contains(m.View(), "theme: dark") {
		t.Fatalf("expected dark theme, got dark=%v", m.DarkMode)
	}

	m = send(t, m, runes("?"))
	if !m.HelpVisible || !strings.Contains(m.View(), "help:") {
		t.Fatal("expected help visible")
	}
}

func TestOlderSnapshotIgnored(t *testing.T) {
	m := newTestModel(t)
	m.Version = 5
	m = send(t, m, SnapshotMsg{Snapshot: store.Snapshot{Version: 3, Tasks: []model.Task{{Key: "x", Title: "stale"}}}})
	if len(m.Tasks) != 0 || m.Version != 5 {
		t.Fatalf("expected stale snapshot ignored, tasks=%d version=%d", len(m.Tasks), m.Version)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(runes("q"))
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
