package session

import "github.com/sandeepkv93/snaplist/internal/model"

// DetailSnapshot is what the detail view shows. It is captured when the view
// opens and does not follow later edits.
type DetailSnapshot struct {
	Key         model.Key
	Title       string
	Description string
	Completed   bool
	Media       *model.MediaAttachment
}

type Viewer struct {
	open     bool
	snapshot DetailSnapshot
}

func NewViewer() *Viewer {
	return &Viewer{}
}

func (v *Viewer) Open(task model.Task) {
	v.open = true
	v.snapshot = DetailSnapshot{
		Key:         task.Key,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Media:       task.Media,
	}
}

func (v *Viewer) Close() {
	v.open = false
	v.snapshot = DetailSnapshot{}
}

func (v *Viewer) IsOpen() bool {
	return v.open
}

func (v *Viewer) ViewedKey() (model.Key, bool) {
	return v.snapshot.Key, v.open
}

func (v *Viewer) Current() (DetailSnapshot, bool) {
	return v.snapshot, v.open
}

// Stale reports whether the viewed task is missing from tasks.
func (v *Viewer) Stale(tasks []model.Task) bool {
	if !v.open {
		return false
	}
	for _, t := range tasks {
		if t.Key == v.snapshot.Key {
			return false
		}
	}
	return true
}
