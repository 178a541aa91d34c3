// Package session holds the transient UI state around the task store: the
// draft that is either creating or editing a task, and the task open in the
// detail view.
package session

import (
	"context"
	"errors"
	"io"

	"github.com/sandeepkv93/snaplist/internal/model"
	"github.com/sirupsen/logrus"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

type Outcome string

const (
	OutcomeCreated       Outcome = "created"
	OutcomeUpdated       Outcome = "updated"
	OutcomeRejected      Outcome = "rejected"
	OutcomeTargetMissing Outcome = "target_missing"
)

type SaveResult struct {
	Outcome Outcome
	Task    model.Task
}

// TaskWriter is the part of the task store a draft commits through.
type TaskWriter interface {
	Create(ctx context.Context, title, description string, media *model.MediaAttachment) (model.Task, error)
	Update(ctx context.Context, key model.Key, title, description string, media *model.MediaAttachment) (model.Task, error)
}

// Draft is the in-progress input. With no target key it creates a task on
// save; with one it updates that task.
type Draft struct {
	tasks TaskWriter
	log   logrus.FieldLogger

	title        string
	description  string
	pendingMedia *model.MediaAttachment
	targetKey    model.Key
	editing      bool
}

func NewDraft(tasks TaskWriter, log logrus.FieldLogger) *Draft {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Draft{tasks: tasks, log: log}
}

func (d *Draft) Title() string                        { return d.title }
func (d *Draft) Description() string                  { return d.description }
func (d *Draft) PendingMedia() *model.MediaAttachment { return d.pendingMedia }

func (d *Draft) Mode() Mode {
	if d.editing {
		return ModeEdit
	}
	return ModeCreate
}

func (d *Draft) TargetKey() (model.Key, bool) {
	return d.targetKey, d.editing
}

// Dirty reports whether any field holds input.
func (d *Draft) Dirty() bool {
	return d.title != "" || d.description != "" || d.pendingMedia != nil
}

func (d *Draft) SetTitle(text string)       { d.title = text }
func (d *Draft) SetDescription(text string) { d.description = text }

// AttachMedia replaces the pending attachment. A nil attachment, which is what
// a cancelled pick yields, leaves the current one in place.
func (d *Draft) AttachMedia(media *model.MediaAttachment) {
	if media == nil {
		return
	}
	d.pendingMedia = media
}

// BeginEdit loads the task into the draft and targets it. Unsaved input is
// discarded without prompting.
func (d *Draft) BeginEdit(task model.Task) {
	if d.Dirty() {
		d.log.WithField("key", task.Key).Debug("discarding unsaved draft input")
	}
	d.title = task.Title
	d.description = task.Description
	d.pendingMedia = task.Media
	d.targetKey = task.Key
	d.editing = true
}

// Cancel drops all input and returns to create mode.
func (d *Draft) Cancel() {
	d.reset()
}

func (d *Draft) Save(ctx context.Context) (SaveResult, error) {
	if !d.editing {
		return d.saveNew(ctx)
	}
	return d.saveEdit(ctx)
}

func (d *Draft) saveNew(ctx context.Context) (SaveResult, error) {
	task, err := d.tasks.Create(ctx, d.title, d.description, d.pendingMedia)
	if errors.Is(err, model.ErrInvalidInput) {
		// Inputs stay so the user can finish the title.
		return SaveResult{Outcome: OutcomeRejected}, nil
	}
	if err != nil {
		return SaveResult{}, err
	}
	d.reset()
	return SaveResult{Outcome: OutcomeCreated, Task: task}, nil
}

func (d *Draft) saveEdit(ctx context.Context) (SaveResult, error) {
	key := d.targetKey
	task, err := d.tasks.Update(ctx, key, d.title, d.description, d.pendingMedia)
	switch {
	case errors.Is(err, model.ErrNotFound):
		d.log.WithField("key", key).Info("edit target no longer exists")
		d.reset()
		return SaveResult{Outcome: OutcomeTargetMissing}, nil
	case errors.Is(err, model.ErrInvalidInput):
		d.reset()
		return SaveResult{Outcome: OutcomeRejected}, nil
	case err != nil:
		return SaveResult{}, err
	}
	d.reset()
	return SaveResult{Outcome: OutcomeUpdated, Task: task}, nil
}

func (d *Draft) reset() {
	d.title = ""
	d.description = ""
	d.pendingMedia = nil
	d.targetKey = ""
	d.editing = false
}
