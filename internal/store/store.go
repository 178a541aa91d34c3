// Package store owns the ordered task collection and every operation that
// mutates it. Successful mutations are published to subscribers as snapshots.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sandeepkv93/snaplist/internal/model"
	"github.com/sandeepkv93/snaplist/internal/storage"
	"github.com/sirupsen/logrus"
)

type Store struct {
	repo storage.Repository
	keys KeyGenerator
	log  logrus.FieldLogger
	hub  *hub
}

type Option func(*Store)

func WithKeyGenerator(g KeyGenerator) Option {
	return func(s *Store) {
		if g != nil {
			s.keys = g
		}
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

func New(repo storage.Repository, opts ...Option) *Store {
	if repo == nil {
		repo = storage.NewMemoryRepository()
	}
	s := &Store{
		repo: repo,
		keys: NewCounterKeys(),
		log:  discardLogger(),
		hub:  newHub(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create appends a new, not yet completed task. A blank title or a malformed
// attachment leaves the collection untouched and returns model.ErrInvalidInput.
func (s *Store) Create(ctx context.Context, title, description string, media *model.MediaAttachment) (model.Task, error) {
	if err := validateInput(title, media); err != nil {
		s.log.WithError(err).Warn("create rejected")
		return model.Task{}, err
	}
	task := model.Task{
		Key:         s.keys.Next(),
		Title:       title,
		Description: description,
		Completed:   false,
		Media:       media,
	}
	if err := task.Validate(); err != nil {
		s.log.WithError(err).Warn("create rejected")
		return model.Task{}, err
	}
	if err := s.repo.CreateTask(ctx, task); err != nil {
		return model.Task{}, fmt.Errorf("store: create task %s: %w", task.Key, err)
	}
	s.log.WithField("key", task.Key).Debug("task created")
	s.publish(ctx)
	return task, nil
}

// Update replaces title, description and media of an existing task while
// keeping its completion flag and position. A missing key is reported before
// the title is validated.
func (s *Store) Update(ctx context.Context, key model.Key, title, description string, media *model.MediaAttachment) (model.Task, error) {
	current, err := s.Get(ctx, key)
	if err != nil {
		return model.Task{}, err
	}
	if err := validateInput(title, media); err != nil {
		s.log.WithField("key", key).WithError(err).Warn("update rejected")
		return model.Task{}, err
	}
	current.Title = title
	current.Description = description
	current.Media = media
	if err := s.repo.UpdateTask(ctx, current); err != nil {
		return model.Task{}, s.translate(key, "update", err)
	}
	s.log.WithField("key", key).Debug("task updated")
	s.publish(ctx)
	return current, nil
}

// Delete removes the task if present. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key model.Key) error {
	err := s.repo.DeleteTask(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		s.log.WithField("key", key).Debug("delete of absent task ignored")
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: delete task %s: %w", key, err)
	}
	s.log.WithField("key", key).Debug("task deleted")
	s.publish(ctx)
	return nil
}

func (s *Store) ToggleCompleted(ctx context.Context, key model.Key) (model.Task, error) {
	current, err := s.Get(ctx, key)
	if err != nil {
		return model.Task{}, err
	}
	current.Completed = !current.Completed
	if err := s.repo.UpdateTask(ctx, current); err != nil {
		return model.Task{}, s.translate(key, "toggle", err)
	}
	s.log.WithFields(logrus.Fields{"key": key, "completed": current.Completed}).Debug("task toggled")
	s.publish(ctx)
	return current, nil
}

func (s *Store) Get(ctx context.Context, key model.Key) (model.Task, error) {
	task, err := s.repo.GetTask(ctx, key)
	if err != nil {
		return model.Task{}, s.translate(key, "get", err)
	}
	return task, nil
}

// List returns the collection in insertion order. The slice is a copy.
func (s *Store) List(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: list tasks: %w", err)
	}
	return tasks, nil
}

func validateInput(title string, media *model.MediaAttachment) error {
	if err := model.ValidateTitle(title); err != nil {
		return err
	}
	if media != nil {
		return media.Validate()
	}
	return nil
}

func (s *Store) translate(key model.Key, op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		s.log.WithFields(logrus.Fields{"key": key, "op": op}).Warn("task not found")
		return fmt.Errorf("%w: %s", model.ErrNotFound, key)
	}
	return fmt.Errorf("store: %s task %s: %w", op, key, err)
}

func (s *Store) publish(ctx context.Context) {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to build snapshot")
		return
	}
	s.hub.broadcast(tasks)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
