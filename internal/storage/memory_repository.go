package storage

import (
	"context"
	"sync"

	"github.com/sandeepkv93/snaplist/internal/model"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	tasks []model.Task
	index map[model.Key]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		tasks: make([]model.Task, 0),
		index: make(map[model.Key]int),
	}
}

func (r *MemoryRepository) CreateTask(ctx context.Context, in model.Task) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[in.Key]; ok {
		return ErrDuplicateKey
	}
	r.tasks = append(r.tasks, in)
	r.index[in.Key] = len(r.tasks) - 1
	return nil
}

func (r *MemoryRepository) GetTask(ctx context.Context, key model.Key) (model.Task, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[key]
	if !ok {
		return model.Task{}, ErrNotFound
	}
	return r.tasks[i], nil
}

func (r *MemoryRepository) UpdateTask(ctx context.Context, in model.Task) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[in.Key]
	if !ok {
		return ErrNotFound
	}
	r.tasks[i] = in
	return nil
}

func (r *MemoryRepository) DeleteTask(ctx context.Context, key model.Key) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[key]
	if !ok {
		return ErrNotFound
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	delete(r.index, key)
	for j := i; j < len(r.tasks); j++ {
		r.index[r.tasks[j].Key] = j
	}
	return nil
}

func (r *MemoryRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}
