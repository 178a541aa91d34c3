package storage

import (
	"context"
	"errors"

	"github.com/sandeepkv93/snaplist/internal/model"
)

var (
	ErrNotFound     = errors.New("storage: not found")
	ErrDuplicateKey = errors.New("storage: duplicate key")
)

// Repository keeps tasks in insertion order. Implementations live only as
// long as the process.
type Repository interface {
	CreateTask(ctx context.Context, in model.Task) error
	GetTask(ctx context.Context, key model.Key) (model.Task, error)
	UpdateTask(ctx context.Context, in model.Task) error
	DeleteTask(ctx context.Context, key model.Key) error
	ListTasks(ctx context.Context) ([]model.Task, error)
}
