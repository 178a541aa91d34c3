package storage

import (
	"context"
	"testing"

	"github.com/sandeepkv93/snaplist/internal/model"
)

func TestMemoryRepositoryKeepsMediaReference(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	photo := model.NewImage("file:///cat.png", "cat.png")

	if err := repo.CreateTask(ctx, model.Task{Key: "t", Title: "cat", Media: photo}); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.GetTask(ctx, "t")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Media != photo {
		t.Fatal("expected the same attachment pointer to be stored")
	}
}

func TestMemoryRepositoryListIsACopy(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	if err := repo.CreateTask(ctx, model.Task{Key: "t", Title: "original"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := repo.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	list[0].Title = "mutated"

	again, err := repo.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list again: %v", err)
	}
	if again[0].Title != "original" {
		t.Fatalf("list snapshot leaked into repository: %q", again[0].Title)
	}
}
