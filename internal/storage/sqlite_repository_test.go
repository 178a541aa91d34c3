package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/sandeepkv93/snaplist/internal/model"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := OpenMemorySQLite()
	if err != nil {
		t.Fatalf("open memory sqlite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func backends(t *testing.T) map[string]Repository {
	t.Helper()
	return map[string]Repository{
		"memory": NewMemoryRepository(),
		"sqlite": setupRepo(t),
	}
}

func TestTaskCRUDAndList(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			task := model.Task{
				Key:         "task-1",
				Title:       "Write schema",
				Description: "Design storage layout",
				Media:       model.NewImage("file:///tmp/schema.png", "schema.png"),
			}
			if err := repo.CreateTask(ctx, task); err != nil {
				t.Fatalf("create task: %v", err)
			}

			got, err := repo.GetTask(ctx, task.Key)
			if err != nil {
				t.Fatalf("get task: %v", err)
			}
			if got.Title != task.Title || got.Completed {
				t.Fatalf("unexpected task get result: %#v", got)
			}
			if got.Media == nil || got.Media.URI != "file:///tmp/schema.png" || got.Media.Kind != model.MediaKindImage {
				t.Fatalf("unexpected media: %#v", got.Media)
			}

			task.Title = "Write schema v2"
			task.Completed = true
			task.Media = nil
			if err := repo.UpdateTask(ctx, task); err != nil {
				t.Fatalf("update task: %v", err)
			}

			list, err := repo.ListTasks(ctx)
			if err != nil {
				t.Fatalf("list tasks: %v", err)
			}
			if len(list) != 1 || list[0].Title != "Write schema v2" || !list[0].Completed || list[0].Media != nil {
				t.Fatalf("unexpected list after update: %#v", list)
			}

			if err := repo.DeleteTask(ctx, task.Key); err != nil {
				t.Fatalf("delete task: %v", err)
			}
			_, err = repo.GetTask(ctx, task.Key)
			if err != ErrNotFound {
				t.Fatalf("expected ErrNotFound, got: %v", err)
			}
		})
	}
}

func TestListKeepsInsertionOrderAcrossUpdatesAndDeletes(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, key := range []model.Key{"a", "b", "c", "d"} {
				if err := repo.CreateTask(ctx, model.Task{Key: key, Title: "title " + string(key)}); err != nil {
					t.Fatalf("create %s: %v", key, err)
				}
			}
			if err := repo.UpdateTask(ctx, model.Task{Key: "b", Title: "renamed"}); err != nil {
				t.Fatalf("update b: %v", err)
			}
			if err := repo.DeleteTask(ctx, "c"); err != nil {
				t.Fatalf("delete c: %v", err)
			}
			if err := repo.CreateTask(ctx, model.Task{Key: "e", Title: "title e"}); err != nil {
				t.Fatalf("create e: %v", err)
			}

			list, err := repo.ListTasks(ctx)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			want := []model.Key{"a", "b", "d", "e"}
			if len(list) != len(want) {
				t.Fatalf("list length = %d, want %d", len(list), len(want))
			}
			for i, key := range want {
				if list[i].Key != key {
					t.Fatalf("list[%d] = %s, want %s", i, list[i].Key, key)
				}
			}
			if list[1].Title != "renamed" {
				t.Fatalf("expected renamed title at position 1, got %q", list[1].Title)
			}
		})
	}
}

func TestMissingKeysAndDuplicates(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := repo.UpdateTask(ctx, model.Task{Key: "ghost", Title: "x"}); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound on update, got: %v", err)
			}
			if err := repo.DeleteTask(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound on delete, got: %v", err)
			}
			if err := repo.CreateTask(ctx, model.Task{Key: "k", Title: "first"}); err != nil {
				t.Fatalf("create: %v", err)
			}
			if err := repo.CreateTask(ctx, model.Task{Key: "k", Title: "second"}); !errors.Is(err, ErrDuplicateKey) {
				t.Fatalf("expected ErrDuplicateKey, got: %v", err)
			}
			list, err := repo.ListTasks(ctx)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(list) != 1 || list[0].Title != "first" {
				t.Fatalf("duplicate create must not change collection: %#v", list)
			}
		})
	}
}

func TestSQLiteDeleteCascadesMedia(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	if err := repo.CreateTask(ctx, model.Task{Key: "p", Title: "photo", Media: model.NewImage("file:///p.png", "")}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.DeleteTask(ctx, "p"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var count int
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM task_media`).Scan(&count); err != nil {
		t.Fatalf("count media: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected media rows to cascade, got %d", count)
	}
}
