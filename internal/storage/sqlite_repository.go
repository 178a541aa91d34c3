package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/sandeepkv93/snaplist/internal/model"
)

const selectTaskColumns = `
	SELECT t.task_key, t.title, t.description, t.completed, m.uri, m.kind, m.display_name
	FROM tasks t LEFT JOIN task_media m ON m.task_key = t.task_key`

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenMemorySQLite opens a private in-memory database and applies the schema.
// The pool is pinned to one connection because every new :memory: connection
// would see an empty database.
func OpenMemorySQLite() (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateTask(ctx context.Context, in model.Task) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO tasks (task_key, position, title, description, completed)
			VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM tasks), ?, ?, ?)`,
			string(in.Key), in.Title, in.Description, boolInt(in.Completed),
		)
		if err != nil {
			if isPrimaryKeyViolation(err) {
				return ErrDuplicateKey
			}
			return err
		}
		return insertMedia(ctx, tx, in)
	})
}

func (r *SQLiteRepository) GetTask(ctx context.Context, key model.Key) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, selectTaskColumns+` WHERE t.task_key = ?`, string(key))
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, err
	}
	return task, nil
}

func (r *SQLiteRepository) UpdateTask(ctx context.Context, in model.Task) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE tasks
			SET title = ?, description = ?, completed = ?
			WHERE task_key = ?`,
			in.Title, in.Description, boolInt(in.Completed), string(in.Key),
		)
		if err != nil {
			return err
		}
		if err := checkRowsAffected(res); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM task_media WHERE task_key = ?`, string(in.Key)); err != nil {
			return err
		}
		return insertMedia(ctx, tx, in)
	})
}

func (r *SQLiteRepository) DeleteTask(ctx context.Context, key model.Key) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE task_key = ?`, string(key))
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTaskColumns+` ORDER BY t.position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func insertMedia(ctx context.Context, tx *sql.Tx, in model.Task) error {
	if in.Media == nil {
		return nil
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO task_media (task_key, uri, kind, display_name)
		VALUES (?, ?, ?, ?)`,
		string(in.Key), in.Media.URI, string(in.Media.Kind), in.Media.DisplayName,
	)
	return err
}

func isPrimaryKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
