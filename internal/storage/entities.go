package storage

import (
	"database/sql"

	"github.com/sandeepkv93/snaplist/internal/model"
)

// taskRow mirrors a tasks row joined with its optional task_media row.
type taskRow struct {
	Key         string
	Title       string
	Description string
	Completed   int
	MediaURI    sql.NullString
	MediaKind   sql.NullString
	MediaName   sql.NullString
}

func (r taskRow) toTask() model.Task {
	out := model.Task{
		Key:         model.Key(r.Key),
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed == 1,
	}
	if r.MediaURI.Valid {
		out.Media = &model.MediaAttachment{
			URI:         r.MediaURI.String,
			Kind:        model.MediaKind(r.MediaKind.String),
			DisplayName: r.MediaName.String,
		}
	}
	return out
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var row taskRow
	if err := s.Scan(&row.Key, &row.Title, &row.Description, &row.Completed, &row.MediaURI, &row.MediaKind, &row.MediaName); err != nil {
		return model.Task{}, err
	}
	return row.toTask(), nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
