package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("model: invalid input")
	ErrNotFound     = errors.New("model: task not found")
)

// Key identifies a task for its whole lifetime. It is never reused.
type Key string

func (k Key) String() string { return string(k) }

type Task struct {
	Key         Key
	Title       string
	Description string
	Completed   bool
	Media       *MediaAttachment
}

// HasMedia reports whether an attachment is present.
func (t Task) HasMedia() bool {
	return t.Media != nil
}

func (t Task) Validate() error {
	if strings.TrimSpace(string(t.Key)) == "" {
		return fmt.Errorf("%w: task key is required", ErrInvalidInput)
	}
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if t.Media != nil {
		if err := t.Media.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTitle rejects titles that are empty once surrounding whitespace is
// removed. The title itself is stored as entered.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: task title is required", ErrInvalidInput)
	}
	return nil
}
