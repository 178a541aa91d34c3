package model

import (
	"fmt"
	"strings"
)

type MediaKind string

const MediaKindImage MediaKind = "image"

func (k MediaKind) IsValid() bool {
	return k == MediaKindImage
}

// MediaAttachment is an opaque reference to a locally selected image. Values
// are shared between tasks and drafts by pointer and must not be mutated.
type MediaAttachment struct {
	URI         string
	Kind        MediaKind
	DisplayName string
}

func NewImage(uri, displayName string) *MediaAttachment {
	return &MediaAttachment{URI: uri, Kind: MediaKindImage, DisplayName: displayName}
}

func (m MediaAttachment) Validate() error {
	if strings.TrimSpace(m.URI) == "" {
		return fmt.Errorf("%w: media uri is required", ErrInvalidInput)
	}
	if !m.Kind.IsValid() {
		return fmt.Errorf("%w: unsupported media kind %q", ErrInvalidInput, m.Kind)
	}
	return nil
}

func (m MediaAttachment) IsImage() bool {
	return m.Kind == MediaKindImage
}
