// Package media turns a user's photo choice into a model.MediaAttachment.
package media

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/snaplist/internal/model"
)

var (
	ErrCancelled = errors.New("media: pick cancelled")
	ErrNotImage  = errors.New("media: not an image")
)

const DefaultDisplayName = "Image File"

// ImageExtensions lists the file types the pickers accept.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".heic", ".bmp"}

// Picker returns zero or one attachment. Cancellation is ErrCancelled and
// must leave any pending attachment alone.
type Picker interface {
	Pick(ctx context.Context) (*model.MediaAttachment, error)
}

// FilePicker picks the image at Path.
type FilePicker struct {
	Path string
}

func (p FilePicker) Pick(ctx context.Context) (*model.MediaAttachment, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}
	if strings.TrimSpace(p.Path) == "" {
		return nil, ErrCancelled
	}
	return FromPath(p.Path)
}

// FromPath validates path as a readable image file and wraps it as a file://
// attachment named after the file.
func FromPath(path string) (*model.MediaAttachment, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("media: stat %s: %w", resolved, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrNotImage, resolved)
	}
	if !IsImagePath(resolved) {
		return nil, fmt.Errorf("%w: %s", ErrNotImage, filepath.Base(resolved))
	}
	name := filepath.Base(resolved)
	if name == "" || name == "." {
		name = DefaultDisplayName
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(resolved)}
	return model.NewImage(u.String(), name), nil
}

func IsImagePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range ImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// LocalPath reverses a file:// URI produced by FromPath.
func LocalPath(uri string) (string, bool) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return "", false
	}
	return filepath.FromSlash(u.Path), true
}

func resolvePath(path string) (string, error) {
	p := strings.TrimSpace(path)
	if strings.HasPrefix(p, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("media: resolve home: %w", err)
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("media: resolve %s: %w", path, err)
	}
	return abs, nil
}
