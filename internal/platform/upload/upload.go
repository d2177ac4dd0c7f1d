// Package upload stores multipart image uploads on local disk.
package upload

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrFileTooLarge is returned when an uploaded file exceeds the size ceiling.
var ErrFileTooLarge = errors.New("uploaded file is too large")

// Saver stores uploaded files under a single directory with a size ceiling.
type Saver struct {
	dir     string
	maxSize int64
}

// NewSaver creates a Saver writing into dir, rejecting files over maxSize bytes.
// The directory is created if it does not exist.
func NewSaver(dir string, maxSize int64) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Saver{dir: dir, maxSize: maxSize}, nil
}

// Save stores the uploaded file for the named form field and returns its
// path. A missing file is not an error: the returned path is empty.
func (s *Saver) Save(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		// JSONボディや画像なしフォームはエラーではない
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	if file.Size > s.maxSize {
		return "", ErrFileTooLarge
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitize(file.Filename))
	dst := filepath.Join(s.dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}
	return dst, nil
}

// sanitize strips path separators and whitespace from a client filename.
func sanitize(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r == '/' || r == '\\':
			return -1
		default:
			return r
		}
	}, name)
}
