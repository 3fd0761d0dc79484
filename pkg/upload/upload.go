package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFileSize is the upload cap (5 MiB).
const MaxFileSize = 5 << 20

var (
	ErrInvalidFile  = errors.New("only image files are allowed")
	ErrFileTooLarge = errors.New("file size too large, maximum size is 5MB")
)

// Saver writes uploaded images under a root directory, one subdirectory per
// resource kind. Saved files are served back under /uploads.
type Saver struct {
	root string
}

func NewSaver(root string) *Saver {
	return &Saver{root: root}
}

// Save validates the file and persists it under root/namespace, returning
// the externally servable path. Nothing is written when validation fails.
func (s *Saver) Save(file *multipart.FileHeader, namespace string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrInvalidFile
	}

	if file.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	dir := filepath.Join(s.root, namespace)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := fmt.Sprintf("%d-%s%s",
		time.Now().UnixNano(),
		uuid.New().String()[:8],
		filepath.Ext(file.Filename),
	)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/uploads/" + namespace + "/" + name, nil
}
