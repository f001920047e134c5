// Package uploads stores admin-submitted media files on disk and hands
// back the public path they are served under.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrUnsupportedType = errors.New("unsupported media type")

// extByMIME is the accepted MIME allow-list and the extension stored files
// get. Anything absent is rejected.
var extByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"video/mp4":  ".mp4",
	"video/webm": ".webm",
}

// Store writes uploads under Dir with generated names.
type Store struct {
	Dir      string
	MaxBytes int64
}

func New(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{Dir: dir, MaxBytes: maxBytes}, nil
}

// Save persists one multipart file part and returns the stored file name.
// The declared Content-Type must be on the allow-list; size is enforced by
// the caller via http.MaxBytesReader before the part reaches us.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	ct := fh.Header.Get("Content-Type")
	ext, ok := extByMIME[strings.ToLower(strings.TrimSpace(ct))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ct)
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}
