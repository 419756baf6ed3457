package storage

import (
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// profileImageDir is the subdirectory of the public root holding uploads.
const profileImageDir = "profile-images"

// ErrOutsideRoot is returned when a reference resolves outside the
// storage root.
var ErrOutsideRoot = errors.New("path escapes storage root")

// FileStorage stores uploaded binary images under a public root directory.
// Files are addressed by the relative URL path kept on the user record,
// e.g. "/profile-images/<name>.png".
type FileStorage struct {
	root string
}

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{root: root}
}

// SaveProfileImage writes the content under profile-images/<filename>,
// creating the directory on first use, and returns the relative URL path
// to store on the user record.
func (s *FileStorage) SaveProfileImage(filename string, content io.Reader) (string, error) {
	dir := filepath.Join(s.root, profileImageDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", err
	}

	return "/" + path.Join(profileImageDir, filename), nil
}

// Remove deletes the file referenced by a relative URL path. Callers treat
// the returned error as best-effort information: it is logged, never
// propagated to the client.
func (s *FileStorage) Remove(relPath string) error {
	full := filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(relPath, "/")))

	rootAbs, err := filepath.Abs(s.root)
	if err != nil {
		return err
	}
	fullAbs, err := filepath.Abs(full)
	if err != nil {
		return err
	}
	if fullAbs != rootAbs && !strings.HasPrefix(fullAbs, rootAbs+string(os.PathSeparator)) {
		return ErrOutsideRoot
	}

	return os.Remove(fullAbs)
}
