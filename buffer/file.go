package buffer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// SaveError reports a failed write. The session that attempted it is left
// untouched, so the caller can retry or pick another path.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Load reads the file at path. A missing file yields an empty, non-nil slice
// so a new file can be created by editing and saving.
func Load(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []byte{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

// Open loads path into a new Session.
func Open(path string, opt Options) (*Session, error) {
	b, err := Load(path)
	if err != nil {
		return nil, err
	}
	return New(b, opt), nil
}

// Save writes data to path, replacing its content in place.
func Save(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}

// SaveTo writes the session content to path and, on success, marks it as
// the unmodified baseline. It returns the number of bytes written.
func (s *Session) SaveTo(path string) (int, error) {
	if err := Save(path, s.data.b); err != nil {
		return 0, err
	}
	s.saved = s.digest()
	s.version++
	return s.data.Len(), nil
}
