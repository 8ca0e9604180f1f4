package blob

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	clubhub_errors "clubhub/pkg/errors"

	"github.com/google/uuid"
)

// Kind selects the storage policy for an upload.
type Kind string

const (
	KindActivity Kind = "activity"
	KindDesign   Kind = "design"
	KindFinance  Kind = "finance"
)

// Policy describes where a kind's blobs live and what may be stored
// there. The table replaces the original's path-string branching: the
// policy is picked once at request entry and carried through.
type Policy struct {
	Dir          string
	MaxSizeBytes int64
	Extensions   []string
}

func defaultPolicies() map[Kind]Policy {
	return map[Kind]Policy{
		KindActivity: {
			Dir:          "activity",
			MaxSizeBytes: 50 << 20,
			Extensions:   []string{".pdf", ".doc", ".docx", ".xls", ".xlsx"},
		},
		KindDesign: {
			Dir:          "design",
			MaxSizeBytes: 50 << 20,
			Extensions:   []string{".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png", ".gif", ".mp4", ".mov", ".avi"},
		},
		KindFinance: {
			Dir:          "finance",
			MaxSizeBytes: 5 << 20,
			Extensions:   []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
		},
	}
}

// Store is a filesystem blob store rooted at a single upload directory,
// one subdirectory per kind. Filenames are generated uuids so concurrent
// saves never collide and no locking is needed.
type Store struct {
	root     string
	policies map[Kind]Policy
}

// New creates the store and its per-kind directories.
func New(root string) (*Store, error) {
	s := &Store{root: root, policies: defaultPolicies()}
	for _, p := range s.policies {
		if err := os.MkdirAll(filepath.Join(root, p.Dir), 0o755); err != nil {
			return nil, fmt.Errorf("create blob dir: %w", err)
		}
	}
	return s, nil
}

// Policy returns the storage policy for a kind.
func (s *Store) Policy(kind Kind) (Policy, bool) {
	p, ok := s.policies[kind]
	return p, ok
}

// Allowed reports whether the original filename's extension is accepted
// for the kind.
func (s *Store) Allowed(kind Kind, originalName string) bool {
	p, ok := s.policies[kind]
	if !ok {
		return false
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	for _, allowed := range p.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Save writes src under a freshly generated filename and returns it.
// The size limit is enforced while copying; an oversized or failed write
// leaves nothing behind.
func (s *Store) Save(kind Kind, originalName string, src io.Reader) (string, int64, error) {
	p, ok := s.policies[kind]
	if !ok {
		return "", 0, fmt.Errorf("%w: unknown blob kind %q", clubhub_errors.ErrStorage, kind)
	}
	if !s.Allowed(kind, originalName) {
		return "", 0, fmt.Errorf("%w: file type not allowed", clubhub_errors.ErrInvalidInput)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.New().String() + ext
	path := filepath.Join(s.root, p.Dir, name)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", clubhub_errors.ErrStorage, err)
	}

	written, err := io.Copy(dst, io.LimitReader(src, p.MaxSizeBytes+1))
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("%w: %v", clubhub_errors.ErrStorage, err)
	}
	if written > p.MaxSizeBytes {
		os.Remove(path)
		return "", 0, clubhub_errors.ErrTooLarge
	}

	return name, written, nil
}

// Open returns a reader over a stored blob. Missing files yield
// ErrNotFound so callers can distinguish drift from other I/O failures.
func (s *Store) Open(kind Kind, name string) (*os.File, error) {
	path, err := s.Path(kind, name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, clubhub_errors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", clubhub_errors.ErrStorage, err)
	}
	return f, nil
}

// Stat reports the size of a stored blob.
func (s *Store) Stat(kind Kind, name string) (int64, error) {
	path, err := s.Path(kind, name)
	if err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, clubhub_errors.ErrNotFound
		}
		return 0, fmt.Errorf("%w: %v", clubhub_errors.ErrStorage, err)
	}
	return info.Size(), nil
}

// Remove deletes a stored blob. A blob that is already gone is not an
// error: the row is the authoritative existence signal.
func (s *Store) Remove(kind Kind, name string) error {
	path, err := s.Path(kind, name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", clubhub_errors.ErrStorage, err)
	}
	return nil
}

// Path resolves a stored filename to its absolute location, rejecting
// names that would escape the kind's directory.
func (s *Store) Path(kind Kind, name string) (string, error) {
	p, ok := s.policies[kind]
	if !ok {
		return "", fmt.Errorf("%w: unknown blob kind %q", clubhub_errors.ErrStorage, kind)
	}
	if name == "" || name != filepath.Base(name) {
		return "", clubhub_errors.ErrInvalidInput
	}
	return filepath.Join(s.root, p.Dir, name), nil
}
