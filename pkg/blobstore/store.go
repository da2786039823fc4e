// Package blobstore stores uploaded files (covers, PDFs) on the local
// filesystem under randomly generated names. The database keeps only the
// generated name; everything else treats blobs as opaque.
package blobstore

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Blob name prefixes. Covers and PDFs live in separate subdirectories.
const (
	PrefixCover = "covers"
	PrefixPDF   = "books"
)

type Store struct {
	root string
}

// New creates a Store rooted at dir, creating the blob subdirectories if
// needed.
func New(dir string) (*Store, error) {
	for _, prefix := range []string{PrefixCover, PrefixPDF} {
		if err := os.MkdirAll(filepath.Join(dir, prefix), 0755); err != nil {
			return nil, errors.Wrapf(err, "failed to create blob directory: %s", prefix)
		}
	}
	return &Store{root: dir}, nil
}

// Put streams src into a new blob named {prefix}/{uuid}{ext} and returns the
// generated name and the number of bytes written. The blob is written to a
// temp file first and renamed into place so a failed write never leaves a
// partial blob under a resolvable name.
func (s *Store) Put(src io.Reader, prefix, ext string) (string, int64, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", 0, errors.WithStack(err)
	}
	name := prefix + "/" + id.String() + ext

	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return "", 0, errors.WithStack(err)
	}
	defer os.Remove(tmp.Name())

	size, err := io.Copy(tmp, src)
	if err != nil {
		tmp.Close()
		return "", 0, errors.WithStack(err)
	}
	if err := tmp.Close(); err != nil {
		return "", 0, errors.WithStack(err)
	}

	if err := os.Rename(tmp.Name(), s.Path(name)); err != nil {
		return "", 0, errors.WithStack(err)
	}

	return name, size, nil
}

// Delete removes a blob. Deleting a blob that no longer exists is not an
// error; replacement and soft-delete cleanup are best-effort.
func (s *Store) Delete(name string) error {
	err := os.Remove(s.Path(name))
	if err != nil && !os.IsNotExist(err) {
		return errors.WithStack(err)
	}
	return nil
}

// Exists reports whether the named blob is physically present. A book row can
// reference a blob that has gone missing; callers treat that as its own
// not-found case.
func (s *Store) Exists(name string) bool {
	if name == "" {
		return false
	}
	info, err := os.Stat(s.Path(name))
	return err == nil && !info.IsDir()
}

// Open opens a blob for reading.
func (s *Store) Open(name string) (*os.File, error) {
	f, err := os.Open(s.Path(name))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return f, nil
}

// Path resolves a blob name to a filesystem path inside the store root.
// Names with path traversal components resolve to an unopenable path instead
// of escaping the root.
func (s *Store) Path(name string) string {
	clean := filepath.Clean("/" + filepath.FromSlash(name))
	if strings.Contains(name, "..") {
		return filepath.Join(s.root, ".invalid")
	}
	return filepath.Join(s.root, clean)
}
