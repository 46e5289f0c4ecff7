// Package storage holds the byte-storage layer: collision-free naming, the
// flat on-disk store uploads are written to, and an optional S3 mirror for
// completed files.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Handle is the writable handle of an in-progress upload. Chunks may arrive
// out of order, so writes are positional.
type Handle interface {
	io.WriterAt
	io.Closer

	// Size returns the current length of the underlying file.
	Size() (int64, error)
}

// Store abstracts the byte store the transfer services run against.
type Store interface {
	// CreateNew atomically creates a file for the desired name, renaming on
	// collision, and returns the final name with an open writable handle.
	CreateNew(desired string) (string, Handle, error)

	// Path returns the full storage path for a stored name.
	Path(name string) string

	Open(path string) (io.ReadCloser, error)
	Size(path string) (int64, error)
	Remove(path string) error
}

// DiskStore stores every file in one flat directory per deployment.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the storage directory if needed and returns a store
// rooted there.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &DiskStore{dir: dir}, nil
}

// CreateNew resolves a collision-free name against the current directory
// listing and opens the file with O_EXCL. Resolving and creating are two
// steps, so a concurrent upload can win the name between them; when that
// happens the colliding name is added to the set and resolution is retried.
// The returned file exists on disk and is owned by the caller.
func (s *DiskStore) CreateNew(desired string) (string, Handle, error) {
	// Strip any client-supplied directory components.
	base := filepath.Base(desired)
	if base == "." || base == string(filepath.Separator) {
		return "", nil, fmt.Errorf("invalid file name %q", desired)
	}

	existing, err := s.list()
	if err != nil {
		return "", nil, err
	}

	name := ResolveName(base, existing)
	for {
		f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o640)
		if err == nil {
			return name, &diskHandle{f: f}, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", nil, fmt.Errorf("create %s: %w", name, err)
		}
		// Lost the race for this name; take it off the table and retry.
		existing[name] = struct{}{}
		name = ResolveName(base, existing)
	}
}

// Path returns the full storage path for a stored name.
func (s *DiskStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Open opens a stored file for sequential reading.
func (s *DiskStore) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Size returns the on-disk length of a stored file.
func (s *DiskStore) Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Remove deletes a stored file.
func (s *DiskStore) Remove(path string) error {
	return os.Remove(path)
}

func (s *DiskStore) list() (map[string]struct{}, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", s.dir, err)
	}
	names := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		names[e.Name()] = struct{}{}
	}
	return names, nil
}

type diskHandle struct {
	f *os.File
}

func (h *diskHandle) WriteAt(p []byte, off int64) (int, error) {
	return h.f.WriteAt(p, off)
}

func (h *diskHandle) Close() error {
	return h.f.Close()
}

func (h *diskHandle) Size() (int64, error) {
	info, err := h.f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
