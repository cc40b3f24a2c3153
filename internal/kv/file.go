package kv

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// File is a Store that keeps one file per key inside a directory.
//
// Writes go to a temp file first and are renamed into place, with an
// exclusive flock held on a per-key lock file so concurrent processes
// cannot interleave partial writes.
type File struct {
	dir string
}

// NewFile creates a file-backed store rooted at dir.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

func (f *File) valuePath(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) lockPath(key string) string {
	return filepath.Join(f.dir, key+".lock")
}

// Get reads the value for key. A missing file reports absence.
func (f *File) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if err := ValidateKey(key); err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(f.valuePath(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read value for %q: %w", key, err)
	}
	return data, true, nil
}

// Set writes value under key, replacing any previous value.
func (f *File) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateKey(key); err != nil {
		return err
	}

	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	return f.withLock(key, func() error {
		return writeAtomic(f.valuePath(key), value)
	})
}

// withLock executes fn while holding an exclusive lock for key.
func (f *File) withLock(key string, fn func() error) error {
	lockFile, err := os.OpenFile(f.lockPath(key), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	return fn()
}

func writeAtomic(path string, data []byte) error {
	if existing, err := os.ReadFile(path); err == nil {
		if bytes.Equal(existing, data) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read existing value: %w", err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmpFile.Name()

	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
