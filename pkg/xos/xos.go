//go:build !windows
// +build !windows

// Package xos provides cross-platform atomic file operations.
// It uses atomic rename operations so a reader never observes a partially
// written archive or descriptor.
package xos

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// WriteFile writes data to the named file atomically using rename.
// If the file does not exist, WriteFile creates it with permissions perm;
// otherwise it is replaced.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(filename, data, perm)
}

// CopyFile copies the regular file src to dst, replacing dst if it exists.
// The temp file is created next to dst so the final rename never crosses
// filesystems. Every copied byte is also written to the given observers.
func CopyFile(src, dst string, observers ...io.Writer) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, err
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%s is not a regular file", src)
	}

	t, err := renameio.TempFile(filepath.Dir(dst), dst)
	if err != nil {
		return 0, err
	}
	defer t.Cleanup()

	written, err := io.Copy(t, teeReader(in, observers))
	if err != nil {
		return written, err
	}

	if err := t.Chmod(info.Mode().Perm()); err != nil {
		return written, err
	}

	return written, t.CloseAtomicallyReplace()
}

// IsFile reports whether path names an existing regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path names an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func teeReader(r io.Reader, observers []io.Writer) io.Reader {
	if len(observers) == 0 {
		return r
	}
	return io.TeeReader(r, io.MultiWriter(observers...))
}
