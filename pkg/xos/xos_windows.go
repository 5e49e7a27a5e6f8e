//go:build windows
// +build windows

// Package xos provides cross-platform atomic file operations.
// On Windows, we use a fallback approach since renaming over an existing
// file is not atomic there.
package xos

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFile writes data to the named file.
// On Windows, this uses a temp file + rename approach within the same directory.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	_, err := writeReplace(filename, bytes.NewReader(data), perm)
	return err
}

// CopyFile copies the regular file src to dst, replacing dst if it exists.
// Every copied byte is also written to the given observers.
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

	return writeReplace(dst, teeReader(in, observers), info.Mode().Perm())
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

func writeReplace(filename string, r io.Reader, perm os.FileMode) (int64, error) {
	// Create temp file in the same directory as the target
	tempFile, err := os.CreateTemp(filepath.Dir(filename), ".tmp-*")
	if err != nil {
		return 0, err
	}
	tempName := tempFile.Name()

	// Clean up temp file on failure
	success := false
	defer func() {
		if !success {
			os.Remove(tempName)
		}
	}()

	written, err := io.Copy(tempFile, r)
	if err != nil {
		tempFile.Close()
		return written, err
	}

	// Sync to ensure data is on disk
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return written, err
	}

	if err := tempFile.Close(); err != nil {
		return written, err
	}

	if err := os.Chmod(tempName, perm); err != nil {
		return written, err
	}

	// On Windows, we need to remove the target first if it exists
	if _, err := os.Stat(filename); err == nil {
		if err := os.Remove(filename); err != nil {
			return written, err
		}
	}

	if err := os.Rename(tempName, filename); err != nil {
		return written, err
	}

	success = true
	return written, nil
}

func teeReader(r io.Reader, observers []io.Writer) io.Reader {
	if len(observers) == 0 {
		return r
	}
	return io.TeeReader(r, io.MultiWriter(observers...))
}
