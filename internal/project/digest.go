package project

import (
	_ "crypto/sha256"
	"fmt"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
)

// Digest computes the canonical digest of the file at path.
func Digest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	d, err := digest.Canonical.FromReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to digest %s: %w", path, err)
	}
	return d.String(), nil
}

// Verify checks that the file at path matches the expected digest.
func Verify(path, expected string) error {
	d, err := digest.Parse(expected)
	if err != nil {
		return fmt.Errorf("failed to parse artifact digest '%s': %w", expected, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	verifier := d.Verifier()
	if _, err = io.Copy(verifier, f); err != nil {
		return err
	}
	if !verifier.Verified() {
		return fmt.Errorf("computed digest doesn't match '%s'", d.String())
	}
	return nil
}

// RecordDigest computes the digest of file and stores it on the artifact
// registered for it.
func (p *Project) RecordDigest(file string) error {
	artifact := p.Lookup(file)
	if artifact == nil {
		return fmt.Errorf("no artifact registered for %s", file)
	}

	d, err := Digest(file)
	if err != nil {
		return err
	}
	artifact.Digest = d
	return nil
}
