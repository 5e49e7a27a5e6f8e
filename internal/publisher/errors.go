package publisher

import (
	"errors"
	"fmt"
)

// ErrDuplicateArtifact is returned when the primary artifact would be
// replaced by a registration without a classifier.
var ErrDuplicateArtifact = errors.New("You must use a classifier to attach supplemental artifacts to the project instead of replacing them.")

// ConfigurationError reports a parameter that was left empty, or one with
// an unusable value when Reason is set.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s is not allowed to be empty", e.Field)
}

// DirectoryCreationError reports that the parent directory of the target
// did not exist and could not be created.
type DirectoryCreationError struct {
	Source string
	Target string
	Err    error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("failed to create directory for %s (copying from %s): %v", e.Target, e.Source, e.Err)
}

func (e *DirectoryCreationError) Unwrap() error {
	return e.Err
}

// CopyError reports a failed copy of the archive to its target.
type CopyError struct {
	Source string
	Target string
	Err    error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("failed to copy JAR from %s to %s: %v", e.Source, e.Target, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}
