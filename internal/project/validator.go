package project

import (
	"fmt"
	"regexp"
)

var (
	// coordinatePattern matches valid group and artifact identifiers.
	coordinatePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

// Validator validates project descriptors.
type Validator struct{}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the entire descriptor.
func (v *Validator) Validate(p *Project) error {
	if err := v.validateCoordinates(p); err != nil {
		return fmt.Errorf("coordinates validation failed: %w", err)
	}

	if err := v.validateArtifacts(p); err != nil {
		return fmt.Errorf("artifacts validation failed: %w", err)
	}

	return nil
}

func (v *Validator) validateCoordinates(p *Project) error {
	if p.ArtifactID == "" {
		return fmt.Errorf("artifactId is required")
	}
	if !coordinatePattern.MatchString(p.ArtifactID) {
		return fmt.Errorf("invalid artifactId %q", p.ArtifactID)
	}

	if p.GroupID != "" && !coordinatePattern.MatchString(p.GroupID) {
		return fmt.Errorf("invalid groupId %q", p.GroupID)
	}

	if p.Version == "" {
		return fmt.Errorf("version is required")
	}

	return nil
}

func (v *Validator) validateArtifacts(p *Project) error {
	if p.Artifact != nil && p.Artifact.File == "" {
		return fmt.Errorf("artifact file is required")
	}

	seen := make(map[string]bool, len(p.AttachedArtifacts))
	for i, a := range p.AttachedArtifacts {
		if a.File == "" {
			return fmt.Errorf("attached artifact %d: file is required", i)
		}
		if a.Classifier == "" {
			return fmt.Errorf("attached artifact %d: classifier is required", i)
		}

		if seen[a.File] {
			return fmt.Errorf("file %s is attached more than once", a.File)
		}
		seen[a.File] = true
	}

	return nil
}
