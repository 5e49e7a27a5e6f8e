package publisher

import (
	"github.com/onestone/redistjar/pkg/xos"
)

// Project is the part of the project model an archive is registered on.
type Project interface {
	// ArtifactFile returns the file of the primary artifact, or "" if unset.
	ArtifactFile() string

	// SetArtifactFile sets the file of the primary artifact.
	SetArtifactFile(file string)

	// AttachArtifact appends a supplemental artifact.
	AttachArtifact(artifactType, classifier, file string)
}

// Register attaches file to project as a supplemental artifact when a
// classifier is given, and as the primary artifact otherwise. Replacing a
// primary artifact whose file exists fails with ErrDuplicateArtifact and
// leaves the project untouched.
func Register(project Project, artifactType, classifier, file string) error {
	if HasClassifier(classifier) {
		project.AttachArtifact(artifactType, classifier, file)
		return nil
	}

	if existing := project.ArtifactFile(); existing != "" && xos.IsFile(existing) {
		return ErrDuplicateArtifact
	}

	project.SetArtifactFile(file)
	return nil
}
