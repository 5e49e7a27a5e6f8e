// Package project provides the on-disk project model that redistributed
// archives are registered on.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/onestone/redistjar/pkg/xos"
)

// DescriptorFileName is the project descriptor kept at the project root.
const DescriptorFileName = "redist.yaml"

const (
	defaultBuildDirectory = "target"
)

// Project is the project descriptor. It implements publisher.Project.
type Project struct {
	GroupID    string `yaml:"groupId,omitempty"`
	ArtifactID string `yaml:"artifactId"`
	Version    string `yaml:"version"`

	Build BuildConfig `yaml:"build,omitempty"`

	// Artifact is the primary artifact.
	Artifact *Artifact `yaml:"artifact,omitempty"`

	// AttachedArtifacts are the supplemental artifacts, in registration order.
	AttachedArtifacts []Artifact `yaml:"attachedArtifacts,omitempty"`

	// dir is the project root the descriptor was loaded from.
	dir string
}

// BuildConfig holds build output settings.
type BuildConfig struct {
	// Directory is the build output directory, relative to the project root.
	Directory string `yaml:"directory,omitempty"`

	// FinalName is the base name of produced archives.
	FinalName string `yaml:"finalName,omitempty"`
}

// Artifact is a file registered on the project.
type Artifact struct {
	Type       string `yaml:"type,omitempty"`
	Classifier string `yaml:"classifier,omitempty"`
	File       string `yaml:"file"`
	Digest     string `yaml:"digest,omitempty"`
}

// New creates a project descriptor rooted at dir.
func New(dir, groupID, artifactID, version string) *Project {
	return &Project{
		GroupID:    groupID,
		ArtifactID: artifactID,
		Version:    version,
		dir:        dir,
	}
}

// Load loads the project descriptor from dir.
func Load(dir string) (*Project, error) {
	return LoadFrom(filepath.Join(dir, DescriptorFileName))
}

// LoadFrom loads the project descriptor from the specified file.
func LoadFrom(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project descriptor: %w", err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project descriptor: %w", err)
	}
	p.dir = filepath.Dir(path)

	if err := NewValidator().Validate(&p); err != nil {
		return nil, fmt.Errorf("invalid project descriptor: %w", err)
	}

	return &p, nil
}

// Save writes the descriptor back to the project root.
func (p *Project) Save() error {
	if p.dir == "" {
		return errors.New("project has no root directory")
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project descriptor: %w", err)
	}

	if err := xos.WriteFile(filepath.Join(p.dir, DescriptorFileName), data, 0o644); err != nil {
		return fmt.Errorf("failed to write project descriptor: %w", err)
	}

	return nil
}

// Dir returns the project root.
func (p *Project) Dir() string {
	return p.dir
}

// Path resolves a path recorded in the descriptor against the project root.
func (p *Project) Path(file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(p.dir, file)
}

// ArtifactFile returns the absolute file of the primary artifact, or "".
func (p *Project) ArtifactFile() string {
	if p.Artifact == nil {
		return ""
	}
	return p.Path(p.Artifact.File)
}

// SetArtifactFile sets the file of the primary artifact.
func (p *Project) SetArtifactFile(file string) {
	p.Artifact = &Artifact{File: p.rel(file)}
}

// AttachArtifact appends a supplemental artifact. Attaching a file that is
// already attached replaces that entry in place.
func (p *Project) AttachArtifact(artifactType, classifier, file string) {
	artifact := Artifact{
		Type:       artifactType,
		Classifier: classifier,
		File:       p.rel(file),
	}
	for i := range p.AttachedArtifacts {
		if p.AttachedArtifacts[i].File == artifact.File {
			p.AttachedArtifacts[i] = artifact
			return
		}
	}
	p.AttachedArtifacts = append(p.AttachedArtifacts, artifact)
}

// Lookup returns the registered artifact recorded for file, primary first.
func (p *Project) Lookup(file string) *Artifact {
	if p.Artifact != nil && p.Path(p.Artifact.File) == file {
		return p.Artifact
	}
	for i := range p.AttachedArtifacts {
		if p.Path(p.AttachedArtifacts[i].File) == file {
			return &p.AttachedArtifacts[i]
		}
	}
	return nil
}

// Artifacts returns the primary artifact, if any, followed by the attached ones.
func (p *Project) Artifacts() []Artifact {
	artifacts := make([]Artifact, 0, len(p.AttachedArtifacts)+1)
	if p.Artifact != nil {
		artifacts = append(artifacts, *p.Artifact)
	}
	return append(artifacts, p.AttachedArtifacts...)
}

// Reset clears every registration.
func (p *Project) Reset() {
	p.Artifact = nil
	p.AttachedArtifacts = nil
}

// rel records file relative to the project root when it lives below it.
func (p *Project) rel(file string) string {
	if p.dir == "" || !filepath.IsAbs(file) {
		return file
	}
	rel, err := filepath.Rel(p.dir, file)
	if err != nil || !filepath.IsLocal(rel) {
		return file
	}
	return filepath.ToSlash(rel)
}

// BuildDirectory returns build.directory, or "target" when it is not set.
func (p *Project) BuildDirectory() string {
	if p.Build.Directory != "" {
		return p.Build.Directory
	}
	return defaultBuildDirectory
}

// FinalName returns build.finalName, or artifactId-version when it is not
// set. The default follows the current coordinates and is never stored.
func (p *Project) FinalName() string {
	if p.Build.FinalName != "" {
		return p.Build.FinalName
	}
	if p.Version == "" {
		return p.ArtifactID
	}
	return p.ArtifactID + "-" + p.Version
}
