// Package config resolves the parameters of the jar goal with precedence
// handling.
package config

import (
	"fmt"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/onestone/redistjar/internal/project"
	"github.com/onestone/redistjar/internal/publisher"
)

// Params are the parameters of the jar goal as given on the command line or
// through the environment. Empty fields fall back to the project descriptor.
type Params struct {
	// JarFile is the pre-built archive to redistribute. Required.
	JarFile string

	// OutputDirectory defaults to the project's build directory.
	OutputDirectory string

	// FinalName defaults to the project's build final name.
	FinalName string

	// Classifier is optional.
	Classifier string
}

// Resolver handles configuration precedence: CLI flags / environment > redist.yaml > defaults
type Resolver struct {
	project *project.Project
}

// NewResolver creates a new configuration resolver.
func NewResolver(p *project.Project) *Resolver {
	return &Resolver{
		project: p,
	}
}

// ResolveJarFile resolves the archive to copy. It has no default.
func (r *Resolver) ResolveJarFile(cliJarFile string) (string, error) {
	if cliJarFile == "" {
		return "", &publisher.ConfigurationError{Field: "jar file"}
	}
	return r.resolvePath("jar file", cliJarFile)
}

// ResolveOutputDirectory resolves the directory the archive is copied to.
// Precedence: CLI flag > build.directory
func (r *Resolver) ResolveOutputDirectory(cliOutputDirectory string) (string, error) {
	if cliOutputDirectory != "" {
		return r.resolvePath("output directory", cliOutputDirectory)
	}
	return r.resolvePath("build directory", r.project.BuildDirectory())
}

// ResolveFinalName resolves the base name of the copied archive.
// Precedence: CLI flag > build.finalName > artifactId-version
func (r *Resolver) ResolveFinalName(cliFinalName string) string {
	if cliFinalName != "" {
		return cliFinalName
	}
	return r.project.FinalName()
}

// Resolve turns params into a publish request with absolute paths.
func (r *Resolver) Resolve(params Params) (publisher.Request, error) {
	jarFile, err := r.ResolveJarFile(params.JarFile)
	if err != nil {
		return publisher.Request{}, err
	}

	outputDirectory, err := r.ResolveOutputDirectory(params.OutputDirectory)
	if err != nil {
		return publisher.Request{}, err
	}

	return publisher.Request{
		JarFile:         jarFile,
		OutputDirectory: outputDirectory,
		FinalName:       r.ResolveFinalName(params.FinalName),
		Classifier:      params.Classifier,
	}, nil
}

// resolvePath keeps absolute paths and resolves relative ones inside the
// project root. Relative paths leaving the root are rejected.
func (r *Resolver) resolvePath(field, path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	if !filepath.IsLocal(path) {
		return "", &publisher.ConfigurationError{
			Field:  field,
			Reason: fmt.Sprintf("%q leaves the project root, use an absolute path instead", path),
		}
	}
	return securejoin.SecureJoin(r.project.Dir(), path)
}
