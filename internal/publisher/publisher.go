// Package publisher places a pre-built archive in the build output directory
// and registers it as the primary or a supplemental project artifact.
package publisher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/onestone/redistjar/pkg/xos"
)

// ArtifactTypeJar is the artifact type registered for redistributed archives.
const ArtifactTypeJar = "jar"

// Request describes a single redistribution of an archive.
type Request struct {
	// JarFile is the pre-built archive to copy.
	JarFile string

	// OutputDirectory receives the copied archive.
	OutputDirectory string

	// FinalName is the file name of the archive, without classifier and extension.
	FinalName string

	// Classifier is optional. When set, the archive is attached as a
	// supplemental artifact instead of becoming the primary one.
	Classifier string
}

// Publisher copies archives into place and registers them on a project.
// It holds no per-request state, so one Publisher can serve concurrent
// requests for different targets.
type Publisher struct {
	logger   *log.Logger
	progress func(size int64) io.Writer
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the logger used to report copy failures.
func WithLogger(logger *log.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithProgress registers a factory for a writer that observes the copied
// bytes. It is called once per copy with the size of the source archive.
func WithProgress(progress func(size int64) io.Writer) Option {
	return func(p *Publisher) {
		p.progress = progress
	}
}

// New creates a Publisher.
func New(opts ...Option) *Publisher {
	p := &Publisher{
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// HasClassifier reports whether classifier contains something other than
// white space.
func HasClassifier(classifier string) bool {
	return strings.TrimSpace(classifier) != ""
}

// TargetPath returns the file the archive is copied to:
// outputDirectory/finalName[-classifier].jar.
func TargetPath(outputDirectory, finalName, classifier string) (string, error) {
	if outputDirectory == "" {
		return "", &ConfigurationError{Field: "output directory"}
	}
	if finalName == "" {
		return "", &ConfigurationError{Field: "final name"}
	}

	var name strings.Builder
	name.WriteString(finalName)
	if HasClassifier(classifier) {
		name.WriteString("-")
		name.WriteString(classifier)
	}
	name.WriteString(".jar")

	return filepath.Join(outputDirectory, name.String()), nil
}

// Publish copies req.JarFile to its target path, replacing any file already
// there, and returns the target path.
func (p *Publisher) Publish(ctx context.Context, req Request) (string, error) {
	target, err := TargetPath(req.OutputDirectory, req.FinalName, req.Classifier)
	if err != nil {
		return "", err
	}

	// Only the last path element is created; the output directory's own
	// parent must already exist.
	dir := filepath.Dir(target)
	if !xos.IsDir(dir) {
		p.logger.Debug("creating output directory", "dir", dir)
		if err := os.Mkdir(dir, 0o755); err != nil && !os.IsExist(err) {
			return "", &DirectoryCreationError{Source: req.JarFile, Target: target, Err: err}
		}
	}

	var observers []io.Writer
	if p.progress != nil {
		if info, err := os.Stat(req.JarFile); err == nil {
			observers = append(observers, p.progress(info.Size()))
		}
	}

	n, err := xos.CopyFile(req.JarFile, target, observers...)
	if err != nil {
		p.logger.Error("error during copying", "source", req.JarFile, "target", target, "err", err)
		return "", &CopyError{Source: req.JarFile, Target: target, Err: err}
	}
	p.logger.Debug("copied archive", "source", req.JarFile, "target", target, "bytes", n)

	return target, nil
}

// Execute publishes the archive described by req and registers the result
// on project as a jar artifact.
func (p *Publisher) Execute(ctx context.Context, project Project, req Request) (string, error) {
	target, err := p.Publish(ctx, req)
	if err != nil {
		return "", err
	}

	if err := Register(project, ArtifactTypeJar, req.Classifier, target); err != nil {
		return "", err
	}

	return target, nil
}
