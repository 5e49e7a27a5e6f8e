package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/onestone/redistjar/internal/project"
)

// projectRoot returns --project-dir when given, otherwise the nearest
// directory containing redist.yaml.
func (o *rootOptions) projectRoot() (string, error) {
	if dir := o.v.GetString("project-dir"); dir != "" {
		return filepath.Abs(dir)
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findProjectRoot(dir)
}

// findProjectRoot finds the project root by looking for redist.yaml
func findProjectRoot(dir string) (string, error) {
	// Traverse up the directory tree looking for redist.yaml
	for {
		descriptor := filepath.Join(dir, project.DescriptorFileName)
		if _, err := os.Stat(descriptor); err == nil {
			return dir, nil
		}

		// Check if we've reached the root
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found in current directory or any parent directory", project.DescriptorFileName)
}

// loadProject loads the project descriptor of the current project.
func (o *rootOptions) loadProject() (*project.Project, error) {
	dir, err := o.projectRoot()
	if err != nil {
		return nil, err
	}
	return project.Load(dir)
}

// editProject runs fn on the current project under the project lock and
// saves the descriptor when fn succeeds.
func (o *rootOptions) editProject(fn func(p *project.Project) error) error {
	dir, err := o.projectRoot()
	if err != nil {
		return err
	}

	unlock, err := project.Lock(dir)
	if err != nil {
		return fmt.Errorf("failed to lock project: %w", err)
	}
	defer unlock()

	p, err := project.Load(dir)
	if err != nil {
		return err
	}

	if err := fn(p); err != nil {
		return err
	}

	return p.Save()
}

// displayPath shortens paths below the project root.
func displayPath(p *project.Project, path string) string {
	rel, err := filepath.Rel(p.Dir(), path)
	if err != nil || !filepath.IsLocal(rel) {
		return path
	}
	return rel
}
