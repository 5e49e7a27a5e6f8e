package publisher_test

import (
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	. "github.com/onestone/redistjar/internal/publisher"
)

type attached struct {
	artifactType string
	classifier   string
	file         string
}

type fakeProject struct {
	artifact string
	attached []attached
}

func (p *fakeProject) ArtifactFile() string { return p.artifact }

func (p *fakeProject) SetArtifactFile(file string) { p.artifact = file }

func (p *fakeProject) AttachArtifact(artifactType, classifier, file string) {
	p.attached = append(p.attached, attached{artifactType, classifier, file})
}

func TestRegister_Primary(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()
	first := writeJar(t, dir, "first.jar", "1")
	second := writeJar(t, dir, "second.jar", "2")
	project := &fakeProject{}

	g.Expect(Register(project, ArtifactTypeJar, "", first)).To(Succeed())
	g.Expect(project.artifact).To(Equal(first))

	err := Register(project, ArtifactTypeJar, "  ", second)
	g.Expect(err).To(MatchError(ErrDuplicateArtifact))
	g.Expect(err.Error()).To(Equal("You must use a classifier to attach supplemental artifacts to the project instead of replacing them."))
	g.Expect(project.artifact).To(Equal(first))
	g.Expect(project.attached).To(BeEmpty())
}

func TestRegister_PrimaryFileMissing(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()
	project := &fakeProject{artifact: filepath.Join(dir, "gone.jar")}
	file := writeJar(t, dir, "app.jar", "A")

	g.Expect(Register(project, ArtifactTypeJar, "", file)).To(Succeed())
	g.Expect(project.artifact).To(Equal(file))
}

func TestRegister_PrimaryIsDirectory(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()
	project := &fakeProject{artifact: dir}
	file := writeJar(t, dir, "app.jar", "A")

	g.Expect(Register(project, ArtifactTypeJar, "", file)).To(Succeed())
	g.Expect(project.artifact).To(Equal(file))
}

func TestRegister_Supplemental(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()
	primary := writeJar(t, dir, "app.jar", "A")
	one := writeJar(t, dir, "one.jar", "1")
	two := writeJar(t, dir, "two.jar", "2")
	project := &fakeProject{artifact: primary}

	g.Expect(Register(project, ArtifactTypeJar, "sources", one)).To(Succeed())
	g.Expect(Register(project, ArtifactTypeJar, "sources", two)).To(Succeed())

	g.Expect(project.artifact).To(Equal(primary))
	g.Expect(project.attached).To(Equal([]attached{
		{ArtifactTypeJar, "sources", one},
		{ArtifactTypeJar, "sources", two},
	}))
}
