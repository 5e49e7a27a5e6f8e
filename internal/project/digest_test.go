package project_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/onestone/redistjar/internal/project"
)

func TestDigestAndVerify(t *testing.T) {
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "app.jar")
	g.Expect(os.WriteFile(path, []byte("ABC"), 0o644)).To(Succeed())

	d, err := project.Digest(path)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(d).To(Equal("sha256:b5d4045c3f466fa91fe2cc6abe79232a1a57cdf104f7a26e716e0a1e2789df78"))
	g.Expect(project.Verify(path, d)).To(Succeed())

	g.Expect(os.WriteFile(path, []byte("ABCD"), 0o644)).To(Succeed())
	g.Expect(project.Verify(path, d)).To(MatchError(ContainSubstring("doesn't match")))
	g.Expect(project.Verify(path, "not-a-digest")).To(MatchError(ContainSubstring("failed to parse")))
}

func TestProject_RecordDigest(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "target", "app-sources.jar")
	g.Expect(os.MkdirAll(filepath.Dir(file), 0o755)).To(Succeed())
	g.Expect(os.WriteFile(file, []byte("ABC"), 0o644)).To(Succeed())

	p := project.New(dir, "", "app", "1")
	g.Expect(p.RecordDigest(file)).To(MatchError(ContainSubstring("no artifact registered")))

	p.AttachArtifact("jar", "sources", file)
	g.Expect(p.RecordDigest(file)).To(Succeed())
	g.Expect(p.AttachedArtifacts[0].Digest).To(HavePrefix("sha256:"))
	g.Expect(project.Verify(file, p.AttachedArtifacts[0].Digest)).To(Succeed())
}

func TestLock(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()
	unlock, err := project.Lock(dir)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(filepath.Join(dir, project.DescriptorFileName+".lock")).To(BeAnExistingFile())
	unlock()

	unlock, err = project.Lock(dir)
	g.Expect(err).ToNot(HaveOccurred())
	unlock()
}
