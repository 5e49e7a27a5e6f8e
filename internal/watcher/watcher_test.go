package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"github.com/onestone/redistjar/internal/watcher"
)

func TestForFile(t *testing.T) {
	g := NewWithT(t)

	cfg := watcher.ForFile(filepath.Join("dist", "lib-1.0.jar"))
	g.Expect(cfg.Dir).To(Equal("dist"))
	g.Expect(cfg.Files).To(Equal([]string{"lib-1.0.jar"}))
	g.Expect(cfg.Patterns).To(BeEmpty())
	g.Expect(cfg.Debounce).To(BeNumerically(">", 0))
}

func TestWatcher_DebouncedWrites(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()
	jar := filepath.Join(dir, "lib.jar")
	cfg := watcher.ForFile(jar)
	cfg.Debounce = 50 * time.Millisecond

	w, err := watcher.New(cfg)
	g.Expect(err).ToNot(HaveOccurred())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g.Expect(w.Start(ctx)).To(Succeed())
	defer w.Stop()

	// Unrelated files are ignored.
	g.Expect(os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644)).To(Succeed())
	for i := 0; i < 3; i++ {
		g.Expect(os.WriteFile(jar, []byte{byte(i)}, 0o644)).To(Succeed())
	}

	var event watcher.Event
	g.Eventually(w.Events(), 5*time.Second).Should(Receive(&event))
	g.Expect(event.Path).To(Equal(jar))
	g.Expect(event.Type).To(Equal(watcher.EventWritten))
	g.Consistently(w.Events(), 200*time.Millisecond).ShouldNot(Receive())
}

func TestWatcher_FileNameWithGlobCharacters(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()
	jar := filepath.Join(dir, "lib[1].jar")
	cfg := watcher.ForFile(jar)
	cfg.Debounce = 50 * time.Millisecond

	w, err := watcher.New(cfg)
	g.Expect(err).ToNot(HaveOccurred())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g.Expect(w.Start(ctx)).To(Succeed())
	defer w.Stop()

	// Matches "lib[1].jar" as a glob, but is a different file.
	g.Expect(os.WriteFile(filepath.Join(dir, "lib1.jar"), []byte("x"), 0o644)).To(Succeed())
	g.Consistently(w.Events(), 200*time.Millisecond).ShouldNot(Receive())

	g.Expect(os.WriteFile(jar, []byte("ABC"), 0o644)).To(Succeed())

	var event watcher.Event
	g.Eventually(w.Events(), 5*time.Second).Should(Receive(&event))
	g.Expect(event.Path).To(Equal(jar))
	g.Expect(event.Type).To(Equal(watcher.EventWritten))
}

func TestWatcher_StartMissingDir(t *testing.T) {
	g := NewWithT(t)

	w, err := watcher.New(watcher.ForFile(filepath.Join(t.TempDir(), "missing", "lib.jar")))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(w.Start(context.Background())).ToNot(Succeed())
	g.Expect(w.Stop()).To(Succeed())
}

func TestEventType_String(t *testing.T) {
	g := NewWithT(t)

	g.Expect(watcher.EventWritten.String()).To(Equal("written"))
	g.Expect(watcher.EventRemoved.String()).To(Equal("removed"))
	g.Expect(watcher.EventType(0).String()).To(Equal("unknown"))
}
