package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) onChange(path string) {
	r.mu.Lock()
	r.paths = append(r.paths, path)
	r.mu.Unlock()
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func startWatcher(t *testing.T, files []string, rec *recorder) *Watcher {
	t.Helper()
	w, err := NewWatcher(files, rec.onChange, WithDebounce(100*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(w.Stop)
	return w
}

func TestNewWatcher_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "catalogue.yaml")
	b := filepath.Join(dir, "sub", "..", "synonyms.yaml")
	w, err := NewWatcher([]string{a, "", b, a}, nil)
	if err != nil {
		t.Fatal(err)
	}
	files := w.Files()
	want := []string{a, filepath.Join(dir, "synonyms.yaml")}
	if len(files) != len(want) {
		t.Fatalf("Files() = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("Files()[%d] = %q, want %q", i, files[i], want[i])
		}
	}
	if len(w.dirs) != 1 {
		t.Errorf("dirs = %v, want one shared directory", w.dirs)
	}
}

func TestWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalogue.yaml")
	if err := writeFile(path, "products: []"); err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	startWatcher(t, []string{path}, rec)

	for i := 0; i < 5; i++ {
		if err := writeFile(path, "products: []\n# edit"); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(500 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 1 {
		t.Fatalf("expected one debounced callback, got %v", got)
	}
	if got[0] != path {
		t.Errorf("callback path = %q, want %q", got[0], path)
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalogue.yaml")
	if err := writeFile(path, "products: []"); err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	startWatcher(t, []string{path}, rec)

	if err := writeFile(filepath.Join(dir, "notes.txt"), "hello"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(400 * time.Millisecond)
	if got := rec.snapshot(); len(got) != 0 {
		t.Errorf("unexpected callbacks: %v", got)
	}
}

func TestWatcher_RenameReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalogue.yaml")
	if err := writeFile(path, "products: []"); err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	startWatcher(t, []string{path}, rec)

	tmp := filepath.Join(dir, ".catalogue.yaml.tmp")
	if err := writeFile(tmp, "products: []\n# replaced"); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
	time.Sleep(500 * time.Millisecond)
	if got := rec.snapshot(); len(got) == 0 || got[0] != path {
		t.Errorf("rename-replace not reported: %v", got)
	}
}

func TestWatcher_Start_missingDirectory(t *testing.T) {
	w, err := NewWatcher([]string{filepath.Join(t.TempDir(), "missing", "catalogue.yaml")}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(context.Background()); err == nil {
		w.Stop()
		t.Fatal("expected error for a missing directory")
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalogue.yaml")
	rec := &recorder{}
	w := startWatcher(t, []string{path}, rec)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	w.Stop()
	w.Stop()

	if err := writeFile(path, "products: []"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)
	if got := rec.snapshot(); len(got) != 0 {
		t.Errorf("callbacks after Stop: %v", got)
	}
}

func TestWatcher_ContextCancelStops(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalogue.yaml")
	w, err := NewWatcher([]string{path}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	cancel()
	select {
	case <-w.done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0600)
}
