package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiskUsageBytes(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "searches.db")
	if err := os.WriteFile(db, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(db+"-wal", []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		paths []string
		want  int64
	}{
		{"single file", []string{db}, 5},
		{"sqlite files, shm missing", SQLiteFiles(db), 8},
		{"empty path skipped", []string{"", db}, 5},
		{"directory ignored", []string{dir}, 0},
		{"nothing", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DiskUsageBytes(tt.paths...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %d bytes, want %d", got, tt.want)
			}
		})
	}
}

func TestSQLiteFiles(t *testing.T) {
	got := SQLiteFiles("/data/searches.db")
	want := []string{"/data/searches.db", "/data/searches.db-wal", "/data/searches.db-shm"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SQLiteFiles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
