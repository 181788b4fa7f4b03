package storage

import (
	"os"
)

// DiskUsageBytes returns the total size in bytes of the given files.
// Empty and missing paths contribute 0; other stat errors are returned.
func DiskUsageBytes(paths ...string) (int64, error) {
	var total int64
	for _, p := range paths {
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return 0, err
		}
		if !info.IsDir() {
			total += info.Size()
		}
	}
	return total, nil
}

// SQLiteFiles returns the database file and the sidecar files SQLite keeps
// next to it in WAL mode.
func SQLiteFiles(dbPath string) []string {
	return []string{dbPath, dbPath + "-wal", dbPath + "-shm"}
}
