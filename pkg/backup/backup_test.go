package backup_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carstock/carstock/pkg/backup"
	"github.com/carstock/carstock/pkg/storage"
)

func TestCreateAndRestoreRoundTrip(t *testing.T) {
	work := t.TempDir()

	dbFile := filepath.Join(work, "carstock.db")
	require.NoError(t, os.WriteFile(dbFile, []byte("sqlite payload"), 0o644))

	disk := storage.NewLocal(filepath.Join(work, "car_images"))
	require.NoError(t, disk.Put("car1_100.jpg", []byte("front")))
	require.NoError(t, disk.Put("car2_200.png", []byte("side")))

	archive := filepath.Join(t.TempDir(), "backup.zip")
	require.NoError(t, backup.Create(archive, dbFile, disk))

	dest := t.TempDir()
	require.NoError(t, backup.Restore(archive, dest))

	restored, err := os.ReadFile(filepath.Join(dest, "carstock.db"))
	require.NoError(t, err)
	assert.Equal(t, []byte("sqlite payload"), restored)

	img, err := os.ReadFile(filepath.Join(dest, "car_images", "car1_100.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("front"), img)

	assert.FileExists(t, filepath.Join(dest, "car_images", "car2_200.png"))
}

func TestCreateWithMissingDatabase(t *testing.T) {
	work := t.TempDir()
	disk := storage.NewLocal(filepath.Join(work, "car_images"))
	require.NoError(t, disk.Put("car1_100.jpg", []byte("front")))

	// A missing db file is skipped; the gallery still archives.
	archive := filepath.Join(t.TempDir(), "backup.zip")
	require.NoError(t, backup.Create(archive, filepath.Join(work, "absent.db"), disk))

	dest := t.TempDir()
	require.NoError(t, backup.Restore(archive, dest))
	assert.FileExists(t, filepath.Join(dest, "car_images", "car1_100.jpg"))
	assert.NoFileExists(t, filepath.Join(dest, "absent.db"))
}

func TestRestoreRejectsEscapingPaths(t *testing.T) {
	// Hand-build an archive with a traversal entry.
	archive := filepath.Join(t.TempDir(), "evil.zip")
	writeZip(t, archive, "../escape.txt", []byte("nope"))

	err := backup.Restore(archive, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "illegal path")
}

func writeZip(t *testing.T, path, entry string, data []byte) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create(entry)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}
