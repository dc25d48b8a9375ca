package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carstock/carstock/pkg/storage"
)

func TestPutGetDelete(t *testing.T) {
	disk := storage.NewLocal(t.TempDir())

	require.NoError(t, disk.Put("car1_100.jpg", []byte("bytes")))
	assert.True(t, disk.Exists("car1_100.jpg"))

	data, err := disk.Get("car1_100.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("bytes"), data)

	require.NoError(t, disk.Delete("car1_100.jpg"))
	assert.False(t, disk.Exists("car1_100.jpg"))
}

func TestDeleteMissingIsNotAnError(t *testing.T) {
	disk := storage.NewLocal(t.TempDir())
	assert.NoError(t, disk.Delete("never-existed.jpg"))
}

func TestAllFiles(t *testing.T) {
	disk := storage.NewLocal(t.TempDir())
	require.NoError(t, disk.Put("a.jpg", []byte("1")))
	require.NoError(t, disk.Put("nested/b.png", []byte("2")))

	files, err := disk.AllFiles("")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.jpg", "nested/b.png"}, files)
}

func TestAllFilesMissingDirectory(t *testing.T) {
	disk := storage.NewLocal(filepath.Join(t.TempDir(), "not-created-yet"))

	files, err := disk.AllFiles("")
	require.NoError(t, err)
	assert.Empty(t, files)
}
