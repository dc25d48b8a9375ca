package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carstock/carstock/app/models"
	"github.com/carstock/carstock/app/services"
	"github.com/carstock/carstock/pkg/database"
	"github.com/carstock/carstock/pkg/storage"
)

func newTestGallery(t *testing.T) (*services.Inventory, *services.Gallery, storage.Disk) {
	t.Helper()
	db, err := database.OpenDSN("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Car{}, &models.CarImage{}))

	disk := storage.NewLocal(t.TempDir())
	inv := services.NewInventory(db, disk)
	return inv, services.NewGallery(inv), disk
}

func sourceImage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("jpeg bytes"), 0o644))
	return path
}

func TestAttachCopiesFileAndRecordsRow(t *testing.T) {
	inv, gal, disk := newTestGallery(t)
	id, err := inv.Create(validInput())
	require.NoError(t, err)

	img, err := gal.Attach(id, sourceImage(t, "front.jpg"))
	require.NoError(t, err)

	assert.Equal(t, id, img.CarID)
	assert.Equal(t, ".jpg", filepath.Ext(img.Path))
	assert.True(t, disk.Exists(img.Path))

	imgs, err := inv.Images(id)
	require.NoError(t, err)
	require.Len(t, imgs, 1)
	assert.Equal(t, img.Path, imgs[0].Path)
}

func TestAttachMissingSource(t *testing.T) {
	inv, gal, _ := newTestGallery(t)
	id, err := inv.Create(validInput())
	require.NoError(t, err)

	_, err = gal.Attach(id, filepath.Join(t.TempDir(), "nope.jpg"))
	require.Error(t, err)

	imgs, err := inv.Images(id)
	require.NoError(t, err)
	assert.Empty(t, imgs)
}

func TestRemoveDeletesRowAndFile(t *testing.T) {
	inv, gal, disk := newTestGallery(t)
	id, err := inv.Create(validInput())
	require.NoError(t, err)

	img, err := gal.Attach(id, sourceImage(t, "side.png"))
	require.NoError(t, err)

	require.NoError(t, gal.Remove(img.ID))
	assert.False(t, disk.Exists(img.Path))

	imgs, err := inv.Images(id)
	require.NoError(t, err)
	assert.Empty(t, imgs)
}

func TestSetMainPromotesAttachment(t *testing.T) {
	inv, gal, _ := newTestGallery(t)
	id, err := inv.Create(validInput())
	require.NoError(t, err)

	img, err := gal.Attach(id, sourceImage(t, "main.jpg"))
	require.NoError(t, err)

	require.NoError(t, gal.SetMain(id, img.ID))

	car, err := inv.Get(id)
	require.NoError(t, err)
	assert.Equal(t, img.Path, car.ImagePath)
}

func TestDuplicateGetsOwnImageFile(t *testing.T) {
	inv, gal, disk := newTestGallery(t)
	id, err := inv.Create(validInput())
	require.NoError(t, err)

	img, err := gal.Attach(id, sourceImage(t, "main.jpg"))
	require.NoError(t, err)
	require.NoError(t, gal.SetMain(id, img.ID))

	copyID, err := inv.Duplicate(id)
	require.NoError(t, err)

	orig, err := inv.Get(id)
	require.NoError(t, err)
	dup, err := inv.Get(copyID)
	require.NoError(t, err)

	require.NotEmpty(t, dup.ImagePath)
	assert.NotEqual(t, orig.ImagePath, dup.ImagePath)
	assert.True(t, disk.Exists(dup.ImagePath))

	// Deleting the original cleans up its own files only; the copy's
	// image must survive.
	require.NoError(t, inv.Delete(id))
	assert.False(t, disk.Exists(orig.ImagePath))
	assert.True(t, disk.Exists(dup.ImagePath))
}

func TestSetMainRejectsForeignImage(t *testing.T) {
	inv, gal, _ := newTestGallery(t)
	a, err := inv.Create(validInput())
	require.NoError(t, err)
	b, err := inv.Create(validInput())
	require.NoError(t, err)

	img, err := gal.Attach(a, sourceImage(t, "a.jpg"))
	require.NoError(t, err)

	err = gal.SetMain(b, img.ID)
	require.Error(t, err)
	assert.True(t, services.IsNotFound(err))
}
