package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/carstock/carstock/app/models"
	"github.com/carstock/carstock/pkg/logger"
)

// Gallery manages the image files behind the attachment rows. File
// operations here are deliberately loose: a crash between the copy and
// the row insert can orphan a file, and that is accepted rather than
// wrapped in any cleanup transaction.
type Gallery struct {
	inv *Inventory
}

func NewGallery(inv *Inventory) *Gallery {
	return &Gallery{inv: inv}
}

// Attach copies the source file into the gallery under a unique name
// derived from the car id and the current timestamp, then records the
// attachment row. The copy happens first; if it fails no row is
// written and the caller decides how loudly to report it — a failed
// attach never fails the record operation it accompanies.
func (g *Gallery) Attach(carID uint, src string) (models.CarImage, error) {
	f, err := os.Open(src)
	if err != nil {
		return models.CarImage{}, fmt.Errorf("gallery: open source %s: %w", src, err)
	}
	defer f.Close()

	name := fmt.Sprintf("car%d_%d%s", carID, time.Now().Unix(), filepath.Ext(src))
	if err := g.inv.disk.PutStream(name, f); err != nil {
		return models.CarImage{}, fmt.Errorf("gallery: copy %s: %w", src, err)
	}

	id, err := g.inv.AddImage(carID, name)
	if err != nil {
		return models.CarImage{}, err
	}
	return models.CarImage{ID: id, CarID: carID, Path: name}, nil
}

// Remove deletes the attachment row, then best-effort deletes the file.
func (g *Gallery) Remove(imageID uint) error {
	img, err := g.inv.images.FindByID(imageID)
	if err != nil {
		return wrapLookup("image", imageID, "remove image", err)
	}

	if err := g.inv.DeleteImage(imageID); err != nil {
		return err
	}

	if err := g.inv.disk.Delete(img.Path); err != nil {
		logger.Warn("gallery: file removal failed", "path", img.Path, "error", err)
	}
	return nil
}

// SetMain promotes one attachment to the car's main image.
func (g *Gallery) SetMain(carID, imageID uint) error {
	img, err := g.inv.images.FindByID(imageID)
	if err != nil {
		return wrapLookup("image", imageID, "set main image", err)
	}
	if img.CarID != carID {
		return &NotFoundError{Entity: "image", ID: imageID}
	}

	path := img.Path
	return g.inv.Update(carID, models.CarPatch{ImagePath: &path})
}
