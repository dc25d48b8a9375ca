package services

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/carstock/carstock/app/models"
	"github.com/carstock/carstock/app/repositories"
	"github.com/carstock/carstock/pkg/event"
	"github.com/carstock/carstock/pkg/logger"
	"github.com/carstock/carstock/pkg/query"
	"github.com/carstock/carstock/pkg/storage"
	"github.com/carstock/carstock/pkg/validate"
)

// Mutation events fired by the inventory store. Listeners receive the
// affected models.Car (or models.CarImage for gallery rows).
const (
	EventCarCreated   = "car.created"
	EventCarUpdated   = "car.updated"
	EventCarDeleted   = "car.deleted"
	EventImageAdded   = "car.image_added"
	EventImageRemoved = "car.image_removed"
)

// Inventory is the store for car and gallery records. Field validation
// happens here, at the write boundary, before anything touches the
// database; repositories below this layer trust their input.
type Inventory struct {
	cars   *repositories.CarRepository
	images *repositories.ImageRepository
	disk   storage.Disk
}

// NewInventory wires the store to an open database handle and the disk
// holding gallery files.
func NewInventory(db *gorm.DB, disk storage.Disk) *Inventory {
	return &Inventory{
		cars:   repositories.NewCarRepository(db),
		images: repositories.NewImageRepository(db),
		disk:   disk,
	}
}

// Create validates and persists a new listing and returns its id.
// Validation runs in full before the insert, so a rejected input is
// guaranteed to have written nothing.
func (s *Inventory) Create(in models.CarInput) (uint, error) {
	in.Normalize()
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return 0, &ValidationError{Fields: errs}
	}

	car := in.ToCar()
	if err := s.cars.Create(&car); err != nil {
		return 0, &StorageError{Op: "create car", Err: err}
	}

	event.Fire(EventCarCreated, car)
	return car.ID, nil
}

// Get returns one listing by id.
func (s *Inventory) Get(id uint) (models.Car, error) {
	car, err := s.cars.FindByID(id)
	if err != nil {
		return models.Car{}, wrapLookup("car", id, "get car", err)
	}
	return car, nil
}

// All returns every listing. Insertion order is not guaranteed. A
// storage failure on this read path degrades to an empty result — the
// caller sees "no cars", not an error.
func (s *Inventory) All() []models.Car {
	cars, err := s.cars.All()
	if err != nil {
		logger.Warn("inventory: listing cars failed", "error", err)
		return nil
	}
	return cars
}

// Search returns the listings matching the criteria, filtered at the
// SQL level. Like All, a storage failure degrades to an empty result.
func (s *Inventory) Search(c query.Criteria) []models.Car {
	cars, err := s.cars.Search(c)
	if err != nil {
		logger.Warn("inventory: search failed", "error", err)
		return nil
	}
	return cars
}

// Update applies a partial update. Only the supplied fields are
// re-validated and written; everything else is left untouched.
func (s *Inventory) Update(id uint, patch models.CarPatch) error {
	patch.Normalize()
	if patch.IsEmpty() {
		return nil
	}

	existing, err := s.cars.FindByID(id)
	if err != nil {
		return wrapLookup("car", id, "update car", err)
	}

	// Validate the patched record as a whole, then keep only the
	// complaints about fields this patch actually supplies.
	merged := models.InputFromCar(existing)
	patch.ApplyTo(&merged)
	if all := validate.Struct(merged); validate.HasErrors(all) {
		supplied := map[string]bool{}
		for _, f := range patch.Fields() {
			supplied[f] = true
		}
		errs := map[string]string{}
		for field, msg := range all {
			if supplied[field] {
				errs[field] = msg
			}
		}
		if len(errs) > 0 {
			return &ValidationError{Fields: errs}
		}
	}

	if err := s.cars.UpdateColumns(id, patch.Columns()); err != nil {
		return &StorageError{Op: "update car", Err: err}
	}

	updated, err := s.cars.FindByID(id)
	if err == nil {
		event.Fire(EventCarUpdated, updated)
	}
	return nil
}

// Delete removes the listing. The schema has no cascade, so gallery
// rows stay behind; gallery files are cleaned up best-effort and a
// failure there never fails the delete.
func (s *Inventory) Delete(id uint) error {
	car, err := s.cars.FindByID(id)
	if err != nil {
		return wrapLookup("car", id, "delete car", err)
	}

	if err := s.cars.Delete(id); err != nil {
		return &StorageError{Op: "delete car", Err: err}
	}

	s.cleanupFiles(car)
	event.Fire(EventCarDeleted, car)
	return nil
}

// cleanupFiles best-effort removes the files referenced by a deleted
// car: the main image and every gallery attachment.
func (s *Inventory) cleanupFiles(car models.Car) {
	if s.disk == nil {
		return
	}
	paths := []string{}
	if car.ImagePath != "" {
		paths = append(paths, car.ImagePath)
	}
	if imgs, err := s.images.ForCar(car.ID); err == nil {
		for _, img := range imgs {
			paths = append(paths, img.Path)
		}
	}
	for _, p := range paths {
		if err := s.disk.Delete(p); err != nil {
			logger.Warn("inventory: image file cleanup failed", "path", p, "error", err)
		}
	}
}

// Duplicate copies an existing listing into a new row with a fresh id.
// The main image file is copied under the new car's name rather than
// shared: deleting the original cleans up its files, and a shared
// reference would leave the copy pointing at nothing. A failed image
// copy is only a warning, same as a failed attach on create.
func (s *Inventory) Duplicate(id uint) (uint, error) {
	car, err := s.cars.FindByID(id)
	if err != nil {
		return 0, wrapLookup("car", id, "duplicate car", err)
	}

	in := models.InputFromCar(car)
	in.ImagePath = ""
	newID, err := s.Create(in)
	if err != nil {
		return 0, err
	}

	if car.ImagePath != "" && s.disk != nil && s.disk.Exists(car.ImagePath) {
		if err := s.copyMainImage(car.ImagePath, newID); err != nil {
			logger.Warn("inventory: duplicating main image failed", "path", car.ImagePath, "error", err)
		}
	}
	return newID, nil
}

// copyMainImage clones src into a fresh gallery file owned by carID and
// promotes it to the copy's main image.
func (s *Inventory) copyMainImage(src string, carID uint) error {
	data, err := s.disk.Get(src)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("car%d_%d%s", carID, time.Now().Unix(), filepath.Ext(src))
	if err := s.disk.Put(name, data); err != nil {
		return err
	}
	if _, err := s.AddImage(carID, name); err != nil {
		return err
	}
	return s.Update(carID, models.CarPatch{ImagePath: &name})
}

// ─── Gallery rows ────────────────────────────────────────────────────────────

// AddImage records an attachment row. The only validation is a
// non-empty path; file handling is the gallery service's business.
func (s *Inventory) AddImage(carID uint, path string) (uint, error) {
	if strings.TrimSpace(path) == "" {
		return 0, &ValidationError{Fields: map[string]string{"path": "The path field is required."}}
	}

	img := models.CarImage{CarID: carID, Path: strings.TrimSpace(path)}
	if err := s.images.Create(&img); err != nil {
		return 0, &StorageError{Op: "add image", Err: err}
	}

	event.Fire(EventImageAdded, img)
	return img.ID, nil
}

// Images returns the attachment rows of one car.
func (s *Inventory) Images(carID uint) ([]models.CarImage, error) {
	imgs, err := s.images.ForCar(carID)
	if err != nil {
		return nil, &StorageError{Op: "list images", Err: err}
	}
	return imgs, nil
}

// DeleteImage removes one attachment row.
func (s *Inventory) DeleteImage(imageID uint) error {
	img, err := s.images.FindByID(imageID)
	if err != nil {
		return wrapLookup("image", imageID, "delete image", err)
	}

	if err := s.images.Delete(imageID); err != nil {
		return &StorageError{Op: "delete image", Err: err}
	}

	event.Fire(EventImageRemoved, img)
	return nil
}
