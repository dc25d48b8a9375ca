package repositories

import (
	"github.com/carstock/carstock/app/models"
	"gorm.io/gorm"
)

// ImageRepository handles database operations for CarImage.
type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// Create persists an attachment row and fills in the generated id.
func (r *ImageRepository) Create(img *models.CarImage) error {
	return r.db.Create(img).Error
}

// FindByID looks up an attachment by primary key.
func (r *ImageRepository) FindByID(id uint) (models.CarImage, error) {
	var img models.CarImage
	err := r.db.Where("id = ?", id).First(&img).Error
	return img, err
}

// ForCar returns all attachments of one car.
func (r *ImageRepository) ForCar(carID uint) ([]models.CarImage, error) {
	var imgs []models.CarImage
	err := r.db.Where("car_id = ?", carID).Find(&imgs).Error
	return imgs, err
}

// Delete removes one attachment row.
func (r *ImageRepository) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&models.CarImage{}).Error
}
