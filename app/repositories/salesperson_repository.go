package repositories

import (
	"github.com/carstock/carstock/app/models"
	"gorm.io/gorm"
)

// SalespersonRepository handles database operations for the sales team
// directory.
type SalespersonRepository struct {
	db *gorm.DB
}

func NewSalespersonRepository(db *gorm.DB) *SalespersonRepository {
	return &SalespersonRepository{db: db}
}

func (r *SalespersonRepository) Create(p *models.Salesperson) error {
	return r.db.Create(p).Error
}

func (r *SalespersonRepository) All() ([]models.Salesperson, error) {
	var people []models.Salesperson
	err := r.db.Order("name").Find(&people).Error
	return people, err
}

func (r *SalespersonRepository) FindByName(name string) (models.Salesperson, error) {
	var p models.Salesperson
	err := r.db.Where("name = ?", name).First(&p).Error
	return p, err
}
