package repositories

import (
	"strings"

	"github.com/carstock/carstock/app/models"
	"github.com/carstock/carstock/pkg/query"
	"gorm.io/gorm"
)

// CarRepository handles database operations for Car. It owns no
// connection of its own: the handle is injected at construction and
// shared by every repository in the process.
type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

// Create persists a new car row and fills in the generated id.
func (r *CarRepository) Create(car *models.Car) error {
	return r.db.Create(car).Error
}

// FindByID looks up a car by primary key.
func (r *CarRepository) FindByID(id uint) (models.Car, error) {
	var car models.Car
	err := r.db.Where("id = ?", id).First(&car).Error
	return car, err
}

// All returns every car. No ordering is guaranteed; callers that need
// one impose it through pkg/query.
func (r *CarRepository) All() ([]models.Car, error) {
	var cars []models.Car
	err := r.db.Find(&cars).Error
	return cars, err
}

// Search runs the criteria as a conjunctive WHERE clause at the SQL
// level. Semantics match query.Filter over All() on every supported
// driver: the substring match lowercases both sides and escapes LIKE
// wildcards so % and _ in the needle match literally, and the enum
// columns go through a condition map so GORM quotes them per dialect
// (condition is a reserved word on MySQL).
func (r *CarRepository) Search(c query.Criteria) ([]models.Car, error) {
	q := r.db.Model(&models.Car{})
	if c.MakeSubstring != "" {
		pattern := "%" + escapeLike(strings.ToLower(c.MakeSubstring)) + "%"
		q = q.Where("LOWER(make) LIKE ? ESCAPE '\\'", pattern)
	}
	if c.YearMin != nil {
		q = q.Where("year >= ?", *c.YearMin)
	}
	if c.YearMax != nil {
		q = q.Where("year <= ?", *c.YearMax)
	}
	if c.PriceMin != nil {
		q = q.Where("price >= ?", *c.PriceMin)
	}
	if c.PriceMax != nil {
		q = q.Where("price <= ?", *c.PriceMax)
	}
	if c.Condition != "" && c.Condition != query.Any {
		q = q.Where(map[string]interface{}{"condition": c.Condition})
	}
	if c.DriveTrains != "" && c.DriveTrains != query.Any {
		q = q.Where(map[string]interface{}{"drive_trains": c.DriveTrains})
	}

	var cars []models.Car
	err := q.Find(&cars).Error
	return cars, err
}

// escapeLike backslash-escapes the LIKE metacharacters in a literal
// needle.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// UpdateColumns applies a column map to one row. The caller guarantees
// the map only contains validated car columns (see models.CarPatch).
func (r *CarRepository) UpdateColumns(id uint, cols map[string]interface{}) error {
	return r.db.Model(&models.Car{}).Where("id = ?", id).Updates(cols).Error
}

// Delete removes the car row only. Gallery rows in car_images are left
// behind on purpose; the schema has never cascaded.
func (r *CarRepository) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&models.Car{}).Error
}

// Count returns the number of car rows.
func (r *CarRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Car{}).Count(&n).Error
	return n, err
}
