package migrations

import (
	"github.com/carstock/carstock/app/models"
	"github.com/carstock/carstock/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_cars_table", &CreateCarsTable{})
	migration.Register("20260101000001_create_car_images_table", &CreateCarImagesTable{})
	migration.Register("20260101000002_create_salespeople_table", &CreateSalespeopleTable{})
}

// -------- 0001: cars --------

type CreateCarsTable struct{}

func (m *CreateCarsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Car{})
}

func (m *CreateCarsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("cars")
}

// -------- 0002: car_images --------
//
// car_id is a bare indexed column, not a foreign key. Deleting a car
// leaves its image rows behind; that matches the historical schema and
// is deliberate.

type CreateCarImagesTable struct{}

func (m *CreateCarImagesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.CarImage{})
}

func (m *CreateCarImagesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("car_images")
}

// -------- 0003: salespeople --------

type CreateSalespeopleTable struct{}

func (m *CreateSalespeopleTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Salesperson{})
}

func (m *CreateSalespeopleTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("salespeople")
}
