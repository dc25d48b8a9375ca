package seeders

import (
	"github.com/carstock/carstock/app/models"
	"gorm.io/gorm"
)

func init() {
	Register("salespeople", SeedSalespeople)
	Register("inventory", SeedInventory)
}

// SeedSalespeople inserts the demo sales team. Idempotent: skips when
// the table already has rows.
func SeedSalespeople(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Salesperson{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	people := []models.Salesperson{
		{Name: "Omar Khaled", Phone: "+20 100 555 0101", Make: "Toyota"},
		{Name: "Sara Adel", Phone: "+20 100 555 0102", Make: "BMW"},
		{Name: "Youssef Nabil", Phone: "+20 100 555 0103", Make: "Hyundai"},
	}
	return db.Create(&people).Error
}

// SeedInventory inserts a small demo inventory. Idempotent: skips when
// the cars table already has rows.
func SeedInventory(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Car{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cars := []models.Car{
		{Make: "Toyota", Model: "Corolla", Year: 2022, Price: 21000, Color: "White", Type: "Sedan", Condition: "New", DriveTrains: "FWD", EnginePower: 1600, LiterCapacity: 50, Salesperson: "Omar Khaled"},
		{Make: "Toyota", Model: "RAV4", Year: 2021, Price: 32000, Color: "Silver", Type: "SUV", Condition: "Used", DriveTrains: "AWD", EnginePower: 2500, LiterCapacity: 55, Salesperson: "Omar Khaled"},
		{Make: "BMW", Model: "320i", Year: 2020, Price: 38000, Color: "Black", Type: "Sedan", Condition: "Certified", DriveTrains: "RWD", EnginePower: 2000, LiterCapacity: 59, Salesperson: "Sara Adel"},
		{Make: "Hyundai", Model: "Tucson", Year: 2023, Price: 28000, Color: "Blue", Type: "SUV", Condition: "New", DriveTrains: "FWD", EnginePower: 1600, LiterCapacity: 54, Salesperson: "Youssef Nabil"},
		{Make: "Ford", Model: "F-150", Year: 2019, Price: 35000, Color: "Red", Type: "Truck", Condition: "Used", DriveTrains: "4WD", EnginePower: 3500, LiterCapacity: 98, Salesperson: "Omar Khaled"},
	}
	return db.Create(&cars).Error
}
