package models

// CarImage is one gallery attachment. car_id is a plain reference:
// deleting a car does not cascade here, so orphaned rows are possible
// and expected.
type CarImage struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CarID uint   `gorm:"not null;index" json:"car_id"`
	Path  string `gorm:"type:text;not null" json:"path"`
}

func (CarImage) TableName() string { return "car_images" }
