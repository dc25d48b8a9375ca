package models

// Salesperson is a directory entry for the sales team. Cars reference
// salespeople by name only (free text), not by id.
type Salesperson struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Phone string `gorm:"size:30" json:"phone"`
	Make  string `gorm:"size:100" json:"make"` // brand they mainly sell
}

func (Salesperson) TableName() string { return "salespeople" }
