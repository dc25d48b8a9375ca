package models

import "strings"

// Fixed value sets for the enum-like columns. Every write path checks
// against these; free-form values are rejected, never clamped.
var (
	CarTypes      = []string{"Sedan", "SUV", "Hatchback", "Convertible", "Coupe", "Truck", "Van"}
	CarConditions = []string{"New", "Used", "Certified"}
	DriveTrains   = []string{"FWD", "RWD", "AWD", "4WD"}
)

const (
	MinYear = 1886
	MaxYear = 2050
)

// Car is one vehicle listing. The primary key is assigned by the database
// and never reused; image_path holds the main image ("" means none).
type Car struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Make          string  `gorm:"size:100;not null;index" json:"make"`
	Model         string  `gorm:"size:100;not null" json:"model"`
	Year          int     `gorm:"not null" json:"year"`
	Price         float64 `gorm:"not null" json:"price"`
	Color         string  `gorm:"size:50;not null" json:"color"`
	Type          string  `gorm:"size:50;not null" json:"type"`
	Condition     string  `gorm:"size:50;not null" json:"condition"`
	DriveTrains   string  `gorm:"size:20;not null;column:drive_trains" json:"drive_trains"`
	EnginePower   int     `gorm:"not null" json:"engine_power"`   // cc
	LiterCapacity int     `gorm:"not null" json:"liter_capacity"` // L
	Salesperson   string  `gorm:"size:100;not null" json:"salesperson"`
	ImagePath     string  `gorm:"type:text" json:"image_path"`
}

func (Car) TableName() string { return "cars" }

// CarInput carries the full field set required to create a listing.
// Validation rules live on the tags; pkg/validate evaluates them.
type CarInput struct {
	Make          string  `json:"make"           validate:"required"`
	Model         string  `json:"model"          validate:"required"`
	Year          int     `json:"year"           validate:"required,between=1886,2050"`
	Price         float64 `json:"price"          validate:"required,gt=0"`
	Color         string  `json:"color"          validate:"required"`
	Type          string  `json:"type"           validate:"required,in=Sedan,SUV,Hatchback,Convertible,Coupe,Truck,Van"`
	Condition     string  `json:"condition"      validate:"required,in=New,Used,Certified"`
	DriveTrains   string  `json:"drive_trains"   validate:"required,in=FWD,RWD,AWD,4WD"`
	EnginePower   int     `json:"engine_power"   validate:"required,gt=0"`
	LiterCapacity int     `json:"liter_capacity" validate:"required,gt=0"`
	Salesperson   string  `json:"salesperson"    validate:"required"`
	ImagePath     string  `json:"image_path"     validate:"nullable"`
}

// Normalize trims surrounding whitespace from every string field.
func (in *CarInput) Normalize() {
	in.Make = strings.TrimSpace(in.Make)
	in.Model = strings.TrimSpace(in.Model)
	in.Color = strings.TrimSpace(in.Color)
	in.Type = strings.TrimSpace(in.Type)
	in.Condition = strings.TrimSpace(in.Condition)
	in.DriveTrains = strings.TrimSpace(in.DriveTrains)
	in.Salesperson = strings.TrimSpace(in.Salesperson)
	in.ImagePath = strings.TrimSpace(in.ImagePath)
}

// ToCar builds the persistence model from validated input.
func (in CarInput) ToCar() Car {
	return Car{
		Make:          in.Make,
		Model:         in.Model,
		Year:          in.Year,
		Price:         in.Price,
		Color:         in.Color,
		Type:          in.Type,
		Condition:     in.Condition,
		DriveTrains:   in.DriveTrains,
		EnginePower:   in.EnginePower,
		LiterCapacity: in.LiterCapacity,
		Salesperson:   in.Salesperson,
		ImagePath:     in.ImagePath,
	}
}

// InputFromCar is the inverse of ToCar; used when re-validating patches
// and when duplicating an existing listing.
func InputFromCar(c Car) CarInput {
	return CarInput{
		Make:          c.Make,
		Model:         c.Model,
		Year:          c.Year,
		Price:         c.Price,
		Color:         c.Color,
		Type:          c.Type,
		Condition:     c.Condition,
		DriveTrains:   c.DriveTrains,
		EnginePower:   c.EnginePower,
		LiterCapacity: c.LiterCapacity,
		Salesperson:   c.Salesperson,
		ImagePath:     c.ImagePath,
	}
}

// CarPatch is a partial update: nil fields are left untouched. The fixed
// field set replaces the old dynamic column-map updates, so a patch can
// never name a column outside the schema.
type CarPatch struct {
	Make          *string  `json:"make,omitempty"`
	Model         *string  `json:"model,omitempty"`
	Year          *int     `json:"year,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Color         *string  `json:"color,omitempty"`
	Type          *string  `json:"type,omitempty"`
	Condition     *string  `json:"condition,omitempty"`
	DriveTrains   *string  `json:"drive_trains,omitempty"`
	EnginePower   *int     `json:"engine_power,omitempty"`
	LiterCapacity *int     `json:"liter_capacity,omitempty"`
	Salesperson   *string  `json:"salesperson,omitempty"`
	ImagePath     *string  `json:"image_path,omitempty"`
}

// IsEmpty reports whether the patch names no fields at all.
func (p CarPatch) IsEmpty() bool { return len(p.Fields()) == 0 }

// Fields returns the json names of the fields the patch supplies,
// in schema order.
func (p CarPatch) Fields() []string {
	var out []string
	if p.Make != nil {
		out = append(out, "make")
	}
	if p.Model != nil {
		out = append(out, "model")
	}
	if p.Year != nil {
		out = append(out, "year")
	}
	if p.Price != nil {
		out = append(out, "price")
	}
	if p.Color != nil {
		out = append(out, "color")
	}
	if p.Condition != nil {
		out = append(out, "condition")
	}
	if p.Type != nil {
		out = append(out, "type")
	}
	if p.DriveTrains != nil {
		out = append(out, "drive_trains")
	}
	if p.EnginePower != nil {
		out = append(out, "engine_power")
	}
	if p.LiterCapacity != nil {
		out = append(out, "liter_capacity")
	}
	if p.Salesperson != nil {
		out = append(out, "salesperson")
	}
	if p.ImagePath != nil {
		out = append(out, "image_path")
	}
	return out
}

// Normalize trims whitespace on the supplied string fields.
func (p *CarPatch) Normalize() {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		t := strings.TrimSpace(*s)
		return &t
	}
	p.Make = trim(p.Make)
	p.Model = trim(p.Model)
	p.Color = trim(p.Color)
	p.Type = trim(p.Type)
	p.Condition = trim(p.Condition)
	p.DriveTrains = trim(p.DriveTrains)
	p.Salesperson = trim(p.Salesperson)
	p.ImagePath = trim(p.ImagePath)
}

// ApplyTo overlays the supplied fields onto in.
func (p CarPatch) ApplyTo(in *CarInput) {
	if p.Make != nil {
		in.Make = *p.Make
	}
	if p.Model != nil {
		in.Model = *p.Model
	}
	if p.Year != nil {
		in.Year = *p.Year
	}
	if p.Price != nil {
		in.Price = *p.Price
	}
	if p.Color != nil {
		in.Color = *p.Color
	}
	if p.Type != nil {
		in.Type = *p.Type
	}
	if p.Condition != nil {
		in.Condition = *p.Condition
	}
	if p.DriveTrains != nil {
		in.DriveTrains = *p.DriveTrains
	}
	if p.EnginePower != nil {
		in.EnginePower = *p.EnginePower
	}
	if p.LiterCapacity != nil {
		in.LiterCapacity = *p.LiterCapacity
	}
	if p.Salesperson != nil {
		in.Salesperson = *p.Salesperson
	}
	if p.ImagePath != nil {
		in.ImagePath = *p.ImagePath
	}
}

// Columns returns the supplied fields as a column→value map for the
// repository's UPDATE. Only columns from the fixed patch type can appear.
func (p CarPatch) Columns() map[string]interface{} {
	out := map[string]interface{}{}
	if p.Make != nil {
		out["make"] = *p.Make
	}
	if p.Model != nil {
		out["model"] = *p.Model
	}
	if p.Year != nil {
		out["year"] = *p.Year
	}
	if p.Price != nil {
		out["price"] = *p.Price
	}
	if p.Color != nil {
		out["color"] = *p.Color
	}
	if p.Type != nil {
		out["type"] = *p.Type
	}
	if p.Condition != nil {
		out["condition"] = *p.Condition
	}
	if p.DriveTrains != nil {
		out["drive_trains"] = *p.DriveTrains
	}
	if p.EnginePower != nil {
		out["engine_power"] = *p.EnginePower
	}
	if p.LiterCapacity != nil {
		out["liter_capacity"] = *p.LiterCapacity
	}
	if p.Salesperson != nil {
		out["salesperson"] = *p.Salesperson
	}
	if p.ImagePath != nil {
		out["image_path"] = *p.ImagePath
	}
	return out
}
