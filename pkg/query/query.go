// Package query is the in-memory selection, ordering and aggregation
// engine for car records. Everything here is pure: functions take a
// slice, return a result, and never touch storage.
package query

import (
	"math"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/carstock/carstock/app/models"
	"github.com/carstock/carstock/pkg/collection"
)

// Any is the wildcard criteria value: it imposes no constraint,
// same as leaving the field empty.
const Any = "Any"

// Criteria is a conjunctive set of optional filter predicates.
// Zero values (nil pointers, "" or Any strings) impose no constraint.
type Criteria struct {
	MakeSubstring string   // case-insensitive substring match on make
	YearMin       *int     // inclusive
	YearMax       *int     // inclusive
	PriceMin      *float64 // inclusive
	PriceMax      *float64 // inclusive
	Condition     string   // exact match, "" or "Any" disables
	DriveTrains   string   // exact match, "" or "Any" disables
}

// IsZero reports whether the criteria imposes no constraint at all.
func (c Criteria) IsZero() bool {
	return c.MakeSubstring == "" &&
		c.YearMin == nil && c.YearMax == nil &&
		c.PriceMin == nil && c.PriceMax == nil &&
		!constrains(c.Condition) && !constrains(c.DriveTrains)
}

func constrains(v string) bool { return v != "" && v != Any }

// Matches reports whether a single car satisfies every supplied predicate.
func (c Criteria) Matches(car models.Car) bool {
	if c.MakeSubstring != "" &&
		!strings.Contains(strings.ToLower(car.Make), strings.ToLower(c.MakeSubstring)) {
		return false
	}
	if c.YearMin != nil && car.Year < *c.YearMin {
		return false
	}
	if c.YearMax != nil && car.Year > *c.YearMax {
		return false
	}
	if c.PriceMin != nil && car.Price < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && car.Price > *c.PriceMax {
		return false
	}
	if constrains(c.Condition) && car.Condition != c.Condition {
		return false
	}
	if constrains(c.DriveTrains) && car.DriveTrains != c.DriveTrains {
		return false
	}
	return true
}

// Filter returns the cars matching every supplied predicate.
// Result order is unspecified; callers sort separately.
func Filter(cars []models.Car, c Criteria) []models.Car {
	return collection.Filter(cars, c.Matches)
}

// ─── Sorting ─────────────────────────────────────────────────────────────────

// SortBy orders items by the value the key function extracts. When
// numeric is true the value is parsed as a number and unparsable values
// compare as +Inf, so they land at the end of an ascending sort. When
// numeric is false comparison is case-insensitive text.
func SortBy[T any](items []T, key func(T) any, numeric, desc bool) []T {
	less := func(a, b T) bool {
		if numeric {
			av, bv := numericKey(key(a)), numericKey(key(b))
			if desc {
				return av > bv
			}
			return av < bv
		}
		av := strings.ToLower(textKey(key(a)))
		bv := strings.ToLower(textKey(key(b)))
		if desc {
			return av > bv
		}
		return av < bv
	}
	return collection.SortBy(items, less)
}

// numericKey coerces a sort value to float64. Anything that does not
// parse sorts as positive infinity.
func numericKey(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return math.Inf(1)
		}
		return f
	default:
		return math.Inf(1)
	}
}

func textKey(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// carColumns maps a sortable column name to its accessor and whether it
// compares numerically.
var carColumns = map[string]struct {
	key     func(models.Car) any
	numeric bool
}{
	"id":             {func(c models.Car) any { return int(c.ID) }, true},
	"make":           {func(c models.Car) any { return c.Make }, false},
	"model":          {func(c models.Car) any { return c.Model }, false},
	"year":           {func(c models.Car) any { return c.Year }, true},
	"price":          {func(c models.Car) any { return c.Price }, true},
	"color":          {func(c models.Car) any { return c.Color }, false},
	"type":           {func(c models.Car) any { return c.Type }, false},
	"condition":      {func(c models.Car) any { return c.Condition }, false},
	"drive_trains":   {func(c models.Car) any { return c.DriveTrains }, false},
	"engine_power":   {func(c models.Car) any { return c.EnginePower }, true},
	"liter_capacity": {func(c models.Car) any { return c.LiterCapacity }, true},
	"salesperson":    {func(c models.Car) any { return c.Salesperson }, false},
}

// SortableColumns lists the column names SortCars accepts.
func SortableColumns() []string {
	return []string{"id", "make", "model", "year", "price", "color", "type",
		"condition", "drive_trains", "engine_power", "liter_capacity", "salesperson"}
}

// SortCars orders cars by the named column. Unknown columns leave the
// slice untouched and report false.
func SortCars(cars []models.Car, column string, desc bool) ([]models.Car, bool) {
	col, ok := carColumns[strings.ToLower(strings.TrimSpace(column))]
	if !ok {
		return cars, false
	}
	return SortBy(cars, col.key, col.numeric, desc), true
}

// ─── Aggregation ─────────────────────────────────────────────────────────────

// Stats summarises a record set.
type Stats struct {
	Count       int
	TotalValue  float64
	AvgPrice    float64 // 0 when Count == 0
	MedianPrice float64 // even n: mean of the two middle values; 0 when empty
	ByMake      map[string]int
}

// Aggregate computes count, mean and median price and a frequency count
// of records grouped by make.
func Aggregate(cars []models.Car) Stats {
	s := Stats{Count: len(cars), ByMake: map[string]int{}}

	for make, group := range collection.GroupBy(cars, func(c models.Car) string { return c.Make }) {
		s.ByMake[make] = len(group)
	}

	if len(cars) == 0 {
		return s
	}

	prices := collection.Map(cars, func(c models.Car) float64 { return c.Price })
	s.TotalValue = collection.Sum(cars, func(c models.Car) float64 { return c.Price })

	// stats errors only on empty input, which is handled above.
	if mean, err := stats.Mean(prices); err == nil {
		s.AvgPrice = mean
	}
	if median, err := stats.Median(prices); err == nil {
		s.MedianPrice = median
	}
	return s
}
