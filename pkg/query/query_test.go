package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carstock/carstock/app/models"
	"github.com/carstock/carstock/pkg/query"
)

func fixture() []models.Car {
	return []models.Car{
		{ID: 1, Make: "Toyota", Model: "Corolla", Year: 2018, Price: 10000, Condition: "Used", DriveTrains: "FWD"},
		{ID: 2, Make: "Toyota", Model: "RAV4", Year: 2022, Price: 30000, Condition: "New", DriveTrains: "AWD"},
		{ID: 3, Make: "Honda", Model: "Civic", Year: 2020, Price: 20000, Condition: "Used", DriveTrains: "FWD"},
		{ID: 4, Make: "Ford", Model: "F-150", Year: 2023, Price: 40000, Condition: "Certified", DriveTrains: "4WD"},
	}
}

func intp(n int) *int           { return &n }
func floatp(f float64) *float64 { return &f }

func TestFilterZeroCriteriaMatchesAll(t *testing.T) {
	cars := fixture()
	got := query.Filter(cars, query.Criteria{})
	assert.Len(t, got, len(cars))
}

func TestFilterAnyIsNoConstraint(t *testing.T) {
	got := query.Filter(fixture(), query.Criteria{Condition: query.Any, DriveTrains: query.Any})
	assert.Len(t, got, 4)
}

func TestFilterByCondition(t *testing.T) {
	got := query.Filter(fixture(), query.Criteria{Condition: "Used"})
	assert.Len(t, got, 2)
	for _, c := range got {
		assert.Equal(t, "Used", c.Condition)
	}
}

func TestFilterIsConjunctive(t *testing.T) {
	got := query.Filter(fixture(), query.Criteria{Condition: "Used", DriveTrains: "FWD", YearMin: intp(2019)})
	assert.Len(t, got, 1)
	assert.Equal(t, uint(3), got[0].ID)
}

func TestFilterMakeSubstringCaseInsensitive(t *testing.T) {
	got := query.Filter(fixture(), query.Criteria{MakeSubstring: "toy"})
	assert.Len(t, got, 2)
}

func TestFilterPriceBoundsInclusive(t *testing.T) {
	got := query.Filter(fixture(), query.Criteria{PriceMin: floatp(20000), PriceMax: floatp(30000)})
	assert.Len(t, got, 2)
}

func TestCriteriaIsZero(t *testing.T) {
	assert.True(t, query.Criteria{}.IsZero())
	assert.True(t, query.Criteria{Condition: query.Any}.IsZero())
	assert.False(t, query.Criteria{MakeSubstring: "a"}.IsZero())
	assert.False(t, query.Criteria{YearMax: intp(2000)}.IsZero())
}

func TestSortCarsNumericAscending(t *testing.T) {
	sorted, ok := query.SortCars(fixture(), "price", false)
	assert.True(t, ok)
	assert.Equal(t, uint(1), sorted[0].ID)
	assert.Equal(t, uint(4), sorted[3].ID)
}

func TestSortCarsDescending(t *testing.T) {
	sorted, ok := query.SortCars(fixture(), "year", true)
	assert.True(t, ok)
	assert.Equal(t, 2023, sorted[0].Year)
	assert.Equal(t, 2018, sorted[3].Year)
}

func TestSortCarsTextCaseInsensitive(t *testing.T) {
	cars := []models.Car{
		{ID: 1, Make: "toyota"},
		{ID: 2, Make: "Ford"},
		{ID: 3, Make: "HONDA"},
	}
	sorted, ok := query.SortCars(cars, "make", false)
	assert.True(t, ok)
	assert.Equal(t, "Ford", sorted[0].Make)
	assert.Equal(t, "HONDA", sorted[1].Make)
	assert.Equal(t, "toyota", sorted[2].Make)
}

func TestSortCarsUnknownColumn(t *testing.T) {
	cars := fixture()
	_, ok := query.SortCars(cars, "owner", false)
	assert.False(t, ok)
}

func TestSortCarsDoesNotMutateInput(t *testing.T) {
	cars := fixture()
	_, _ = query.SortCars(cars, "price", true)
	assert.Equal(t, uint(1), cars[0].ID)
}

func TestSortByUnparsableNumericSortsLast(t *testing.T) {
	values := []string{"30", "n/a", "10", "20"}
	sorted := query.SortBy(values, func(s string) any { return s }, true, false)
	assert.Equal(t, []string{"10", "20", "30", "n/a"}, sorted)
}

func TestSortByStable(t *testing.T) {
	cars := []models.Car{
		{ID: 1, Price: 100},
		{ID: 2, Price: 100},
		{ID: 3, Price: 50},
	}
	sorted, _ := query.SortCars(cars, "price", false)
	assert.Equal(t, uint(3), sorted[0].ID)
	assert.Equal(t, uint(1), sorted[1].ID)
	assert.Equal(t, uint(2), sorted[2].ID)
}

func TestAggregate(t *testing.T) {
	cars := []models.Car{
		{Make: "Toyota", Price: 10000},
		{Make: "Toyota", Price: 20000},
		{Make: "Honda", Price: 30000},
		{Make: "Ford", Price: 40000},
	}
	s := query.Aggregate(cars)
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 100000, s.TotalValue, 1e-9)
	assert.InDelta(t, 25000, s.AvgPrice, 1e-9)
	assert.InDelta(t, 25000, s.MedianPrice, 1e-9)
	assert.Equal(t, map[string]int{"Toyota": 2, "Honda": 1, "Ford": 1}, s.ByMake)
}

func TestAggregateOddMedian(t *testing.T) {
	cars := []models.Car{{Price: 10}, {Price: 30}, {Price: 20}}
	s := query.Aggregate(cars)
	assert.InDelta(t, 20, s.MedianPrice, 1e-9)
}

func TestAggregateEmptySet(t *testing.T) {
	s := query.Aggregate(nil)
	assert.Equal(t, 0, s.Count)
	assert.Zero(t, s.TotalValue)
	assert.Zero(t, s.AvgPrice)
	assert.Zero(t, s.MedianPrice)
	assert.Empty(t, s.ByMake)
}
