package services_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/carstock/carstock/app/models"
	"github.com/carstock/carstock/app/services"
	"github.com/carstock/carstock/pkg/database"
	"github.com/carstock/carstock/pkg/query"
	"github.com/carstock/carstock/pkg/storage"
)

func newTestInventory(t *testing.T) *services.Inventory {
	t.Helper()
	inv, _ := newTestInventoryDB(t)
	return inv
}

func newTestInventoryDB(t *testing.T) (*services.Inventory, *gorm.DB) {
	t.Helper()
	db, err := database.OpenDSN("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Car{}, &models.CarImage{}, &models.Salesperson{}))
	return services.NewInventory(db, storage.NewLocal(t.TempDir())), db
}

func validInput() models.CarInput {
	return models.CarInput{
		Make:          "Toyota",
		Model:         "Corolla",
		Year:          2020,
		Price:         15000,
		Color:         "Blue",
		Type:          "Sedan",
		Condition:     "Used",
		DriveTrains:   "FWD",
		EnginePower:   1800,
		LiterCapacity: 50,
		Salesperson:   "Dana",
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	inv := newTestInventory(t)

	id, err := inv.Create(validInput())
	require.NoError(t, err)
	assert.NotZero(t, id)

	car, err := inv.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", car.Make)
	assert.Equal(t, "Corolla", car.Model)
	assert.Equal(t, 2020, car.Year)
	assert.Equal(t, 15000.0, car.Price)
	assert.Equal(t, "FWD", car.DriveTrains)
}

func TestCreateTrimsWhitespace(t *testing.T) {
	inv := newTestInventory(t)

	in := validInput()
	in.Make = "  Toyota  "
	in.Salesperson = " Dana "
	id, err := inv.Create(in)
	require.NoError(t, err)

	car, err := inv.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", car.Make)
	assert.Equal(t, "Dana", car.Salesperson)
}

func TestCreateRejectsBadInput(t *testing.T) {
	inv := newTestInventory(t)

	cases := []struct {
		name   string
		mutate func(*models.CarInput)
		field  string
	}{
		{"year below range", func(in *models.CarInput) { in.Year = 1885 }, "year"},
		{"year above range", func(in *models.CarInput) { in.Year = 2051 }, "year"},
		{"zero price", func(in *models.CarInput) { in.Price = 0 }, "price"},
		{"negative price", func(in *models.CarInput) { in.Price = -5 }, "price"},
		{"empty make", func(in *models.CarInput) { in.Make = "" }, "make"},
		{"whitespace make", func(in *models.CarInput) { in.Make = "   " }, "make"},
		{"unknown type", func(in *models.CarInput) { in.Type = "Spaceship" }, "type"},
		{"unknown condition", func(in *models.CarInput) { in.Condition = "Scrap" }, "condition"},
		{"unknown drive train", func(in *models.CarInput) { in.DriveTrains = "6WD" }, "drive_trains"},
		{"zero engine power", func(in *models.CarInput) { in.EnginePower = 0 }, "engine_power"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := inv.Create(in)
			require.Error(t, err)
			assert.True(t, services.IsValidation(err))

			var ve *services.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tc.field)
		})
	}

	// A rejected create must not have written anything.
	assert.Empty(t, inv.All())
}

func TestUpdateOnlyTouchesSuppliedFields(t *testing.T) {
	inv := newTestInventory(t)
	id, err := inv.Create(validInput())
	require.NoError(t, err)

	price := 12500.0
	require.NoError(t, inv.Update(id, models.CarPatch{Price: &price}))

	car, err := inv.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 12500.0, car.Price)
	assert.Equal(t, "Toyota", car.Make)
	assert.Equal(t, 2020, car.Year)
	assert.Equal(t, "Used", car.Condition)
}

func TestUpdateRejectsInvalidPatch(t *testing.T) {
	inv := newTestInventory(t)
	id, err := inv.Create(validInput())
	require.NoError(t, err)

	year := 1700
	err = inv.Update(id, models.CarPatch{Year: &year})
	require.Error(t, err)
	assert.True(t, services.IsValidation(err))

	car, err := inv.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 2020, car.Year)
}

func TestUpdateRejectsBadEnumPatch(t *testing.T) {
	inv := newTestInventory(t)
	id, err := inv.Create(validInput())
	require.NoError(t, err)

	cond := "Totaled"
	err = inv.Update(id, models.CarPatch{Condition: &cond})
	require.Error(t, err)
	assert.True(t, services.IsValidation(err))
}

func TestUpdateEmptyPatchIsNoOp(t *testing.T) {
	inv := newTestInventory(t)
	id, err := inv.Create(validInput())
	require.NoError(t, err)

	require.NoError(t, inv.Update(id, models.CarPatch{}))

	car, err := inv.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", car.Make)
}

func TestUpdateMissingCar(t *testing.T) {
	inv := newTestInventory(t)

	price := 100.0
	err := inv.Update(9999, models.CarPatch{Price: &price})
	require.Error(t, err)
	assert.True(t, services.IsNotFound(err))
}

func TestGetMissingCar(t *testing.T) {
	inv := newTestInventory(t)

	_, err := inv.Get(42)
	require.Error(t, err)
	assert.True(t, services.IsNotFound(err))
}

func TestDeleteRemovesCar(t *testing.T) {
	inv := newTestInventory(t)
	id, err := inv.Create(validInput())
	require.NoError(t, err)

	require.NoError(t, inv.Delete(id))

	_, err = inv.Get(id)
	assert.True(t, services.IsNotFound(err))
	assert.Empty(t, inv.All())
}

func TestDeleteMissingCar(t *testing.T) {
	inv := newTestInventory(t)
	err := inv.Delete(77)
	require.Error(t, err)
	assert.True(t, services.IsNotFound(err))
}

func TestDeleteLeavesImageRowsBehind(t *testing.T) {
	inv := newTestInventory(t)
	id, err := inv.Create(validInput())
	require.NoError(t, err)

	_, err = inv.AddImage(id, "car1_100.jpg")
	require.NoError(t, err)
	_, err = inv.AddImage(id, "car1_101.jpg")
	require.NoError(t, err)

	require.NoError(t, inv.Delete(id))

	// No cascade: attachment rows survive the car row.
	imgs, err := inv.Images(id)
	require.NoError(t, err)
	assert.Len(t, imgs, 2)
}

func TestDuplicateCreatesFreshRow(t *testing.T) {
	inv := newTestInventory(t)
	id, err := inv.Create(validInput())
	require.NoError(t, err)

	copyID, err := inv.Duplicate(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, copyID)

	orig, err := inv.Get(id)
	require.NoError(t, err)
	dup, err := inv.Get(copyID)
	require.NoError(t, err)

	dup.ID = orig.ID
	assert.Equal(t, orig, dup)
}

func TestAddImageRequiresPath(t *testing.T) {
	inv := newTestInventory(t)
	id, err := inv.Create(validInput())
	require.NoError(t, err)

	_, err = inv.AddImage(id, "   ")
	require.Error(t, err)
	assert.True(t, services.IsValidation(err))
}

func TestDeleteImage(t *testing.T) {
	inv := newTestInventory(t)
	id, err := inv.Create(validInput())
	require.NoError(t, err)

	imgID, err := inv.AddImage(id, "car1_100.jpg")
	require.NoError(t, err)

	require.NoError(t, inv.DeleteImage(imgID))

	imgs, err := inv.Images(id)
	require.NoError(t, err)
	assert.Empty(t, imgs)

	err = inv.DeleteImage(imgID)
	assert.True(t, services.IsNotFound(err))
}

func TestSearchMatchesFilterSemantics(t *testing.T) {
	inv := newTestInventory(t)

	seed := []func(*models.CarInput){
		func(in *models.CarInput) {},
		func(in *models.CarInput) { in.Make = "Honda"; in.Model = "Civic"; in.Year = 2015; in.Price = 9000 },
		func(in *models.CarInput) { in.Condition = "New"; in.Year = 2024; in.Price = 32000; in.DriveTrains = "AWD" },
	}
	for _, mutate := range seed {
		in := validInput()
		mutate(&in)
		_, err := inv.Create(in)
		require.NoError(t, err)
	}

	c := query.Criteria{Condition: "Used"}
	got := inv.Search(c)
	want := query.Filter(inv.All(), c)
	assert.ElementsMatch(t, want, got)

	min := 2018
	c = query.Criteria{YearMin: &min, DriveTrains: query.Any}
	assert.ElementsMatch(t, query.Filter(inv.All(), c), inv.Search(c))

	c = query.Criteria{MakeSubstring: "Hon"}
	got = inv.Search(c)
	require.Len(t, got, 1)
	assert.Equal(t, "Civic", got[0].Model)

	// Case-insensitive both ways, like the in-memory filter.
	assert.Len(t, inv.Search(query.Criteria{MakeSubstring: "hoNDa"}), 1)
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	inv := newTestInventory(t)

	for _, name := range []string{"Ace_Motors", "AceXMotors", "100% Imports"} {
		in := validInput()
		in.Make = name
		_, err := inv.Create(in)
		require.NoError(t, err)
	}

	// _ and % are plain characters in the needle, not SQL wildcards.
	got := inv.Search(query.Criteria{MakeSubstring: "Ace_"})
	require.Len(t, got, 1)
	assert.Equal(t, "Ace_Motors", got[0].Make)

	got = inv.Search(query.Criteria{MakeSubstring: "100%"})
	require.Len(t, got, 1)
	assert.Equal(t, "100% Imports", got[0].Make)

	assert.ElementsMatch(t,
		query.Filter(inv.All(), query.Criteria{MakeSubstring: "Ace_"}),
		inv.Search(query.Criteria{MakeSubstring: "Ace_"}))
}

func TestReadPathsDegradeOnStorageFailure(t *testing.T) {
	inv, db := newTestInventoryDB(t)
	_, err := inv.Create(validInput())
	require.NoError(t, err)

	require.NoError(t, db.Migrator().DropTable("cars"))

	// A broken store reads as an empty inventory, never an error.
	assert.Empty(t, inv.All())
	assert.Empty(t, inv.Search(query.Criteria{Condition: "Used"}))
}

func TestWritePathsPropagateStorageFailure(t *testing.T) {
	inv, db := newTestInventoryDB(t)
	id, err := inv.Create(validInput())
	require.NoError(t, err)

	require.NoError(t, db.Migrator().DropTable("cars"))

	var se *services.StorageError

	_, err = inv.Create(validInput())
	require.ErrorAs(t, err, &se)

	price := 100.0
	err = inv.Update(id, models.CarPatch{Price: &price})
	require.ErrorAs(t, err, &se)
	assert.False(t, services.IsNotFound(err))

	err = inv.Delete(id)
	require.ErrorAs(t, err, &se)
	assert.False(t, services.IsValidation(err))
}
