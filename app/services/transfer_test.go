package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carstock/carstock/app/models"
	"github.com/carstock/carstock/app/services"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestInventory(t)
	transfer := services.NewTransfer(src)

	inputs := []models.CarInput{
		validInput(),
		{Make: "Honda", Model: "Civic", Year: 2015, Price: 8999.5, Color: "Red",
			Type: "Hatchback", Condition: "Used", DriveTrains: "FWD",
			EnginePower: 1500, LiterCapacity: 45, Salesperson: "Alex"},
		{Make: "Ford", Model: "F-150", Year: 2024, Price: 55000, Color: "Black",
			Type: "Truck", Condition: "New", DriveTrains: "4WD",
			EnginePower: 3500, LiterCapacity: 98, Salesperson: "Sam"},
	}
	for _, in := range inputs {
		_, err := src.Create(in)
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "cars.csv")
	n, err := transfer.Export(path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	dst := newTestInventory(t)
	report, err := services.NewTransfer(dst).Import(path)
	require.NoError(t, err)
	assert.Equal(t, 3, report.OK)
	assert.Zero(t, report.Failed)

	// Imported rows get fresh ids but otherwise match the originals.
	strip := func(cars []models.Car) []models.Car {
		out := make([]models.Car, len(cars))
		for i, c := range cars {
			c.ID = 0
			out[i] = c
		}
		return out
	}
	assert.ElementsMatch(t, strip(src.All()), strip(dst.All()))
}

func TestImportCountsBadRows(t *testing.T) {
	inv := newTestInventory(t)
	transfer := services.NewTransfer(inv)

	csv := "make,model,year,price,color,type,condition,drive_trains,engine_power,liter_capacity,salesperson\n" +
		"Toyota,Corolla,2020,15000,Blue,Sedan,Used,FWD,1800,50,Dana\n" +
		"Honda,Civic,not-a-year,9000,Red,Hatchback,Used,FWD,1500,45,Alex\n" +
		"Ford,F-150,2024,55000,Black,Truck,Scrap,4WD,3500,98,Sam\n"

	path := filepath.Join(t.TempDir(), "mixed.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	report, err := transfer.Import(path)
	require.NoError(t, err)
	assert.Equal(t, 1, report.OK)
	assert.Equal(t, 2, report.Failed)
	assert.Len(t, report.Errors, 2)
	assert.Contains(t, report.Errors[0], "row 3")

	assert.Len(t, inv.All(), 1)
}

func TestImportMissingColumns(t *testing.T) {
	inv := newTestInventory(t)
	transfer := services.NewTransfer(inv)

	path := filepath.Join(t.TempDir(), "short.csv")
	require.NoError(t, os.WriteFile(path, []byte("make,model\nToyota,Corolla\n"), 0o644))

	_, err := transfer.Import(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing columns")
	assert.Empty(t, inv.All())
}

func TestImportIgnoresIDColumn(t *testing.T) {
	inv := newTestInventory(t)
	transfer := services.NewTransfer(inv)

	csv := "id,make,model,year,price,color,type,condition,drive_trains,engine_power,liter_capacity,salesperson\n" +
		"500,Toyota,Corolla,2020,15000,Blue,Sedan,Used,FWD,1800,50,Dana\n"

	path := filepath.Join(t.TempDir(), "withid.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	report, err := transfer.Import(path)
	require.NoError(t, err)
	require.Equal(t, 1, report.OK)

	cars := inv.All()
	require.Len(t, cars, 1)
	assert.NotEqual(t, uint(500), cars[0].ID)
}

func TestExportUnsupportedExtension(t *testing.T) {
	inv := newTestInventory(t)
	transfer := services.NewTransfer(inv)

	_, err := transfer.Export(filepath.Join(t.TempDir(), "cars.txt"))
	require.Error(t, err)
}
