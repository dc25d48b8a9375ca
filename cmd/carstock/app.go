package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"gorm.io/gorm"

	"github.com/carstock/carstock/app/models"
	"github.com/carstock/carstock/app/repositories"
	"github.com/carstock/carstock/app/services"
	"github.com/carstock/carstock/config"
	"github.com/carstock/carstock/pkg/database"
	"github.com/carstock/carstock/pkg/event"
	"github.com/carstock/carstock/pkg/logger"
	"github.com/carstock/carstock/pkg/migration"
	"github.com/carstock/carstock/pkg/storage"
)

// application bundles the wired services every command works through.
// It is built fresh per invocation; nothing is process-global.
type application struct {
	db       *gorm.DB
	disk     storage.Disk
	inv      *services.Inventory
	gallery  *services.Gallery
	transfer *services.Transfer
	sales    *repositories.SalespersonRepository
}

// boot loads config, opens the database, applies pending migrations and
// wires the service graph.
func boot() (*application, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}

	db, err := database.Open()
	if err != nil {
		return nil, err
	}

	// Tables are created on first use, so a fresh install works without
	// an explicit migrate step.
	runner := migration.New(db)
	if err := runner.EnsureTable(); err != nil {
		return nil, err
	}
	pending, err := runner.Pending()
	if err != nil {
		return nil, err
	}
	if len(pending) > 0 {
		if err := runner.Run(); err != nil {
			return nil, err
		}
	}

	disk := storage.NewLocal(config.ImageDir())
	inv := services.NewInventory(db, disk)

	registerAuditLog()

	return &application{
		db:       db,
		disk:     disk,
		inv:      inv,
		gallery:  services.NewGallery(inv),
		transfer: services.NewTransfer(inv),
		sales:    repositories.NewSalespersonRepository(db),
	}, nil
}

// registerAuditLog wires mutation events to the structured log so every
// write leaves a trace.
func registerAuditLog() {
	log := func(msg string) event.Handler {
		return func(payload interface{}) {
			switch v := payload.(type) {
			case models.Car:
				logger.Info(msg, "id", v.ID, "make", v.Make, "model", v.Model)
			case models.CarImage:
				logger.Info(msg, "id", v.ID, "car_id", v.CarID, "path", v.Path)
			}
		}
	}
	event.Listen(services.EventCarCreated, log("car created"))
	event.Listen(services.EventCarUpdated, log("car updated"))
	event.Listen(services.EventCarDeleted, log("car deleted"))
	event.Listen(services.EventImageAdded, log("image attached"))
	event.Listen(services.EventImageRemoved, log("image removed"))
}

// printCars renders listings as an aligned table on stdout.
func printCars(cars []models.Car) {
	if len(cars) == 0 {
		fmt.Println("No cars in inventory.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMAKE\tMODEL\tYEAR\tPRICE\tCOLOR\tTYPE\tCONDITION\tDRIVE\tCC\tL\tSALESPERSON")
	for _, c := range cars {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\t%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			c.ID, c.Make, c.Model, c.Year, c.Price, c.Color, c.Type,
			c.Condition, c.DriveTrains, c.EnginePower, c.LiterCapacity, c.Salesperson)
	}
	w.Flush()
}
