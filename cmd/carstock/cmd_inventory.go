package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carstock/carstock/app/models"
	"github.com/carstock/carstock/pkg/query"
)

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint(id), nil
}

// carstock add
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new car to the inventory",
	Example: `  carstock add --make Toyota --model Corolla --year 2022 --price 21000 \
    --color White --type Sedan --condition New --drive-trains FWD \
    --engine-power 1600 --liter-capacity 50 --salesperson "Omar Khaled"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}

		in := models.CarInput{}
		f := cmd.Flags()
		in.Make, _ = f.GetString("make")
		in.Model, _ = f.GetString("model")
		in.Year, _ = f.GetInt("year")
		in.Price, _ = f.GetFloat64("price")
		in.Color, _ = f.GetString("color")
		in.Type, _ = f.GetString("type")
		in.Condition, _ = f.GetString("condition")
		in.DriveTrains, _ = f.GetString("drive-trains")
		in.EnginePower, _ = f.GetInt("engine-power")
		in.LiterCapacity, _ = f.GetInt("liter-capacity")
		in.Salesperson, _ = f.GetString("salesperson")

		id, err := app.inv.Create(in)
		if err != nil {
			return err
		}
		fmt.Printf("Car added with id %d.\n", id)

		// The record is in; a failing image copy is only a warning.
		if image, _ := f.GetString("image"); image != "" {
			img, err := app.gallery.Attach(id, image)
			if err != nil {
				fmt.Printf("Warning: image not attached: %v\n", err)
				return nil
			}
			if err := app.gallery.SetMain(id, img.ID); err != nil {
				fmt.Printf("Warning: main image not set: %v\n", err)
			}
		}
		return nil
	},
}

// carstock show <id>
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one car with its gallery",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		car, err := app.inv.Get(id)
		if err != nil {
			return err
		}
		printCars([]models.Car{car})
		if car.ImagePath != "" {
			fmt.Printf("Main image: %s\n", car.ImagePath)
		}

		imgs, err := app.inv.Images(id)
		if err == nil && len(imgs) > 0 {
			fmt.Printf("Gallery (%d):\n", len(imgs))
			for _, img := range imgs {
				fmt.Printf("  [%d] %s\n", img.ID, img.Path)
			}
		}
		return nil
	},
}

// carstock list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cars",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}

		cars := app.inv.All()
		if sortCol, _ := cmd.Flags().GetString("sort"); sortCol != "" {
			desc, _ := cmd.Flags().GetBool("desc")
			var ok bool
			if cars, ok = query.SortCars(cars, sortCol, desc); !ok {
				return fmt.Errorf("unknown sort column %q (one of: %s)",
					sortCol, strings.Join(query.SortableColumns(), ", "))
			}
		}
		printCars(cars)
		return nil
	},
}

// carstock update <id>
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an existing car (only supplied flags change)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		patch := models.CarPatch{}
		f := cmd.Flags()
		if f.Changed("make") {
			v, _ := f.GetString("make")
			patch.Make = &v
		}
		if f.Changed("model") {
			v, _ := f.GetString("model")
			patch.Model = &v
		}
		if f.Changed("year") {
			v, _ := f.GetInt("year")
			patch.Year = &v
		}
		if f.Changed("price") {
			v, _ := f.GetFloat64("price")
			patch.Price = &v
		}
		if f.Changed("color") {
			v, _ := f.GetString("color")
			patch.Color = &v
		}
		if f.Changed("type") {
			v, _ := f.GetString("type")
			patch.Type = &v
		}
		if f.Changed("condition") {
			v, _ := f.GetString("condition")
			patch.Condition = &v
		}
		if f.Changed("drive-trains") {
			v, _ := f.GetString("drive-trains")
			patch.DriveTrains = &v
		}
		if f.Changed("engine-power") {
			v, _ := f.GetInt("engine-power")
			patch.EnginePower = &v
		}
		if f.Changed("liter-capacity") {
			v, _ := f.GetInt("liter-capacity")
			patch.LiterCapacity = &v
		}
		if f.Changed("salesperson") {
			v, _ := f.GetString("salesperson")
			patch.Salesperson = &v
		}

		if patch.IsEmpty() {
			fmt.Println("No changes supplied.")
			return nil
		}
		if err := app.inv.Update(id, patch); err != nil {
			return err
		}
		fmt.Println("Update successful.")
		return nil
	},
}

// carstock delete <id>
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a car (gallery rows are kept, files are cleaned up)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := app.inv.Delete(id); err != nil {
			return err
		}
		fmt.Printf("Car %d deleted.\n", id)
		return nil
	},
}

// carstock duplicate <id>
var duplicateCmd = &cobra.Command{
	Use:   "duplicate <id>",
	Short: "Copy an existing car into a new listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		newID, err := app.inv.Duplicate(id)
		if err != nil {
			return err
		}
		fmt.Printf("Car %d duplicated as %d.\n", id, newID)
		return nil
	},
}

func carFieldFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("make", "", "manufacturer")
	f.String("model", "", "model name")
	f.Int("year", 0, "year of manufacture (1886–2050)")
	f.Float64("price", 0, "price, must be positive")
	f.String("color", "", "color")
	f.String("type", "", "one of: "+strings.Join(models.CarTypes, ", "))
	f.String("condition", "", "one of: "+strings.Join(models.CarConditions, ", "))
	f.String("drive-trains", "", "one of: "+strings.Join(models.DriveTrains, ", "))
	f.Int("engine-power", 0, "engine power in cc")
	f.Int("liter-capacity", 0, "fuel capacity in liters")
	f.String("salesperson", "", "assigned salesperson")
}

func init() {
	carFieldFlags(addCmd)
	addCmd.Flags().String("image", "", "image file to attach as the main image")

	carFieldFlags(updateCmd)

	listCmd.Flags().String("sort", "", "column to sort by")
	listCmd.Flags().Bool("desc", false, "sort descending")
}
