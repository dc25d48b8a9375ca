package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carstock/carstock/pkg/query"
)

// carstock search
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the inventory with filters",
	Example: `  carstock search --make toy --year-min 2020
  carstock search --condition Used --price-max 30000 --sort price --desc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}

		c := query.Criteria{}
		f := cmd.Flags()
		c.MakeSubstring, _ = f.GetString("make")
		if f.Changed("year-min") {
			v, _ := f.GetInt("year-min")
			c.YearMin = &v
		}
		if f.Changed("year-max") {
			v, _ := f.GetInt("year-max")
			c.YearMax = &v
		}
		if f.Changed("price-min") {
			v, _ := f.GetFloat64("price-min")
			c.PriceMin = &v
		}
		if f.Changed("price-max") {
			v, _ := f.GetFloat64("price-max")
			c.PriceMax = &v
		}
		c.Condition, _ = f.GetString("condition")
		c.DriveTrains, _ = f.GetString("drive-trains")

		cars := app.inv.Search(c)
		if sortCol, _ := f.GetString("sort"); sortCol != "" {
			desc, _ := f.GetBool("desc")
			var ok bool
			if cars, ok = query.SortCars(cars, sortCol, desc); !ok {
				return fmt.Errorf("unknown sort column %q (one of: %s)",
					sortCol, strings.Join(query.SortableColumns(), ", "))
			}
		}

		printCars(cars)
		fmt.Printf("%d car(s) matched.\n", len(cars))
		return nil
	},
}

func init() {
	f := searchCmd.Flags()
	f.String("make", "", "substring match on make, case-insensitive")
	f.Int("year-min", 0, "minimum year, inclusive")
	f.Int("year-max", 0, "maximum year, inclusive")
	f.Float64("price-min", 0, "minimum price, inclusive")
	f.Float64("price-max", 0, "maximum price, inclusive")
	f.String("condition", query.Any, "exact condition, or Any")
	f.String("drive-trains", query.Any, "exact drive trains, or Any")
	f.String("sort", "", "column to sort by")
	f.Bool("desc", false, "sort descending")
}
