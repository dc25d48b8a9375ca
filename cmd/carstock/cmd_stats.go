package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carstock/carstock/pkg/query"
)

const barWidth = 40

// carstock stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over the inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}

		s := query.Aggregate(app.inv.All())

		fmt.Printf("Cars in inventory: %d\n", s.Count)
		fmt.Printf("Total value:       %.2f\n", s.TotalValue)
		fmt.Printf("Average price:     %.2f\n", s.AvgPrice)
		fmt.Printf("Median price:      %.2f\n", s.MedianPrice)

		if len(s.ByMake) == 0 {
			return nil
		}

		fmt.Println("\nBy make:")
		makes := make([]string, 0, len(s.ByMake))
		maxCount := 0
		for m, n := range s.ByMake {
			makes = append(makes, m)
			if n > maxCount {
				maxCount = n
			}
		}
		sort.Strings(makes)

		for _, m := range makes {
			n := s.ByMake[m]
			bar := strings.Repeat("█", n*barWidth/maxCount)
			fmt.Printf("  %-15s %s %d\n", m, bar, n)
		}
		return nil
	},
}

// carstock salespeople
var salespeopleCmd = &cobra.Command{
	Use:   "salespeople",
	Short: "List the sales team directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}

		people, err := app.sales.All()
		if err != nil {
			return err
		}
		if len(people) == 0 {
			fmt.Println("No salespeople recorded.")
			return nil
		}
		for _, p := range people {
			fmt.Printf("  %-20s %-20s sells %s\n", p.Name, p.Phone, p.Make)
		}
		return nil
	},
}
