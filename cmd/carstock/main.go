package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import migrations so their init() funcs run and register themselves.
	_ "github.com/carstock/carstock/database/migrations"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "carstock",
	Short: "carstock — car dealership inventory manager",
	Long: "carstock keeps a dealership's vehicle listings in an embedded database:\n" +
		"add, search, update and delete cars, attach image galleries, move\n" +
		"inventory through spreadsheets and view aggregate statistics.",
}

func init() {
	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)

	// Inventory
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(duplicateCmd)

	// Search & statistics
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(salespeopleCmd)

	// Gallery
	rootCmd.AddCommand(imageAddCmd)
	rootCmd.AddCommand(imageListCmd)
	rootCmd.AddCommand(imageRemoveCmd)
	rootCmd.AddCommand(imageSetMainCmd)

	// Data transfer
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
