package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carstock/carstock/config"
	"github.com/carstock/carstock/database/seeders"
	"github.com/carstock/carstock/pkg/database"
	"github.com/carstock/carstock/pkg/migration"
)

// bootDB loads config and opens the database connection without the
// full service graph — the migration commands only need the handle.
func bootDB() (*migration.Runner, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	db, err := database.Open()
	if err != nil {
		return nil, err
	}
	return migration.New(db), nil
}

// carstock migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := bootDB()
		if err != nil {
			return err
		}
		fmt.Println("Running migrations…")
		return runner.Run()
	},
}

// carstock migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := bootDB()
		if err != nil {
			return err
		}
		fmt.Println("Rolling back last batch…")
		return runner.Rollback()
	},
}

// carstock migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := bootDB()
		if err != nil {
			return err
		}
		return runner.Status()
	},
}

// carstock seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}
		fmt.Println("Running seeders…")
		return seeders.RunAll(app.db)
	},
}
