package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carstock/carstock/config"
	"github.com/carstock/carstock/pkg/backup"
)

// carstock export <file>
var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export all cars to a spreadsheet (.xlsx or .csv)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}
		n, err := app.transfer.Export(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d car(s) to %s.\n", n, args[0])
		return nil
	},
}

// carstock import <file>
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import cars from a spreadsheet (.xlsx or .csv)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}
		report, err := app.transfer.Import(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Imported: %d, Failed: %d\n", report.OK, report.Failed)
		for _, e := range report.Errors {
			fmt.Printf("  %s\n", e)
		}
		return nil
	},
}

// carstock backup [file]
var backupCmd = &cobra.Command{
	Use:   "backup [file]",
	Short: "Archive the database and image gallery into a zip",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}
		if config.DatabaseDriver() != "sqlite" {
			return fmt.Errorf("backup supports the sqlite driver only (current: %s)", config.DatabaseDriver())
		}

		target := config.BackupFile()
		if len(args) == 1 {
			target = args[0]
		}
		if err := backup.Create(target, config.DatabaseDSN(), app.disk); err != nil {
			return err
		}
		fmt.Printf("Backup written to %s.\n", target)
		return nil
	},
}

// carstock restore <file>
var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore a backup archive, overwriting current data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		if config.DatabaseDriver() != "sqlite" {
			return fmt.Errorf("restore supports the sqlite driver only (current: %s)", config.DatabaseDriver())
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm("Restore will overwrite current data. Continue? [y/N] ") {
			fmt.Println("Aborted.")
			return nil
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := backup.Restore(args[0], cwd); err != nil {
			return err
		}
		fmt.Println("Restore complete.")
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	restoreCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
}
