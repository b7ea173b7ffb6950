package main

import (
	"fmt"

	"github.com/SscSPs/car_insurance_app/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or revert database migrations",
	Long:      `"up" applies every pending migration; "down" reverts the latest one.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
	RunE: func(cmd *cobra.Command, args []string) error {
		direction := database.MigrateUp
		if len(args) == 1 {
			direction = database.MigrateDirection(args[0])
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required to run migrations")
		}
		_, err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, direction)
		return err
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
