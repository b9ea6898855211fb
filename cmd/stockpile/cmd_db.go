package main

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/printfarmlabs/stockpile/config"
	"github.com/printfarmlabs/stockpile/database/seeders"
	"github.com/printfarmlabs/stockpile/pkg/database"
	"github.com/printfarmlabs/stockpile/pkg/migration"
)

func init() {
	rootCmd.AddCommand(migrateCmd, rollbackCmd, statusCmd, seedCmd)
}

func withDB(fn func(db *gorm.DB) error) error {
	if err := config.Load(); err != nil {
		return err
	}
	db, err := database.Connect()
	if err != nil {
		return err
	}
	return fn(db)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			return migration.New(db).Run()
		})
	},
}

var rollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Roll back the most recent migration batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			return migration.New(db).Rollback()
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show applied and pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			return migration.New(db).Status()
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "db:seed",
	Short: "Seed the catalog with starter data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(seeders.Run)
	},
}
