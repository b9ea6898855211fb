package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register schema migrations and seeders.
	_ "github.com/printfarmlabs/stockpile/database/migrations"
	_ "github.com/printfarmlabs/stockpile/database/seeders"
)

var rootCmd = &cobra.Command{
	Use:   "stockpile",
	Short: "Inventory service for 3D-printer consumables",
	Long:  "stockpile tracks a print farm's consumable catalog and quantity-on-hand ledger.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
