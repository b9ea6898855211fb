package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/printfarmlabs/stockpile/app/repositories"
	"github.com/printfarmlabs/stockpile/app/services"
	"github.com/printfarmlabs/stockpile/config"
	"github.com/printfarmlabs/stockpile/pkg/auth"
)

func init() {
	rootCmd.AddCommand(skuListCmd, stockShowCmd, inventoryCmd, authHashCmd)
}

var skuListCmd = &cobra.Command{
	Use:   "sku:list",
	Short: "Print the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			skus, err := services.NewCatalogService(repositories.NewSKURepository(db)).List()
			if err != nil {
				return err
			}
			for _, s := range skus {
				fmt.Printf("%-6d %-16s %-12s %s\n", s.ID, s.SKU, s.Category, s.Description)
			}
			return nil
		})
	},
}

var stockShowCmd = &cobra.Command{
	Use:   "stock:show <sku>",
	Short: "Print the on-hand quantity for one SKU code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			ledger := services.NewLedgerService(db,
				repositories.NewStockRepository(db),
				repositories.NewSKURepository(db),
				config.LedgerRequireSKU(), nil)

			qty, err := ledger.CurrentQuantity(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d\n", args[0], qty)
			return nil
		})
	},
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Print the joined catalog/stock view",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			ledger := services.NewLedgerService(db,
				repositories.NewStockRepository(db),
				repositories.NewSKURepository(db),
				config.LedgerRequireSKU(), nil)

			rows, err := ledger.ListWithCatalog()
			if err != nil {
				return err
			}
			for _, row := range rows {
				fmt.Printf("%-16s %-6d %s\n", row.SKU, row.Quantity, row.Description)
			}
			return nil
		})
	},
}

var authHashCmd = &cobra.Command{
	Use:   "auth:hash <password>",
	Short: "Print a bcrypt hash for AUTH_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil
	},
}
