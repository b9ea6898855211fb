package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/printfarmlabs/stockpile/app/controllers"
	"github.com/printfarmlabs/stockpile/app/routes"
	"github.com/printfarmlabs/stockpile/app/services"
	"github.com/printfarmlabs/stockpile/internal/server"
	"github.com/printfarmlabs/stockpile/pkg/router"
)

func init() {
	rootCmd.AddCommand(serveCmd, routeListCmd)
}

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run"},
	Short:   "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "Print the registered HTTP routes",
	Run: func(cmd *cobra.Command, args []string) {
		// Controllers are constructed with nil services: registration only
		// records method, path and name, no handler runs here.
		r := router.New()
		routes.RegisterAPI(r,
			controllers.NewAuthController(services.NewSharedSecretAuthenticator()),
			controllers.NewCatalogController(nil),
			controllers.NewLedgerController(nil, nil),
		)

		for _, info := range r.Routes() {
			fmt.Printf("%-7s %-28s %s\n", info.Method, info.Path, info.Name)
		}
	},
}
