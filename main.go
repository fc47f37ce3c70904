package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/the1kimko/book-rental-management-system/app"
	"github.com/the1kimko/book-rental-management-system/config"
	"github.com/the1kimko/book-rental-management-system/routes"
	"github.com/the1kimko/book-rental-management-system/seed"
	"github.com/the1kimko/book-rental-management-system/service"
)

func main() {
	seedOnly := flag.Bool("seed", false, "populate demo data and exit")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	config.LoadEnv()
	application := app.MustNew()
	defer application.Close()

	if *seedOnly {
		cfg := application.Config
		users := service.NewUserService(application.Store)
		books := service.NewBookService(application.Store, application.Catalog)
		rentals := service.NewRentalService(application.Store, application.Catalog, cfg.LoanPeriod, cfg.LateFeePerDay)
		if err := seed.Run(context.Background(), application.Store, users, books, rentals); err != nil {
			log.Fatal("seed: ", err)
		}
		return
	}

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	port := application.Config.Port
	log.Printf("listening on :%s", port)
	_ = r.Run(":" + port)
}
