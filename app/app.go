package app

import (
	"fmt"

	"metalfolio"
	"metalfolio/app/handler"
	"metalfolio/app/middleware"
	"metalfolio/internal/db"
	"metalfolio/scrape"

	"github.com/gofiber/fiber/v2"
)

// Run wires the HTTP boundary consumed by the dashboard and blocks
// serving it.
func Run(port int, stg *db.Storage, svc *metalfolio.Metalfolio, scraper *scrape.Scraper) error {

	app := fiber.New()

	middleware.SetupMiddleware(app)

	handler.NewAssetHandler(stg, stg, scraper).InitRoute(app)
	handler.NewPriceHandler(svc, scraper).InitRoute(app)
	handler.NewPortfolioHandler(svc).InitRoute(app)
	handler.NewModelHandler(scraper).InitRoute(app)

	return app.Listen(fmt.Sprintf(":%d", port))
}
