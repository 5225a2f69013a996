package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type PriceHandler struct {
	r PriceRefresher
	f PriceFetcher
}

func NewPriceHandler(r PriceRefresher, f PriceFetcher) *PriceHandler {
	return &PriceHandler{
		r: r,
		f: f,
	}
}

func (h *PriceHandler) InitRoute(app *fiber.App) {

	router := app.Group("/prices")

	router.Get("", h.Prices)
	router.Post("/refresh", h.RefreshPrices)
	router.Get("/:source", h.Price)
}

// Prices returns the quotes held from the last refresh. It never
// reaches out to the retailers.
func (h *PriceHandler) Prices(c *fiber.Ctx) error {

	rtn := pricesResponse{Quotes: h.r.Quotes()}
	if at := h.r.RefreshedAt(); !at.IsZero() {
		rtn.RefreshedAt = &at
	}

	return c.Status(fiber.StatusOK).JSON(rtn)
}

func (h *PriceHandler) RefreshPrices(c *fiber.Ctx) error {

	quotes := h.r.RefreshPrices(c.UserContext())

	rtn := pricesResponse{Quotes: quotes}
	if at := h.r.RefreshedAt(); !at.IsZero() {
		rtn.RefreshedAt = &at
	}

	return c.Status(fiber.StatusOK).JSON(rtn)
}

// Price fetches one retailer's quote on demand, bypassing the session
// cache.
func (h *PriceHandler) Price(c *fiber.Ctx) error {

	quote, err := h.f.FetchPrice(c.UserContext(), c.Params("source"))
	if err != nil {
		return fmt.Errorf("error while fetching price. %w", err)
	}

	return c.Status(fiber.StatusOK).JSON(quote)
}
