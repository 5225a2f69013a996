package handler

import (
	"github.com/gofiber/fiber/v2"
)

type PortfolioHandler struct {
	v Valuer
}

func NewPortfolioHandler(v Valuer) *PortfolioHandler {
	return &PortfolioHandler{
		v: v,
	}
}

func (h *PortfolioHandler) InitRoute(app *fiber.App) {
	app.Get("/valuations", h.Valuations)
	app.Get("/portfolio/summary", h.Summary)
}

func (h *PortfolioHandler) Valuations(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.v.Valuations())
}

func (h *PortfolioHandler) Summary(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.v.Summary(h.v.Valuations()))
}
