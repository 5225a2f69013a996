package handler

import (
	"metalfolio/internal/model"

	"github.com/gofiber/fiber/v2"
)

type ModelHandler struct {
	s SourceDescriber
}

func NewModelHandler(s SourceDescriber) *ModelHandler {
	return &ModelHandler{
		s: s,
	}
}

func (h *ModelHandler) InitRoute(app *fiber.App) {
	app.Get("/metals", h.GetMetals)
	app.Get("/units", h.GetUnits)
	app.Get("/categories", h.GetCategories)
	app.Get("/sources", h.GetSources)
}

func (h *ModelHandler) GetMetals(c *fiber.Ctx) error {
	return c.JSON(model.MetalList())
}

func (h *ModelHandler) GetUnits(c *fiber.Ctx) error {
	return c.JSON(model.UnitList())
}

func (h *ModelHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(model.CategoryList())
}

func (h *ModelHandler) GetSources(c *fiber.Ctx) error {

	confs := h.s.SourceConfigs()

	rtn := make([]sourceResponse, 0, len(confs))
	for _, id := range h.s.SourceIDs() {
		conf := confs[id]
		rtn = append(rtn, sourceResponse{
			ID:      conf.ID,
			Name:    conf.Name,
			Metal:   conf.Metal,
			Product: conf.Product,
		})
	}

	return c.JSON(rtn)
}
