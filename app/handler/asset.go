package handler

import (
	"fmt"
	"time"

	m "metalfolio/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type AssetHandler struct {
	r AssetRetriever
	w AssetWriter
	s SourceLister
}

func NewAssetHandler(r AssetRetriever, w AssetWriter, s SourceLister) *AssetHandler {
	return &AssetHandler{
		r: r,
		w: w,
		s: s,
	}
}

func (h *AssetHandler) InitRoute(app *fiber.App) {

	router := app.Group("/assets")

	router.Get("", h.Assets)
	router.Get("/:category", h.AssetsByCategory)
	router.Post("/", h.AddAsset)
	router.Put("/", h.UpdateAsset)
	router.Delete("/", h.DeleteAsset)
}

// Assets lists every asset grouped by category. A category file that
// fails to load renders as an empty list so the healthy one still shows.
func (h *AssetHandler) Assets(c *fiber.Ctx) error {

	rtn := make(map[string][]m.Asset, len(m.CategoryList()))

	for _, category := range m.CategoryList() {
		assets, err := h.r.RetrieveAssets(category)
		if err != nil {
			log.Warn().Err(err).Str("category", string(category)).Msg("asset load failed, substituting empty list")
			assets = []m.Asset{}
		}
		rtn[string(category)] = assets
	}

	return c.Status(fiber.StatusOK).JSON(rtn)
}

func (h *AssetHandler) AssetsByCategory(c *fiber.Ctx) error {

	category, err := m.ToCategory(c.Params("category"))
	if err != nil {
		return fmt.Errorf("error while converting category. %w", err)
	}

	assets, err := h.r.RetrieveAssets(category)
	if err != nil {
		return fmt.Errorf("error while retrieving %s assets. %w", category, err)
	}

	return c.Status(fiber.StatusOK).JSON(assets)
}

func (h *AssetHandler) AddAsset(c *fiber.Ctx) error {

	var param AddAssetReq
	err := c.BodyParser(&param)
	if err != nil {
		return fmt.Errorf("error while parsing request body. %w", err)
	}

	err = validCheck(&param)
	if err != nil {
		return fmt.Errorf("error while validating request body. %w", err)
	}

	asset, err := h.toAsset(param)
	if err != nil {
		return err
	}
	asset.ID = m.NewAssetID()
	asset.CreatedAt = time.Now()

	err = h.w.AddAsset(asset)
	if err != nil {
		return fmt.Errorf("error while saving asset. %w", err)
	}

	return c.Status(fiber.StatusOK).JSON(asset)
}

func (h *AssetHandler) UpdateAsset(c *fiber.Ctx) error {

	var param UpdateAssetReq
	err := c.BodyParser(&param)
	if err != nil {
		return fmt.Errorf("error while parsing request body. %w", err)
	}

	err = validCheck(&param)
	if err != nil {
		return fmt.Errorf("error while validating request body. %w", err)
	}

	asset, err := h.toAsset(param.AddAssetReq)
	if err != nil {
		return err
	}
	asset.ID = param.ID

	err = h.w.UpdateAsset(asset)
	if err != nil {
		return fmt.Errorf("error while updating asset. %w", err)
	}

	return c.Status(fiber.StatusOK).SendString("asset updated")
}

func (h *AssetHandler) DeleteAsset(c *fiber.Ctx) error {

	var param DeleteAssetReq
	err := c.BodyParser(&param)
	if err != nil {
		return fmt.Errorf("error while parsing request body. %w", err)
	}

	err = validCheck(&param)
	if err != nil {
		return fmt.Errorf("error while validating request body. %w", err)
	}

	category, err := m.ToCategory(param.Category)
	if err != nil {
		return fmt.Errorf("error while converting category. %w", err)
	}

	err = h.w.DeleteAsset(category, param.ID)
	if err != nil {
		return fmt.Errorf("error while deleting asset. %w", err)
	}

	return c.Status(fiber.StatusOK).SendString("asset deleted")
}

// toAsset converts a validated request into a model asset. The source
// reference must name a configured retailer or valuation could never
// price the asset.
func (h *AssetHandler) toAsset(param AddAssetReq) (m.Asset, error) {

	metal, err := m.ToMetal(param.Metal)
	if err != nil {
		return m.Asset{}, fmt.Errorf("error while converting metal type. %w", err)
	}
	unit, err := m.ToUnit(param.Unit)
	if err != nil {
		return m.Asset{}, fmt.Errorf("error while converting unit. %w", err)
	}
	category, err := m.ToCategory(param.Category)
	if err != nil {
		return m.Asset{}, fmt.Errorf("error while converting category. %w", err)
	}

	if !h.knownSource(param.SourceRef) {
		return m.Asset{}, &m.ConfigError{Field: "reference", Value: param.SourceRef}
	}

	asset := m.Asset{
		Name:      param.Name,
		Metal:     metal,
		Quantity:  decimal.NewFromFloat(param.Quantity),
		Unit:      unit,
		SourceRef: param.SourceRef,
		Category:  category,
	}

	if category == m.Investment {
		if param.PurchasePrice <= 0 {
			return m.Asset{}, &m.ConfigError{Field: "purchase_price", Value: fmt.Sprint(param.PurchasePrice)}
		}
		date, err := m.ParseDate(param.PurchaseDate)
		if err != nil {
			return m.Asset{}, fmt.Errorf("error while parsing purchase date. %w", err)
		}
		price := decimal.NewFromFloat(param.PurchasePrice)
		asset.PurchasePrice = &price
		asset.PurchaseDate = &date
	}

	return asset, nil
}

func (h *AssetHandler) knownSource(ref string) bool {
	for _, id := range h.s.SourceIDs() {
		if id == ref {
			return true
		}
	}
	return false
}
