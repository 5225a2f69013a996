package handler

import (
	"time"

	m "metalfolio/internal/model"
)

/***************************************************************** request ****************************************************************/

type AddAssetReq struct {
	Name      string  `json:"name" validate:"required"`
	Metal     string  `json:"metal_type" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
	Unit      string  `json:"unit" validate:"required"`
	SourceRef string  `json:"reference" validate:"required"`
	Category  string  `json:"category" validate:"required"`

	// Investment assets only.
	PurchasePrice float64 `json:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date"`
}

type UpdateAssetReq struct {
	ID string `json:"id" validate:"required"`
	AddAssetReq
}

type DeleteAssetReq struct {
	ID       string `json:"id" validate:"required"`
	Category string `json:"category" validate:"required"`
}

/***************************************************************** response ****************************************************************/

type pricesResponse struct {
	RefreshedAt *time.Time               `json:"refreshed_at,omitempty"`
	Quotes      map[string]*m.PriceQuote `json:"quotes"`
}

type sourceResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Metal   m.Metal `json:"metal_type"`
	Product string  `json:"product"`
}
