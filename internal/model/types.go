package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset is one gold or silver holding. Investment assets additionally
// record what was paid for the position and when.
type Asset struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Metal     Metal           `json:"metal_type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      Unit            `json:"unit"`
	SourceRef string          `json:"reference"`
	Category  Category        `json:"category"`

	// PurchasePrice is the total VND paid for the position, not a
	// per-unit price. Set only for investment assets.
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	PurchaseDate  *Date            `json:"purchase_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func NewAssetID() string {
	return uuid.NewString()
}

// Validate rejects records that would poison downstream valuation. Used
// both on user entry and on every record read back from disk.
func (a Asset) Validate() error {
	switch {
	case a.ID == "":
		return errors.New("asset id is empty")
	case a.Name == "":
		return errors.New("asset name is empty")
	case !a.Metal.Valid():
		return &ConfigError{Field: "metal", Value: string(a.Metal)}
	case !a.Unit.Valid():
		return &ConfigError{Field: "unit", Value: string(a.Unit)}
	case !a.Category.Valid():
		return &ConfigError{Field: "category", Value: string(a.Category)}
	case a.SourceRef == "":
		return errors.New("asset reference is empty")
	case !a.Quantity.IsPositive():
		return errors.New("asset quantity must be positive")
	}

	if a.Category == Investment {
		if a.PurchasePrice == nil || !a.PurchasePrice.IsPositive() {
			return errors.New("investment asset needs a positive purchase price")
		}
		if a.PurchaseDate == nil || a.PurchaseDate.IsZero() {
			return errors.New("investment asset needs a purchase date")
		}
	}
	return nil
}

// PriceQuote is one retailer's current buy-back price. Quotes are
// ephemeral: fetched on demand, held in memory for the session, never
// persisted.
type PriceQuote struct {
	SourceID   string          `json:"source_id"`
	SourceName string          `json:"source_name"`
	Metal      Metal           `json:"metal_type"`
	Product    string          `json:"product"`
	BuyPrice   decimal.Decimal `json:"buy_price"`
	PriceUnit  Unit            `json:"price_unit"`
	FetchedAt  time.Time       `json:"fetched_at"`
}

// Valuation is the derived worth of one asset at current quotes. The
// pointer fields are nil when the asset's source has no quote; the
// gain/loss fields are set only for investment assets.
type Valuation struct {
	AssetID   string          `json:"asset_id"`
	AssetName string          `json:"asset_name"`
	Metal     Metal           `json:"metal_type"`
	Category  Category        `json:"category"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      Unit            `json:"unit"`
	SourceRef string          `json:"reference"`

	CurrentPrice *decimal.Decimal `json:"current_price,omitempty"`
	CurrentValue *decimal.Decimal `json:"current_value,omitempty"`

	PurchasePrice   *decimal.Decimal `json:"purchase_price,omitempty"`
	PurchaseDate    *Date            `json:"purchase_date,omitempty"`
	GainLoss        *decimal.Decimal `json:"gain_loss,omitempty"`
	GainLossPercent *decimal.Decimal `json:"gain_loss_percent,omitempty"`
	HoldingMonths   *int             `json:"holding_months,omitempty"`
}

// Priced reports whether a quote was available for the asset.
func (v Valuation) Priced() bool {
	return v.CurrentValue != nil
}

// PortfolioSummary aggregates valuations across the whole portfolio.
type PortfolioSummary struct {
	TotalExistingValue   decimal.Decimal `json:"total_existing_value"`
	TotalInvestmentValue decimal.Decimal `json:"total_investment_value"`
	TotalValue           decimal.Decimal `json:"total_value"`
	TotalGoldValue       decimal.Decimal `json:"total_gold_value"`
	TotalSilverValue     decimal.Decimal `json:"total_silver_value"`
	TotalGainLoss        decimal.Decimal `json:"total_gain_loss"`
	TotalGainLossPercent decimal.Decimal `json:"total_gain_loss_percent"`
	ExistingCount        int             `json:"existing_count"`
	InvestmentCount      int             `json:"investment_count"`
	UnpricedCount        int             `json:"unpriced_count"`
	RefreshedAt          time.Time       `json:"refreshed_at"`
}
