package handler

import (
	"context"
	"time"

	m "metalfolio/internal/model"
	"metalfolio/scrape"

	"github.com/go-playground/validator/v10"
)

type AssetRetriever interface {
	RetrieveAssets(category m.Category) ([]m.Asset, error)
}

type AssetWriter interface {
	AddAsset(asset m.Asset) error
	UpdateAsset(asset m.Asset) error
	DeleteAsset(category m.Category, id string) error
}

type PriceRefresher interface {
	RefreshPrices(ctx context.Context) map[string]*m.PriceQuote
	Quotes() map[string]*m.PriceQuote
	RefreshedAt() time.Time
}

type Valuer interface {
	Valuations() []m.Valuation
	Summary(vals []m.Valuation) m.PortfolioSummary
}

type SourceLister interface {
	SourceIDs() []string
}

type PriceFetcher interface {
	FetchPrice(ctx context.Context, sourceID string) (*m.PriceQuote, error)
}

type SourceDescriber interface {
	SourceLister
	SourceConfigs() map[string]scrape.SourceConfig
}

var validate = validator.New()

func validCheck(param any) error {
	return validate.Struct(param)
}
