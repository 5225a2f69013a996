package metalfolio

import (
	"context"

	m "metalfolio/internal/model"
)

type Storage interface {
	RetrieveAssets(category m.Category) ([]m.Asset, error)
	SaveAssets(category m.Category, assets []m.Asset) error
	AddAsset(asset m.Asset) error
	UpdateAsset(asset m.Asset) error
	DeleteAsset(category m.Category, id string) error
}

// Poller fetches current retailer quotes on demand.
type Poller interface {
	FetchAll(ctx context.Context) map[string]*m.PriceQuote
	FetchPrice(ctx context.Context, sourceID string) (*m.PriceQuote, error)
	SourceIDs() []string
}
