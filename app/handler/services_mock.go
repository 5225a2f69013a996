package handler

import (
	"context"
	"fmt"
	"time"

	m "metalfolio/internal/model"
	"metalfolio/scrape"

	"github.com/shopspring/decimal"
)

/***************************** Asset ***********************************/

type AssetRetrieverMock struct {
	assets map[m.Category][]m.Asset
	err    error
	// failOn limits err to one category; empty means every category fails.
	failOn m.Category
}

func (mock *AssetRetrieverMock) RetrieveAssets(category m.Category) ([]m.Asset, error) {
	fmt.Println("RetrieveAssets Called")

	if mock.err != nil && (mock.failOn == "" || mock.failOn == category) {
		return nil, mock.err
	}
	return mock.assets[category], nil
}

type AssetWriterMock struct {
	saved   []m.Asset
	deleted []string
	err     error
}

func (mock *AssetWriterMock) AddAsset(asset m.Asset) error {
	fmt.Println("AddAsset Called")

	if mock.err != nil {
		return mock.err
	}
	mock.saved = append(mock.saved, asset)
	return nil
}

func (mock *AssetWriterMock) UpdateAsset(asset m.Asset) error {
	fmt.Println("UpdateAsset Called")

	if mock.err != nil {
		return mock.err
	}
	mock.saved = append(mock.saved, asset)
	return nil
}

func (mock *AssetWriterMock) DeleteAsset(category m.Category, id string) error {
	fmt.Println("DeleteAsset Called")

	if mock.err != nil {
		return mock.err
	}
	mock.deleted = append(mock.deleted, id)
	return nil
}

/***************************** Price ***********************************/

type PriceRefresherMock struct {
	quotes      map[string]*m.PriceQuote
	refreshedAt time.Time
}

func (mock *PriceRefresherMock) RefreshPrices(ctx context.Context) map[string]*m.PriceQuote {
	fmt.Println("RefreshPrices Called")

	mock.refreshedAt = time.Now()
	return mock.quotes
}

func (mock *PriceRefresherMock) Quotes() map[string]*m.PriceQuote {
	return mock.quotes
}

func (mock *PriceRefresherMock) RefreshedAt() time.Time {
	return mock.refreshedAt
}

type PriceFetcherMock struct {
	quote *m.PriceQuote
	err   error
}

func (mock *PriceFetcherMock) FetchPrice(ctx context.Context, sourceID string) (*m.PriceQuote, error) {
	fmt.Println("FetchPrice Called")

	if mock.err != nil {
		return nil, mock.err
	}
	if mock.quote == nil {
		return nil, &m.ConfigError{Field: "source", Value: sourceID}
	}
	return mock.quote, nil
}

/***************************** Portfolio ***********************************/

type ValuerMock struct {
	vals    []m.Valuation
	summary m.PortfolioSummary
}

func (mock *ValuerMock) Valuations() []m.Valuation {
	fmt.Println("Valuations Called")

	return mock.vals
}

func (mock *ValuerMock) Summary(vals []m.Valuation) m.PortfolioSummary {
	fmt.Println("Summary Called")

	return mock.summary
}

/***************************** Source ***********************************/

type SourceDescriberMock struct {
	ids []string
}

func (mock *SourceDescriberMock) SourceIDs() []string {
	return mock.ids
}

func (mock *SourceDescriberMock) SourceConfigs() map[string]scrape.SourceConfig {
	confs := make(map[string]scrape.SourceConfig, len(mock.ids))
	for _, id := range mock.ids {
		confs[id] = scrape.SourceConfig{
			ID:         id,
			Name:       id,
			Metal:      m.Gold,
			Product:    "ring",
			PriceUnit:  m.Chi,
			Multiplier: 1,
		}
	}
	return confs
}

func testQuote(sourceID string, price int64) *m.PriceQuote {
	return &m.PriceQuote{
		SourceID:   sourceID,
		SourceName: sourceID,
		Metal:      m.Gold,
		Product:    "ring",
		BuyPrice:   decimal.NewFromInt(price),
		PriceUnit:  m.Chi,
		FetchedAt:  time.Now(),
	}
}
