package metalfolio

import (
	"context"

	m "metalfolio/internal/model"
)

type PollerMock struct {
	quotes map[string]*m.PriceQuote
}

func NewPollerMock(quotes map[string]*m.PriceQuote) *PollerMock {
	return &PollerMock{quotes: quotes}
}

func (mock *PollerMock) FetchAll(_ context.Context) map[string]*m.PriceQuote {
	cp := make(map[string]*m.PriceQuote, len(mock.quotes))
	for id, q := range mock.quotes {
		cp[id] = q
	}
	return cp
}

func (mock *PollerMock) FetchPrice(_ context.Context, sourceID string) (*m.PriceQuote, error) {
	quote, ok := mock.quotes[sourceID]
	if !ok {
		return nil, &m.ConfigError{Field: "source", Value: sourceID}
	}
	if quote == nil {
		return nil, &m.ScrapeError{Source: sourceID, Err: context.DeadlineExceeded}
	}
	return quote, nil
}

func (mock *PollerMock) SourceIDs() []string {
	ids := make([]string, 0, len(mock.quotes))
	for id := range mock.quotes {
		ids = append(ids, id)
	}
	return ids
}
