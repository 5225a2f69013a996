package scrape

import (
	"context"
	"net/http"
	"strings"

	m "metalfolio/internal/model"

	"github.com/PuerkitoBio/goquery"
)

// Ancarat (giabac.ancarat.com). The price board is rendered client-side,
// so the page goes through headless chrome first. The 1 lượng silver
// dragon bar row carries the buy price in its third cell, in VND.
type ancaratSource struct {
	conf SourceConfig
}

func newAncaratSource(conf SourceConfig, _ *http.Client) source {
	return &ancaratSource{conf: conf}
}

func (a *ancaratSource) fetch(ctx context.Context) (*m.PriceQuote, error) {
	doc, err := renderDocument(ctx, a.conf.URL)
	if err != nil {
		return nil, err
	}
	return a.extract(doc)
}

func (a *ancaratSource) extract(doc *goquery.Document) (*m.PriceQuote, error) {

	var quote *m.PriceQuote
	eachTableRow(doc, func(cells []string) bool {
		if len(cells) < 3 {
			return false
		}
		if !strings.Contains(cells[0], "Ngân Long Quảng Tiến") || !strings.Contains(cells[0], "1 lượng") {
			return false
		}
		price, err := parsePrice(cells[2])
		if err != nil {
			return false
		}
		quote = a.conf.quote(price)
		return true
	})

	if quote == nil {
		return nil, errLayoutChanged
	}
	return quote, nil
}
