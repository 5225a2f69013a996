package scrape

import (
	"context"
	"net/http"
	"strings"

	m "metalfolio/internal/model"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

// Bảo Tín Minh Châu (btmc.vn). The homepage carries a price table where
// the plain gold ring row holds the buy price in its fourth cell,
// published in units of 1,000 VND per chỉ.
type btmcSource struct {
	conf   SourceConfig
	client *http.Client
}

func newBtmcSource(conf SourceConfig, client *http.Client) source {
	return &btmcSource{conf: conf, client: client}
}

func (b *btmcSource) fetch(ctx context.Context) (*m.PriceQuote, error) {
	doc, err := fetchDocument(ctx, b.client, b.conf.URL)
	if err != nil {
		return nil, err
	}
	return b.extract(doc)
}

func (b *btmcSource) extract(doc *goquery.Document) (*m.PriceQuote, error) {

	var quote *m.PriceQuote
	eachTableRow(doc, func(cells []string) bool {
		rowText := strings.ToUpper(strings.Join(cells, " "))
		if !strings.Contains(rowText, "NHẪN TRÒN TRƠN") || !strings.Contains(rowText, "BẢO TÍN MINH CHÂU") {
			return false
		}
		if len(cells) < 4 {
			return false
		}
		price, err := parsePrice(cells[3])
		if err != nil {
			return false
		}
		quote = b.conf.quote(price)
		return true
	})
	if quote != nil {
		return quote, nil
	}

	// Fallback: the table markup shifts occasionally. Take the first
	// price-looking cell after the product name in the same row.
	eachTableRow(doc, func(cells []string) bool {
		named := false
		for _, cell := range cells {
			upper := strings.ToUpper(cell)
			if strings.Contains(upper, "NHẪN TRÒN TRƠN") {
				named = true
				continue
			}
			if !named {
				continue
			}
			price, err := parsePrice(cell)
			// Sanity floor keeps purity markers like 999.9 out.
			if err == nil && price.GreaterThan(decimal.NewFromInt(10_000)) {
				quote = b.conf.quote(price)
				return true
			}
		}
		return false
	})
	if quote != nil {
		return quote, nil
	}

	return nil, errLayoutChanged
}
