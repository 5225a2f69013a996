package scrape

import (
	"context"
	"net/http"
	"strings"

	m "metalfolio/internal/model"

	"github.com/PuerkitoBio/goquery"
)

// Bảo Tín Mạnh Hải (baotinmanhhai.vn). Product names sit in the first
// table column with the buy price, already in VND per chỉ, next to them.
type btmhSource struct {
	conf   SourceConfig
	client *http.Client
}

func newBtmhSource(conf SourceConfig, client *http.Client) source {
	return &btmhSource{conf: conf, client: client}
}

func (b *btmhSource) fetch(ctx context.Context) (*m.PriceQuote, error) {
	doc, err := fetchDocument(ctx, b.client, b.conf.URL)
	if err != nil {
		return nil, err
	}
	return b.extract(doc)
}

func (b *btmhSource) extract(doc *goquery.Document) (*m.PriceQuote, error) {

	var quote *m.PriceQuote
	eachTableRow(doc, func(cells []string) bool {
		if len(cells) < 2 {
			return false
		}
		// The blister-packed ring is listed under its Kim Gia Bảo line.
		if !strings.Contains(cells[0], "Kim Gia Bảo") || !strings.Contains(cells[0], "24K") {
			return false
		}
		price, err := parsePrice(cells[1])
		if err != nil {
			return false
		}
		quote = b.conf.quote(price)
		return true
	})

	if quote == nil {
		return nil, errLayoutChanged
	}
	return quote, nil
}
