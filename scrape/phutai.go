package scrape

import (
	"context"
	"net/http"
	"strings"

	m "metalfolio/internal/model"

	"github.com/PuerkitoBio/goquery"
)

// Phú Tài (vangphutai.vn). Plain ring 999.9 row, buy price in the second
// cell, published in units of 1,000 VND per chỉ.
type phuTaiSource struct {
	conf   SourceConfig
	client *http.Client
}

func newPhuTaiSource(conf SourceConfig, client *http.Client) source {
	return &phuTaiSource{conf: conf, client: client}
}

func (p *phuTaiSource) fetch(ctx context.Context) (*m.PriceQuote, error) {
	doc, err := fetchDocument(ctx, p.client, p.conf.URL)
	if err != nil {
		return nil, err
	}
	return p.extract(doc)
}

func (p *phuTaiSource) extract(doc *goquery.Document) (*m.PriceQuote, error) {

	var quote *m.PriceQuote
	eachTableRow(doc, func(cells []string) bool {
		if len(cells) < 2 {
			return false
		}
		if !strings.Contains(cells[0], "Nhẫn tròn trơn") || !strings.Contains(cells[0], "999.9") {
			return false
		}
		price, err := parsePrice(cells[1])
		if err != nil {
			return false
		}
		quote = p.conf.quote(price)
		return true
	})

	if quote == nil {
		return nil, errLayoutChanged
	}
	return quote, nil
}
