package scrape

import (
	"context"
	"net/http"
	"strings"

	m "metalfolio/internal/model"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

// Phú Quý silver has no scrapeable price page of its own, so the 1kg
// bar price is read off the BTMC silver table, which lists it as "BẠC
// MIẾNG PHÚ QUÝ Ag 999 1 KG". The configured URL therefore points at
// btmc.vn, not phuquy.com.vn.
type phuQuySource struct {
	conf   SourceConfig
	client *http.Client
}

func newPhuQuySource(conf SourceConfig, client *http.Client) source {
	return &phuQuySource{conf: conf, client: client}
}

func (p *phuQuySource) fetch(ctx context.Context) (*m.PriceQuote, error) {
	doc, err := fetchDocument(ctx, p.client, p.conf.URL)
	if err != nil {
		return nil, err
	}
	return p.extract(doc)
}

func (p *phuQuySource) extract(doc *goquery.Document) (*m.PriceQuote, error) {

	var quote *m.PriceQuote
	eachTableRow(doc, func(cells []string) bool {
		if len(cells) < 3 {
			return false
		}
		product := strings.ToUpper(cells[0])
		if !strings.Contains(product, "PHÚ QUÝ") || !strings.Contains(product, "1 KG") {
			return false
		}
		raw, err := parsePrice(cells[1])
		if err != nil {
			return false
		}
		quote = p.conf.quote(scaleSilverKg(raw))
		return true
	})

	if quote == nil {
		return nil, errLayoutChanged
	}
	return quote, nil
}

// scaleSilverKg normalizes the published number to VND per kg. The BTMC
// board sometimes lists the kg bar in units of 10,000 or 100,000 VND; a
// real 1kg silver price is well above 10,000,000 VND.
func scaleSilverKg(raw decimal.Decimal) decimal.Decimal {
	switch {
	case raw.LessThan(decimal.NewFromInt(1_000_000)):
		return raw.Mul(decimal.NewFromInt(100))
	case raw.LessThan(decimal.NewFromInt(10_000_000)):
		return raw.Mul(decimal.NewFromInt(10))
	default:
		return raw
	}
}
