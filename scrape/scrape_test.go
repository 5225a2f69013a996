package scrape

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	m "metalfolio/internal/model"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	assert.NoError(t, err)
	return d
}

func TestParsePrice(t *testing.T) {

	tests := []struct {
		in   string
		want int64
	}{
		{"15,550,000", 15_550_000},
		{"15.550.000", 15_550_000},
		{"15550", 15_550},
		{" 1.234.567 đ ", 1_234_567},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePrice(tt.in)
			assert.NoError(t, err)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), got.String())
		})
	}

	t.Run("no digits", func(t *testing.T) {
		_, err := parsePrice("Mua vào")
		assert.Error(t, err)
	})
}

func TestBtmcExtract(t *testing.T) {

	conf := SourceConfig{
		ID: "btmc", Name: "Bảo Tín Minh Châu",
		Metal: m.Gold, Product: "Nhẫn tròn trơn Bảo Tín Minh Châu",
		PriceUnit: m.Chi, Multiplier: 1000,
	}
	src := &btmcSource{conf: conf}

	t.Run("price row", func(t *testing.T) {
		html := `<table>
			<tr><td>VÀNG MIẾNG SJC</td><td>999.9</td><td>16.000</td><td>16.200</td></tr>
			<tr><td>NHẪN TRÒN TRƠN (Bảo Tín Minh Châu)</td><td>999.9</td><td>15.450</td><td>15.550</td></tr>
		</table>`

		quote, err := src.extract(doc(t, html))
		assert.NoError(t, err)
		assert.True(t, quote.BuyPrice.Equal(decimal.NewFromInt(15_550_000)), quote.BuyPrice.String())
		assert.Equal(t, m.Chi, quote.PriceUnit)
		assert.Equal(t, "btmc", quote.SourceID)
	})

	t.Run("fallback row shape", func(t *testing.T) {
		html := `<table>
			<tr><td>NHẪN TRÒN TRƠN</td><td>15.480</td></tr>
		</table>`

		quote, err := src.extract(doc(t, html))
		assert.NoError(t, err)
		assert.True(t, quote.BuyPrice.Equal(decimal.NewFromInt(15_480_000)), quote.BuyPrice.String())
	})

	t.Run("layout changed", func(t *testing.T) {
		_, err := src.extract(doc(t, `<table><tr><td>gì đó khác</td></tr></table>`))
		assert.ErrorIs(t, err, errLayoutChanged)
	})
}

func TestBtmhExtract(t *testing.T) {

	conf := SourceConfig{
		ID: "btmh", Name: "Bảo Tín Mạnh Hải",
		Metal: m.Gold, Product: "Nhẫn ép vỉ Vàng Rồng Thăng Long",
		PriceUnit: m.Chi, Multiplier: 1,
	}
	src := &btmhSource{conf: conf}

	html := `<table>
		<tr><td>Vàng miếng</td><td>16.100.000</td><td>16.250.000</td></tr>
		<tr><td>Nhẫn ép vỉ Kim Gia Bảo 24K</td><td>15.500.000</td><td>15.650.000</td></tr>
	</table>`

	quote, err := src.extract(doc(t, html))
	assert.NoError(t, err)
	assert.True(t, quote.BuyPrice.Equal(decimal.NewFromInt(15_500_000)), quote.BuyPrice.String())
}

func TestPhuTaiExtract(t *testing.T) {

	conf := SourceConfig{
		ID: "phutai", Name: "Phú Tài",
		Metal: m.Gold, Product: "Nhẫn tròn trơn 999.9",
		PriceUnit: m.Chi, Multiplier: 1000,
	}
	src := &phuTaiSource{conf: conf}

	html := `<table>
		<tr><td>Nhẫn tròn trơn 999.9</td><td>15.400</td><td>15.600</td></tr>
	</table>`

	quote, err := src.extract(doc(t, html))
	assert.NoError(t, err)
	assert.True(t, quote.BuyPrice.Equal(decimal.NewFromInt(15_400_000)), quote.BuyPrice.String())
}

func TestPhuQuyExtract(t *testing.T) {

	conf := SourceConfig{
		ID: "phuquy", Name: "Phú Quý",
		Metal: m.Silver, Product: "Bạc thỏi Phú Quý 999 1Kilo",
		PriceUnit: m.Kilogram, Multiplier: 1,
	}
	src := &phuQuySource{conf: conf}

	// The board lists the kg bar in units of 10,000 VND.
	html := `<table>
		<tr><td>BẠC MIẾNG PHÚ QUÝ Ag 999 1 KG</td><td>1.755</td><td>1.810</td></tr>
	</table>`

	quote, err := src.extract(doc(t, html))
	assert.NoError(t, err)
	assert.True(t, quote.BuyPrice.Equal(decimal.NewFromInt(17_550_000)), quote.BuyPrice.String())
	assert.Equal(t, m.Silver, quote.Metal)
}

func TestScaleSilverKg(t *testing.T) {
	assert.True(t, scaleSilverKg(decimal.NewFromInt(175_500)).Equal(decimal.NewFromInt(17_550_000)))
	assert.True(t, scaleSilverKg(decimal.NewFromInt(1_755_000)).Equal(decimal.NewFromInt(17_550_000)))
	assert.True(t, scaleSilverKg(decimal.NewFromInt(17_550_000)).Equal(decimal.NewFromInt(17_550_000)))
}

func TestAncaratExtract(t *testing.T) {

	conf := SourceConfig{
		ID: "ancarat", Name: "Ancarat",
		Metal: m.Silver, Product: "Ngân Long Quảng Tiến 999 - 1 lượng",
		PriceUnit: m.Luong, Multiplier: 1,
	}
	src := &ancaratSource{conf: conf}

	html := `<table>
		<tr><td>Ngân Long Quảng Tiến 999 - 1 lượng</td><td>1,350,000</td><td>1,290,000</td></tr>
	</table>`

	quote, err := src.extract(doc(t, html))
	assert.NoError(t, err)
	assert.True(t, quote.BuyPrice.Equal(decimal.NewFromInt(1_290_000)), quote.BuyPrice.String())
}

/***************************** FetchAll ***********************************/

type stubSource struct {
	quote *m.PriceQuote
	err   error
}

func (s stubSource) fetch(_ context.Context) (*m.PriceQuote, error) {
	return s.quote, s.err
}

func TestFetchAllIsolatesFailures(t *testing.T) {

	good := &m.PriceQuote{SourceID: "good", BuyPrice: decimal.NewFromInt(15_000_000), PriceUnit: m.Chi}

	s := &Scraper{
		sources: map[string]source{
			"good":   stubSource{quote: good},
			"broken": stubSource{err: errors.New("connection refused")},
			"stale":  stubSource{err: errLayoutChanged},
		},
		timeout: time.Second,
		lg:      zerolog.Nop(),
	}

	quotes := s.FetchAll(context.Background())

	assert.Len(t, quotes, 3)
	assert.Equal(t, good, quotes["good"])
	assert.Nil(t, quotes["broken"])
	assert.Nil(t, quotes["stale"])
}

func TestFetchPriceUnknownSource(t *testing.T) {

	s := &Scraper{sources: map[string]source{}, timeout: time.Second, lg: zerolog.Nop()}

	_, err := s.FetchPrice(context.Background(), "sjc")
	var ce *m.ConfigError
	assert.ErrorAs(t, err, &ce)
}

func TestFetchPriceWrapsScrapeError(t *testing.T) {

	s := &Scraper{
		sources: map[string]source{"btmc": stubSource{err: errors.New("timeout")}},
		timeout: time.Second,
		lg:      zerolog.Nop(),
	}

	_, err := s.FetchPrice(context.Background(), "btmc")
	var se *m.ScrapeError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, "btmc", se.Source)
}

func TestNewScraperUnknownSource(t *testing.T) {
	_, err := NewScraper([]SourceConfig{{ID: "sjc"}})
	var ce *m.ConfigError
	assert.ErrorAs(t, err, &ce)
}
