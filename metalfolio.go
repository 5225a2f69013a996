package metalfolio

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	m "metalfolio/internal/model"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Metalfolio is the price service: it orchestrates the per-retailer
// scrapers, keeps the quotes of the current session in memory and
// derives valuations and portfolio totals from them. Quotes are never
// persisted; a new session starts empty until the user refreshes.
type Metalfolio struct {
	stg    Storage
	poller Poller
	ch     chan<- string

	mu          sync.RWMutex
	quotes      map[string]*m.PriceQuote
	refreshedAt time.Time

	now func() time.Time
	lg  zerolog.Logger
}

type Config struct {
	Storage Storage
	Poller  Poller
	// Channel receives human-readable refresh reports; nil disables them.
	Channel chan<- string
}

func NewMetalfolio(conf Config) *Metalfolio {
	return &Metalfolio{
		stg:    conf.Storage,
		poller: conf.Poller,
		ch:     conf.Channel,
		quotes: make(map[string]*m.PriceQuote),
		now:    time.Now,
		lg:     zerolog.New(os.Stdout).With().Str("Module", "Metalfolio").Timestamp().Logger(),
	}
}

// RefreshPrices fetches every configured source and replaces the session
// quotes. Sources that failed map to nil and stay unavailable until the
// next user-triggered refresh; there are no automatic retries.
func (t *Metalfolio) RefreshPrices(ctx context.Context) map[string]*m.PriceQuote {
	t.lg.Info().Msg("Starting RefreshPrices")

	quotes := t.poller.FetchAll(ctx)

	t.mu.Lock()
	t.quotes = quotes
	t.refreshedAt = t.now()
	t.mu.Unlock()

	available := lo.CountBy(lo.Values(quotes), func(q *m.PriceQuote) bool { return q != nil })
	t.lg.Info().Int("available", available).Int("total", len(quotes)).Msg("prices refreshed")

	if t.ch != nil {
		t.ch <- refreshReport(quotes)
	}

	return t.copyQuotes(quotes)
}

// Quotes returns the session quotes from the last refresh, nil entries
// included for sources that were unavailable.
func (t *Metalfolio) Quotes() map[string]*m.PriceQuote {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.copyQuotes(t.quotes)
}

func (t *Metalfolio) RefreshedAt() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.refreshedAt
}

func (t *Metalfolio) copyQuotes(quotes map[string]*m.PriceQuote) map[string]*m.PriceQuote {
	cp := make(map[string]*m.PriceQuote, len(quotes))
	for id, q := range quotes {
		cp[id] = q
	}
	return cp
}

// Valuation computes the current worth of one asset against a quote set.
// An asset whose source has no quote yields a valuation without a
// current value rather than an error; the dashboard renders it as
// "price unavailable".
func (t *Metalfolio) Valuation(asset m.Asset, quotes map[string]*m.PriceQuote) m.Valuation {

	val := m.Valuation{
		AssetID:       asset.ID,
		AssetName:     asset.Name,
		Metal:         asset.Metal,
		Category:      asset.Category,
		Quantity:      asset.Quantity,
		Unit:          asset.Unit,
		SourceRef:     asset.SourceRef,
		PurchasePrice: asset.PurchasePrice,
		PurchaseDate:  asset.PurchaseDate,
	}

	if asset.Category == m.Investment && asset.PurchaseDate != nil {
		months := asset.PurchaseDate.MonthsUntil(t.now())
		val.HoldingMonths = &months
	}

	quote := quotes[asset.SourceRef]
	if quote == nil {
		return val
	}

	price, err := m.ConvertPrice(quote.BuyPrice, quote.PriceUnit, asset.Unit)
	if err != nil {
		t.lg.Warn().Err(err).Str("asset", asset.ID).Msg("price unit conversion failed")
		return val
	}

	value := asset.Quantity.Mul(price)
	val.CurrentPrice = &price
	val.CurrentValue = &value

	if asset.Category == m.Investment && asset.PurchasePrice != nil {
		gain := value.Sub(*asset.PurchasePrice)
		percent := gain.Div(*asset.PurchasePrice).Mul(decimal.NewFromInt(100)).Round(2)
		val.GainLoss = &gain
		val.GainLossPercent = &percent
	}

	return val
}

// Valuations values the whole portfolio against the session quotes. A
// category file that fails to load is reported and replaced by an empty
// list; the rest of the portfolio still renders.
func (t *Metalfolio) Valuations() []m.Valuation {

	quotes := t.Quotes()
	vals := make([]m.Valuation, 0)

	for _, category := range m.CategoryList() {
		assets, err := t.stg.RetrieveAssets(category)
		if err != nil {
			t.lg.Warn().Err(err).Str("category", string(category)).Msg("portfolio load failed, substituting empty list")
			continue
		}
		for _, asset := range assets {
			vals = append(vals, t.Valuation(asset, quotes))
		}
	}

	return vals
}

// Summary aggregates valuations into portfolio totals. Unpriced assets
// contribute nothing to the totals but are counted.
func (t *Metalfolio) Summary(vals []m.Valuation) m.PortfolioSummary {

	sumWhere := func(pred func(m.Valuation) bool) decimal.Decimal {
		return lo.Reduce(vals, func(acc decimal.Decimal, v m.Valuation, _ int) decimal.Decimal {
			if v.CurrentValue == nil || !pred(v) {
				return acc
			}
			return acc.Add(*v.CurrentValue)
		}, decimal.Zero)
	}

	existing := sumWhere(func(v m.Valuation) bool { return v.Category == m.Existing })
	investment := sumWhere(func(v m.Valuation) bool { return v.Category == m.Investment })

	gain := lo.Reduce(vals, func(acc decimal.Decimal, v m.Valuation, _ int) decimal.Decimal {
		if v.GainLoss == nil {
			return acc
		}
		return acc.Add(*v.GainLoss)
	}, decimal.Zero)

	cost := lo.Reduce(vals, func(acc decimal.Decimal, v m.Valuation, _ int) decimal.Decimal {
		if v.Category != m.Investment || v.PurchasePrice == nil || v.CurrentValue == nil {
			return acc
		}
		return acc.Add(*v.PurchasePrice)
	}, decimal.Zero)

	gainPercent := decimal.Zero
	if cost.IsPositive() {
		gainPercent = gain.Div(cost).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return m.PortfolioSummary{
		TotalExistingValue:   existing,
		TotalInvestmentValue: investment,
		TotalValue:           existing.Add(investment),
		TotalGoldValue:       sumWhere(func(v m.Valuation) bool { return v.Metal == m.Gold }),
		TotalSilverValue:     sumWhere(func(v m.Valuation) bool { return v.Metal == m.Silver }),
		TotalGainLoss:        gain,
		TotalGainLossPercent: gainPercent,
		ExistingCount:        lo.CountBy(vals, func(v m.Valuation) bool { return v.Category == m.Existing }),
		InvestmentCount:      lo.CountBy(vals, func(v m.Valuation) bool { return v.Category == m.Investment }),
		UnpricedCount:        lo.CountBy(vals, func(v m.Valuation) bool { return !v.Priced() }),
		RefreshedAt:          t.RefreshedAt(),
	}
}

func refreshReport(quotes map[string]*m.PriceQuote) string {

	report := "Price refresh:"
	for id, q := range quotes {
		if q == nil {
			report += fmt.Sprintf("\n- %s: unavailable", id)
			continue
		}
		report += fmt.Sprintf("\n- %s: %s VND/%s", q.SourceName, q.BuyPrice.StringFixed(0), q.PriceUnit)
	}
	return report
}
