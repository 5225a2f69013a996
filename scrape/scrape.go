package scrape

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	m "metalfolio/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SourceConfig describes one retailer: where its price page lives and
// how its published price maps onto the uniform quote model.
type SourceConfig struct {
	ID      string
	Name    string
	URL     string
	Metal   m.Metal
	Product string
	// PriceUnit is the weight unit the site quotes per.
	PriceUnit m.Unit
	// Multiplier scales the raw number on the page into VND; several
	// sites publish prices in units of 1,000 VND.
	Multiplier int64
}

func (c SourceConfig) quote(raw decimal.Decimal) *m.PriceQuote {
	return &m.PriceQuote{
		SourceID:   c.ID,
		SourceName: c.Name,
		Metal:      c.Metal,
		Product:    c.Product,
		BuyPrice:   raw.Mul(decimal.NewFromInt(c.Multiplier)),
		PriceUnit:  c.PriceUnit,
		FetchedAt:  time.Now(),
	}
}

// source is the one capability every retailer implements: fetch the
// current buy price. Each retailer has its own page layout, so only the
// output contract is shared.
type source interface {
	fetch(ctx context.Context) (*m.PriceQuote, error)
}

// builders maps a source id to its concrete implementation. Adding a
// retailer means adding one file with a constructor and one entry here.
var builders = map[string]func(SourceConfig, *http.Client) source{
	"btmc":    newBtmcSource,
	"btmh":    newBtmhSource,
	"phuquy":  newPhuQuySource,
	"phutai":  newPhuTaiSource,
	"ancarat": newAncaratSource,
}

type Scraper struct {
	sources map[string]source
	confs   map[string]SourceConfig
	timeout time.Duration
	lg      zerolog.Logger
}

type Option func(*Scraper) error

func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) error {
		if d <= 0 {
			return fmt.Errorf("non-positive scrape timeout: %v", d)
		}
		s.timeout = d
		return nil
	}
}

func NewScraper(confs []SourceConfig, options ...Option) (*Scraper, error) {

	s := &Scraper{
		sources: make(map[string]source, len(confs)),
		confs:   make(map[string]SourceConfig, len(confs)),
		timeout: 8 * time.Second,
		lg:      zerolog.New(os.Stdout).With().Str("Module", "Scraper").Timestamp().Logger(),
	}

	client := &http.Client{}
	for _, conf := range confs {
		build, ok := builders[conf.ID]
		if !ok {
			return nil, &m.ConfigError{Field: "source", Value: conf.ID}
		}
		s.sources[conf.ID] = build(conf, client)
		s.confs[conf.ID] = conf
	}

	for _, opt := range options {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to create Scraper %w", err)
		}
	}
	return s, nil
}

// SourceIDs lists the configured retailers in stable order.
func (s *Scraper) SourceIDs() []string {
	ids := make([]string, 0, len(s.sources))
	for id := range s.sources {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SourceConfigs returns the retailer table keyed by source id.
func (s *Scraper) SourceConfigs() map[string]SourceConfig {
	confs := make(map[string]SourceConfig, len(s.confs))
	for id, c := range s.confs {
		confs[id] = c
	}
	return confs
}

// FetchPrice fetches the current buy price from a single retailer.
func (s *Scraper) FetchPrice(ctx context.Context, sourceID string) (*m.PriceQuote, error) {
	s.lg.Info().Str("source", sourceID).Msg("Starting FetchPrice")

	src, ok := s.sources[sourceID]
	if !ok {
		return nil, &m.ConfigError{Field: "source", Value: sourceID}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	quote, err := src.fetch(ctx)
	if err != nil {
		return nil, &m.ScrapeError{Source: sourceID, Err: err}
	}
	return quote, nil
}

// FetchAll fetches every configured retailer concurrently, one worker
// per source, each with its own timeout. A failed source yields a nil
// entry; it never aborts the others.
func (s *Scraper) FetchAll(ctx context.Context) map[string]*m.PriceQuote {
	s.lg.Info().Int("sources", len(s.sources)).Msg("Starting FetchAll")

	quotes := make(map[string]*m.PriceQuote, len(s.sources))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for id := range s.sources {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()

			quote, err := s.FetchPrice(ctx, id)
			if err != nil {
				s.lg.Warn().Err(err).Str("source", id).Msg("source unavailable")
				quote = nil
			}

			mu.Lock()
			quotes[id] = quote
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	return quotes
}
