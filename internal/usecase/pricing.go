package usecase

import (
	"context"
	"log"
	"sort"
	"time"

	"comicshelf/internal/currency"
	"comicshelf/internal/entity"
	"comicshelf/internal/stats"
)

const outboundCallTimeout = 20 * time.Second

// PriceUpdate summarizes one run of the pricing pipeline.
type PriceUpdate struct {
	Comic         entity.Comic
	Tiers         entity.PriceTiers
	ListingsFound int
	// NoData is set when no completed listings were found; the comic
	// record is left untouched in that case.
	NoData bool
}

// PricingService runs the market-value aggregation pipeline:
// lookup comic -> fetch completed listings -> percentile tiers ->
// currency conversion -> persist.
type PricingService struct {
	comics   ComicRepository
	listings ListingProvider
	rates    currency.RateProvider
	locks    *keyedLocks
}

func NewPricingService(comics ComicRepository, listings ListingProvider, rates currency.RateProvider) *PricingService {
	return &PricingService{
		comics:   comics,
		listings: listings,
		rates:    rates,
		locks:    newKeyedLocks(),
	}
}

// UpdatePrices recomputes and stores the price tiers for one comic.
//
// Marketplace fetch failures are deliberately folded into the "no data"
// outcome: the caller cannot act differently on "API down" versus "no
// comparable sales", so both skip the price update. A missing credential
// is still surfaced as a ConfigError.
func (s *PricingService) UpdatePrices(ctx context.Context, comicID string) (PriceUpdate, error) {
	unlock := s.locks.acquire(comicID)
	defer unlock()

	comic, err := s.comics.GetByID(ctx, comicID)
	if err != nil {
		return PriceUpdate{}, err
	}

	if !s.listings.Available() {
		return PriceUpdate{}, &ConfigError{Missing: "EBAY_APP_ID"}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, outboundCallTimeout)
	defer cancel()

	samples, err := s.listings.CompletedListings(fetchCtx, comic.Title, comic.Issue)
	if err != nil {
		log.Printf("listing fetch failed, treating as no data: comic_id=%s error=%v", comicID, err)
		samples = nil
	}
	if len(samples) == 0 {
		return PriceUpdate{Comic: comic, NoData: true}, nil
	}

	prices := make([]float64, 0, len(samples))
	for _, sample := range samples {
		prices = append(prices, sample.Price)
	}
	sort.Float64s(prices)

	usd := entity.PriceTiers{
		Low:    stats.Percentile(prices, 25),
		Medium: stats.Percentile(prices, 50),
		High:   stats.Percentile(prices, 75),
	}
	gbp := currency.Convert(usd, s.rates.Rate("USD", "GBP"))

	if err := s.comics.UpdateMarketValue(ctx, comicID, gbp); err != nil {
		return PriceUpdate{}, &PersistError{Op: "update comic prices", Err: err}
	}

	return PriceUpdate{
		Comic:         comic,
		Tiers:         gbp,
		ListingsFound: len(samples),
	}, nil
}
