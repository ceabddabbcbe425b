package jobs

import (
	"context"
	"log"
	"time"

	"comicshelf/internal/usecase"

	"github.com/robfig/cron/v3"
)

// PriceUpdater runs the pricing pipeline for one comic.
type PriceUpdater interface {
	UpdatePrices(ctx context.Context, comicID string) (usecase.PriceUpdate, error)
}

const (
	// Prices older than this are picked up by the next sweep.
	staleAfter = 7 * 24 * time.Hour

	// One sweep touches at most this many comics; the marketplace
	// client's rate limiter spreads the calls out.
	batchSize = 50
)

// PriceRefresher periodically re-runs the pricing pipeline for comics
// whose stored prices have gone stale.
type PriceRefresher struct {
	comics  usecase.ComicRepository
	pricing PriceUpdater
	cron    *cron.Cron
}

func NewPriceRefresher(comics usecase.ComicRepository, pricing PriceUpdater) *PriceRefresher {
	return &PriceRefresher{
		comics:  comics,
		pricing: pricing,
		cron:    cron.New(),
	}
}

// Start schedules sweeps according to the cron spec (e.g. "0 3 * * *")
// and begins running them in the background.
func (p *PriceRefresher) Start(spec string) error {
	if _, err := p.cron.AddFunc(spec, p.sweep); err != nil {
		return err
	}
	p.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (p *PriceRefresher) Stop() {
	<-p.cron.Stop().Done()
}

func (p *PriceRefresher) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-staleAfter)
	comics, err := p.comics.ListStalePrices(ctx, cutoff, batchSize)
	if err != nil {
		log.Printf("price refresh sweep failed to list stale comics: error=%v", err)
		return
	}
	if len(comics) == 0 {
		return
	}

	log.Printf("price refresh sweep starting: stale=%d", len(comics))

	var updated, noData int
	for _, comic := range comics {
		result, err := p.pricing.UpdatePrices(ctx, comic.ID)
		if err != nil {
			log.Printf("price refresh failed: comic_id=%s error=%v", comic.ID, err)
			continue
		}
		if result.NoData {
			noData++
			continue
		}
		updated++
	}

	log.Printf("price refresh sweep done: updated=%d no_data=%d", updated, noData)
}
