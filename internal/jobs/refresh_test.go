package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"comicshelf/internal/entity"
	"comicshelf/internal/usecase"
	"comicshelf/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type stubUpdater struct {
	calls   []string
	results map[string]usecase.PriceUpdate
	errs    map[string]error
}

func (s *stubUpdater) UpdatePrices(_ context.Context, comicID string) (usecase.PriceUpdate, error) {
	s.calls = append(s.calls, comicID)
	if err := s.errs[comicID]; err != nil {
		return usecase.PriceUpdate{}, err
	}
	return s.results[comicID], nil
}

func TestPriceRefresher_Sweep(t *testing.T) {
	stale := []entity.Comic{
		{ID: "c1", Title: "Amazing Spider-Man", Issue: "300"},
		{ID: "c2", Title: "The Incredible Hulk", Issue: "181"},
		{ID: "c3", Title: "Obscure Title", Issue: "1"},
	}

	t.Run("updates every stale comic and survives per-comic failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		comics := mocks.NewMockComicRepository(ctrl)

		comics.EXPECT().
			ListStalePrices(gomock.Any(), gomock.Any(), batchSize).
			DoAndReturn(func(_ context.Context, before time.Time, _ int) ([]entity.Comic, error) {
				assert.WithinDuration(t, time.Now().Add(-staleAfter), before, time.Minute)
				return stale, nil
			})

		updater := &stubUpdater{
			results: map[string]usecase.PriceUpdate{
				"c1": {ListingsFound: 12},
				"c3": {NoData: true},
			},
			errs: map[string]error{"c2": errors.New("connection refused")},
		}

		refresher := NewPriceRefresher(comics, updater)
		refresher.sweep()

		assert.Equal(t, []string{"c1", "c2", "c3"}, updater.calls)
	})

	t.Run("listing failure skips the sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		comics := mocks.NewMockComicRepository(ctrl)

		comics.EXPECT().
			ListStalePrices(gomock.Any(), gomock.Any(), batchSize).
			Return(nil, errors.New("connection refused"))

		updater := &stubUpdater{}
		refresher := NewPriceRefresher(comics, updater)
		refresher.sweep()

		assert.Empty(t, updater.calls)
	})

	t.Run("no stale comics is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		comics := mocks.NewMockComicRepository(ctrl)

		comics.EXPECT().
			ListStalePrices(gomock.Any(), gomock.Any(), batchSize).
			Return(nil, nil)

		updater := &stubUpdater{}
		refresher := NewPriceRefresher(comics, updater)
		refresher.sweep()

		assert.Empty(t, updater.calls)
	})
}

func TestPriceRefresher_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	comics := mocks.NewMockComicRepository(ctrl)

	refresher := NewPriceRefresher(comics, &stubUpdater{})

	assert.Error(t, refresher.Start("not a cron spec"))
	assert.NoError(t, refresher.Start("0 3 * * *"))
	refresher.Stop()
}
