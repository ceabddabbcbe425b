package currency

import (
	"testing"

	"comicshelf/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestConvert_GBPExample(t *testing.T) {
	usd := entity.PriceTiers{Low: 17.5, Medium: 25, High: 32.5}

	gbp := Convert(usd, DefaultRates().Rate("USD", "GBP"))

	assert.Equal(t, entity.PriceTiers{Low: 13.83, Medium: 19.75, High: 25.68}, gbp)
}

func TestConvert_IdentityRateIsIdempotent(t *testing.T) {
	tiers := entity.PriceTiers{Low: 13.83, Medium: 19.75, High: 25.68}

	assert.Equal(t, tiers, Convert(tiers, 1.0))
}

func TestConvert_RoundsHalfUp(t *testing.T) {
	// exact half-cents round up, anything below rounds down
	got := Convert(entity.PriceTiers{Low: 2.375, Medium: 10.004, High: 0.125}, 1.0)

	assert.Equal(t, 2.38, got.Low)
	assert.Equal(t, 10.00, got.Medium)
	assert.Equal(t, 0.13, got.High)
}

func TestStaticRates(t *testing.T) {
	rates := StaticRates{"USD/GBP": 0.79}

	assert.Equal(t, 0.79, rates.Rate("USD", "GBP"))
	assert.Equal(t, 1.0, rates.Rate("USD", "USD"))
	assert.Equal(t, 0.0, rates.Rate("USD", "JPY"))
}
