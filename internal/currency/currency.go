package currency

import (
	"math"

	"comicshelf/internal/entity"
)

// RateProvider resolves an exchange rate between two ISO currency codes.
// The default implementation serves static rates; a live-rate client can
// be swapped in without touching the conversion contract.
type RateProvider interface {
	Rate(from, to string) float64
}

// StaticRates is a fixed rate table keyed by "FROM/TO".
type StaticRates map[string]float64

// DefaultRates covers the single conversion the pricing path performs.
// eBay converted prices arrive in USD; comic records store GBP.
func DefaultRates() StaticRates {
	return StaticRates{
		"USD/GBP": 0.79,
	}
}

func (s StaticRates) Rate(from, to string) float64 {
	if from == to {
		return 1.0
	}
	return s[from+"/"+to]
}

// Convert applies a multiplicative rate to each tier and rounds to two
// decimal places, half-up at the cent.
func Convert(t entity.PriceTiers, rate float64) entity.PriceTiers {
	return entity.PriceTiers{
		Low:    roundCents(t.Low * rate),
		Medium: roundCents(t.Medium * rate),
		High:   roundCents(t.High * rate),
	}
}

func roundCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
