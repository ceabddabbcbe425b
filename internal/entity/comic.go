package entity

import "time"

type Comic struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Issue           string     `json:"issue"`
	Publisher       string     `json:"publisher"`
	CoverURL        string     `json:"cover_url,omitempty"`
	PriceLow        float64    `json:"price_low,omitempty"`
	PriceMedium     float64    `json:"price_medium,omitempty"`
	PriceHigh       float64    `json:"price_high,omitempty"`
	PricesUpdatedAt *time.Time `json:"prices_updated_at,omitempty"`
	CoverUpdatedAt  *time.Time `json:"cover_updated_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// PriceTiers holds the low/medium/high market value of a comic in a single
// currency. Low <= Medium <= High when derived from a sorted price sample.
type PriceTiers struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

// ListingSample is one completed marketplace sale used as a price sample.
// Samples live only for the duration of a single aggregation call.
type ListingSample struct {
	Price   float64   `json:"price"`
	EndTime time.Time `json:"end_time"`
}

// CatalogCandidate is a single result from the external comics-metadata
// search. Only the cover URL of the chosen candidate is ever persisted.
type CatalogCandidate struct {
	ExternalID  int    `json:"id"`
	Name        string `json:"name"`
	IssueNumber string `json:"issue_number"`
	VolumeName  string `json:"volume"`
	CoverURL    string `json:"cover_url,omitempty"`
	CoverDate   string `json:"cover_date,omitempty"`
}
