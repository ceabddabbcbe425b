package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"comicshelf/internal/usecase"
)

// PriceUpdater runs the pricing pipeline for one comic.
type PriceUpdater interface {
	UpdatePrices(ctx context.Context, comicID string) (usecase.PriceUpdate, error)
}

type PricingHandler struct {
	pricing PriceUpdater
}

func NewPricingHandler(pricing PriceUpdater) *PricingHandler {
	return &PricingHandler{pricing: pricing}
}

// UpdatePrices handles POST /ebay/update-prices?comic_id=<id>.
func (h *PricingHandler) UpdatePrices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	comicID := r.URL.Query().Get("comic_id")
	if comicID == "" {
		writeError(w, http.StatusBadRequest, "comic_id parameter is required")
		return
	}

	result, err := h.pricing.UpdatePrices(r.Context(), comicID)
	if err != nil {
		h.writePricingError(w, comicID, err)
		return
	}

	if result.NoData {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "No completed eBay listings found for this comic",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":              true,
		"comic_id":             comicID,
		"title":                result.Comic.Title,
		"issue":                result.Comic.Issue,
		"prices":               result.Tiers,
		"total_listings_found": result.ListingsFound,
	})
}

func (h *PricingHandler) writePricingError(w http.ResponseWriter, comicID string, err error) {
	var persistErr *usecase.PersistError
	var configErr *usecase.ConfigError
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		writeError(w, http.StatusNotFound, "Comic not found")
	case errors.As(err, &persistErr):
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to update comic prices", persistErr.Err.Error())
	case errors.As(err, &configErr):
		writeError(w, http.StatusInternalServerError, "Server configuration error: "+configErr.Missing+" is not set")
	default:
		log.Printf("update prices failed: comic_id=%s error=%v", comicID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Internal server error",
			"message": err.Error(),
		})
	}
}
