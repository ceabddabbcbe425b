package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"comicshelf/internal/usecase"
)

// CoverFetcher runs the catalog-match and cover-fetch pipeline.
type CoverFetcher interface {
	FetchCover(ctx context.Context, comicID string) (usecase.CoverResult, error)
}

type CoverHandler struct {
	covers CoverFetcher
}

func NewCoverHandler(covers CoverFetcher) *CoverHandler {
	return &CoverHandler{covers: covers}
}

// FetchCover handles POST /comicvine/fetch-cover?comic_id=<id>.
func (h *CoverHandler) FetchCover(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.covers.FetchCover(r.Context(), comicID)
	if err != nil {
		h.writeCoverError(w, comicID, err)
		return
	}

	if result.AlreadyHadCover {
		writeJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"message":   "Comic already has a cover image",
			"cover_url": result.CoverURL,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"comic_id":  comicID,
		"cover_url": result.CoverURL,
		"comicvine_match": map[string]any{
			"id":           result.Match.ExternalID,
			"name":         result.Match.Name,
			"issue_number": result.Match.IssueNumber,
			"volume":       result.Match.VolumeName,
			"cover_date":   result.Match.CoverDate,
		},
		"image_info": map[string]any{
			"size_kb":      float64(result.ImageSize) / 1024,
			"content_type": result.ContentType,
			"filename":     result.Filename,
		},
	})
}

func (h *CoverHandler) writeCoverError(w http.ResponseWriter, comicID string, err error) {
	var persistErr *usecase.PersistError
	var upstreamErr *usecase.UpstreamError
	var configErr *usecase.ConfigError
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		writeError(w, http.StatusNotFound, "Comic not found")
	case errors.Is(err, usecase.ErrNoMatch):
		writeError(w, http.StatusNotFound, "No matching comic found on ComicVine")
	case errors.Is(err, usecase.ErrNoCover):
		writeError(w, http.StatusNotFound, "No cover image available")
	case errors.Is(err, usecase.ErrImageTooLarge):
		writeError(w, http.StatusBadRequest, "Image too large")
	case errors.As(err, &persistErr):
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to save cover image", persistErr.Err.Error())
	case errors.As(err, &upstreamErr):
		writeErrorDetails(w, http.StatusInternalServerError, "ComicVine search failed", upstreamErr.Err.Error())
	case errors.As(err, &configErr):
		writeError(w, http.StatusInternalServerError, "Server configuration error: "+configErr.Missing+" is not set")
	default:
		log.Printf("fetch cover failed: comic_id=%s error=%v", comicID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Internal server error",
			"message": err.Error(),
		})
	}
}
