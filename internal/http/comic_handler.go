package http

import (
	"errors"
	"net/http"
	"strconv"

	"comicshelf/internal/usecase"
)

type ComicHandler struct {
	repo usecase.ComicRepository
}

func NewComicHandler(repo usecase.ComicRepository) *ComicHandler {
	return &ComicHandler{repo: repo}
}

// List handles GET /comics with publisher/search filters and pagination.
func (h *ComicHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := usecase.ListParams{
		Publisher: r.URL.Query().Get("publisher"),
		Q:         r.URL.Query().Get("q"),
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	params.Limit = pageSize
	params.Offset = (page - 1) * pageSize

	comics, total, err := h.repo.List(ctx, params)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data": comics,
		"meta": map[string]any{
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": (total + pageSize - 1) / pageSize,
		},
	})
}

// GetByID handles GET /comics/{id}.
func (h *ComicHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.PathValue("id")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	comic, err := h.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Comic not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": comic})
}
