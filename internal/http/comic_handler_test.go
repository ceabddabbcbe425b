package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"comicshelf/internal/entity"
	"comicshelf/internal/testutil"
	"comicshelf/internal/usecase"
	"comicshelf/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComicHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	comics := mocks.NewMockComicRepository(ctrl)
	handler := NewComicHandler(comics)

	t.Run("returns comics with pagination meta", func(t *testing.T) {
		comics.EXPECT().
			List(gomock.Any(), usecase.ListParams{Publisher: "Marvel", Limit: 20, Offset: 0}).
			Return([]entity.Comic{testutil.TestComic, testutil.TestComicWithCover}, 42, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/comics?publisher=Marvel", nil))

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Len(t, resp.Body["data"], 2)
		meta := resp.Body["meta"].(map[string]interface{})
		assert.Equal(t, float64(1), meta["page"])
		assert.Equal(t, float64(20), meta["page_size"])
		assert.Equal(t, float64(42), meta["total"])
		assert.Equal(t, float64(3), meta["total_pages"])
	})

	t.Run("translates page and page_size into limit and offset", func(t *testing.T) {
		comics.EXPECT().
			List(gomock.Any(), usecase.ListParams{Q: "spider", Limit: 10, Offset: 20}).
			Return([]entity.Comic{}, 0, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/comics?q=spider&page=3&page_size=10", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("clamps out-of-range paging values", func(t *testing.T) {
		comics.EXPECT().
			List(gomock.Any(), usecase.ListParams{Limit: 20, Offset: 0}).
			Return([]entity.Comic{}, 0, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/comics?page=-1&page_size=9999", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("repository failure", func(t *testing.T) {
		comics.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(nil, 0, errors.New("connection refused"))

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/comics", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestComicHandler_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	comics := mocks.NewMockComicRepository(ctrl)
	handler := NewComicHandler(comics)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /comics/{id}", handler.GetByID)

	t.Run("returns the comic", func(t *testing.T) {
		comics.EXPECT().GetByID(gomock.Any(), testutil.TestComic.ID).Return(testutil.TestComic, nil)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/comics/"+testutil.TestComic.ID, nil))

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)
		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, "Amazing Spider-Man", data["title"])
		assert.Equal(t, "300", data["issue"])
	})

	t.Run("not found", func(t *testing.T) {
		comics.EXPECT().GetByID(gomock.Any(), "nope").Return(entity.Comic{}, usecase.ErrNotFound)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/comics/nope", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "Comic not found", resp.Body["error"])
	})
}
