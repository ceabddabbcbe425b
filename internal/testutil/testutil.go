package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"comicshelf/internal/entity"
)

// TestComic is a fixture comic for testing
var TestComic = entity.Comic{
	ID:        "test-comic-id-123",
	Title:     "Amazing Spider-Man",
	Issue:     "300",
	Publisher: "Marvel",
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// TestComicWithCover is a fixture comic that already has a cover image
var TestComicWithCover = entity.Comic{
	ID:        "test-comic-id-456",
	Title:     "The Incredible Hulk",
	Issue:     "181",
	Publisher: "Marvel",
	CoverURL:  "https://cdn.example.com/storage/v1/object/public/covers/comic_test-comic-id-456.jpg",
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// Samples builds listing samples from raw prices, ending a day apart.
func Samples(prices ...float64) []entity.ListingSample {
	samples := make([]entity.ListingSample, 0, len(prices))
	for i, p := range prices {
		samples = append(samples, entity.ListingSample{
			Price:   p,
			EndTime: time.Now().AddDate(0, 0, -i),
		})
	}
	return samples
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse holds the decoded HTTP response for assertions
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes the recorded response body as JSON
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
