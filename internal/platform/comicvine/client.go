package comicvine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"comicshelf/internal/entity"
	"comicshelf/internal/usecase"

	"golang.org/x/time/rate"
)

const searchEndpoint = "https://comicvine.gamespot.com/api/search/"

// Client talks to the ComicVine search API and its image CDN.
type Client struct {
	apiKey     string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:    apiKey,
		baseURL:   searchEndpoint,
		userAgent: "comicshelf/1.0",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		// ComicVine enforces 200 requests/hour per resource.
		limiter: rate.NewLimiter(rate.Every(18*time.Second), 1),
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

func (c *Client) Available() bool {
	return c.apiKey != ""
}

type searchResponse struct {
	StatusCode int    `json:"status_code"`
	Error      string `json:"error"`
	Results    []struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		IssueNumber string `json:"issue_number"`
		CoverDate   string `json:"cover_date"`
		Volume      struct {
			Name string `json:"name"`
		} `json:"volume"`
		Image struct {
			OriginalURL string `json:"original_url"`
		} `json:"image"`
	} `json:"results"`
}

// SearchIssues queries the issue resource by title and returns the
// candidate window in the order ComicVine ranked it.
func (c *Client) SearchIssues(ctx context.Context, title string, limit int) ([]entity.CatalogCandidate, error) {
	if !c.Available() {
		return nil, fmt.Errorf("ComicVine API key not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	params.Set("query", title)
	params.Set("resources", "issue")
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ComicVine request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ComicVine returned status %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("parse ComicVine response: %w", err)
	}
	if out.StatusCode != 1 {
		return nil, fmt.Errorf("ComicVine API error: %s", out.Error)
	}

	candidates := make([]entity.CatalogCandidate, 0, len(out.Results))
	for _, r := range out.Results {
		candidates = append(candidates, entity.CatalogCandidate{
			ExternalID:  r.ID,
			Name:        r.Name,
			IssueNumber: r.IssueNumber,
			VolumeName:  r.Volume.Name,
			CoverURL:    r.Image.OriginalURL,
			CoverDate:   r.CoverDate,
		})
	}
	return candidates, nil
}

// DownloadImage fetches a cover image, enforcing maxBytes before the
// payload is handed to the caller. Content-Length is checked up front
// when the CDN supplies it; the read itself is capped regardless.
func (c *Client) DownloadImage(ctx context.Context, imageURL string, maxBytes int64) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("image download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("image download returned status %d", resp.StatusCode)
	}
	if resp.ContentLength > maxBytes {
		return nil, "", usecase.ErrImageTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, "", usecase.ErrImageTooLarge
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}
