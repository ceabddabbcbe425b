package ebay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"comicshelf/internal/entity"

	"golang.org/x/time/rate"
)

const (
	findingEndpoint = "https://svcs.ebay.com/services/search/FindingService/v1"

	// Collectibles > Comics
	comicsCategoryID = "63"

	// Completed sales within the last 90 days are considered comparable.
	recencyWindow = 90 * 24 * time.Hour

	maxListings = 100
)

// Client talks to the eBay Finding API (findCompletedItems).
type Client struct {
	appID      string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(appID string) *Client {
	return &Client{
		appID:      appID,
		baseURL:    findingEndpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		// The Finding API allows 5000 calls/day; one per second keeps a
		// refresh sweep well inside that.
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub.
func NewClientWithBaseURL(appID, baseURL string) *Client {
	c := NewClient(appID)
	c.baseURL = baseURL
	return c
}

func (c *Client) Available() bool {
	return c.appID != ""
}

// findCompletedItems response; every field arrives wrapped in a
// single-element array.
type findingResponse struct {
	FindCompletedItemsResponse []struct {
		Ack          []string `json:"ack"`
		SearchResult []struct {
			Item []findingItem `json:"item"`
		} `json:"searchResult"`
	} `json:"findCompletedItemsResponse"`
}

type findingItem struct {
	Title         []string `json:"title"`
	SellingStatus []struct {
		ConvertedCurrentPrice []struct {
			Value      string `json:"__value__"`
			CurrencyID string `json:"@currencyId"`
		} `json:"convertedCurrentPrice"`
	} `json:"sellingStatus"`
	ListingInfo []struct {
		EndTime []string `json:"endTime"`
	} `json:"listingInfo"`
}

// CompletedListings searches completed sales for a comic and returns the
// usable price samples. Entries with a missing, non-numeric, or
// non-positive price are dropped. An empty result is not an error.
func (c *Client) CompletedListings(ctx context.Context, title, issue string) ([]entity.ListingSample, error) {
	if !c.Available() {
		return nil, fmt.Errorf("eBay app ID not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("%s %s comic", title, issue)

	params := url.Values{}
	params.Set("OPERATION-NAME", "findCompletedItems")
	params.Set("SERVICE-VERSION", "1.0.0")
	params.Set("SECURITY-APPNAME", c.appID)
	params.Set("RESPONSE-DATA-FORMAT", "JSON")
	params.Set("REST-PAYLOAD", "")
	params.Set("keywords", query)
	params.Set("categoryId", comicsCategoryID)

	params.Set("itemFilter(0).name", "SoldItemsOnly")
	params.Set("itemFilter(0).value", "true")

	params.Set("itemFilter(1).name", "Condition")
	params.Set("itemFilter(1).value(0)", "Good")
	params.Set("itemFilter(1).value(1)", "Very Good")
	params.Set("itemFilter(1).value(2)", "Excellent")

	params.Set("itemFilter(2).name", "EndTimeFrom")
	params.Set("itemFilter(2).value", time.Now().Add(-recencyWindow).UTC().Format(time.RFC3339))

	params.Set("paginationInput.entriesPerPage", strconv.Itoa(maxListings))
	params.Set("sortOrder", "EndTimeSoonest")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("eBay API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read eBay response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if msg := extractAPIError(body); msg != "" {
			return nil, fmt.Errorf("eBay API error: %s", msg)
		}
		return nil, fmt.Errorf("eBay API returned status %d", resp.StatusCode)
	}

	var out findingResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("parse eBay response: %w", err)
	}
	if len(out.FindCompletedItemsResponse) == 0 {
		return nil, fmt.Errorf("eBay response missing findCompletedItemsResponse")
	}

	envelope := out.FindCompletedItemsResponse[0]
	if len(envelope.Ack) > 0 && envelope.Ack[0] == "Failure" {
		return nil, fmt.Errorf("eBay API acknowledged failure")
	}
	if len(envelope.SearchResult) == 0 {
		return nil, nil
	}

	var samples []entity.ListingSample
	for _, item := range envelope.SearchResult[0].Item {
		sample, ok := parseItem(item)
		if !ok {
			continue
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

func parseItem(item findingItem) (entity.ListingSample, bool) {
	if len(item.SellingStatus) == 0 || len(item.SellingStatus[0].ConvertedCurrentPrice) == 0 {
		return entity.ListingSample{}, false
	}

	price, err := strconv.ParseFloat(item.SellingStatus[0].ConvertedCurrentPrice[0].Value, 64)
	if err != nil || price <= 0 {
		return entity.ListingSample{}, false
	}

	sample := entity.ListingSample{Price: price}
	if len(item.ListingInfo) > 0 && len(item.ListingInfo[0].EndTime) > 0 {
		if endTime, err := time.Parse(time.RFC3339, item.ListingInfo[0].EndTime[0]); err == nil {
			sample.EndTime = endTime
		}
	}
	return sample, true
}

func extractAPIError(body []byte) string {
	var errorResp struct {
		ErrorMessage []struct {
			Error []struct {
				Message []string `json:"message"`
			} `json:"error"`
		} `json:"errorMessage"`
	}
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return ""
	}
	if len(errorResp.ErrorMessage) > 0 &&
		len(errorResp.ErrorMessage[0].Error) > 0 &&
		len(errorResp.ErrorMessage[0].Error[0].Message) > 0 {
		msg := errorResp.ErrorMessage[0].Error[0].Message[0]
		if strings.Contains(msg, "exceeded the number of times") {
			return "rate limit exceeded, try again later"
		}
		return msg
	}
	return ""
}
