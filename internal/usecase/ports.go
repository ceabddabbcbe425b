package usecase

import (
	"context"
	"time"

	"comicshelf/internal/entity"
)

// ListParams filters and paginates the browse endpoints.
type ListParams struct {
	Publisher string
	Q         string
	Limit     int
	Offset    int
}

// ComicRepository defines the contract for reading and updating comics.
type ComicRepository interface {
	List(ctx context.Context, p ListParams) ([]entity.Comic, int, error)
	GetByID(ctx context.Context, id string) (entity.Comic, error)
	// UpdateMarketValue stores a converted tier set and stamps
	// prices_updated_at.
	UpdateMarketValue(ctx context.Context, id string, tiers entity.PriceTiers) error
	// SetCover stores the public cover URL and stamps cover_updated_at.
	SetCover(ctx context.Context, id, coverURL string) error
	// ListStalePrices returns comics whose prices were updated before the
	// cutoff (or never), for the background refresh job.
	ListStalePrices(ctx context.Context, before time.Time, limit int) ([]entity.Comic, error)
}

// ListingProvider fetches completed-sale listings from the marketplace.
type ListingProvider interface {
	// Available reports whether the provider credential is configured.
	Available() bool
	// CompletedListings returns price samples for completed sales matching
	// the comic's title and issue. An empty slice is a valid outcome
	// meaning no comparable sales were found.
	CompletedListings(ctx context.Context, title, issue string) ([]entity.ListingSample, error)
}

// CatalogProvider searches the external comics-metadata service and
// downloads cover images from its CDN.
type CatalogProvider interface {
	Available() bool
	SearchIssues(ctx context.Context, title string, limit int) ([]entity.CatalogCandidate, error)
	// DownloadImage fetches the image at url, rejecting payloads larger
	// than maxBytes with ErrImageTooLarge.
	DownloadImage(ctx context.Context, url string, maxBytes int64) (data []byte, contentType string, err error)
}

// ObjectStore uploads and deletes cover images in bucket storage.
type ObjectStore interface {
	// Upload writes the object and returns its public URL.
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, path string) error
}
