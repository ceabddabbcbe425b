package usecase

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"comicshelf/internal/entity"
)

// MaxCoverBytes caps cover downloads at 1 MiB. Oversized images are
// rejected before any storage or database write happens.
const MaxCoverBytes = 1 << 20

const catalogCandidateWindow = 20

// CoverResult summarizes one run of the cover-fetch pipeline.
type CoverResult struct {
	Comic           entity.Comic
	CoverURL        string
	AlreadyHadCover bool
	Match           entity.CatalogCandidate
	ImageSize       int
	ContentType     string
	Filename        string
}

// CoverService finds the best catalog match for a comic and attaches its
// cover image: search -> select -> download -> upload -> persist URL.
type CoverService struct {
	comics  ComicRepository
	catalog CatalogProvider
	objects ObjectStore
	locks   *keyedLocks
}

func NewCoverService(comics ComicRepository, catalog CatalogProvider, objects ObjectStore) *CoverService {
	return &CoverService{
		comics:  comics,
		catalog: catalog,
		objects: objects,
		locks:   newKeyedLocks(),
	}
}

func (s *CoverService) FetchCover(ctx context.Context, comicID string) (CoverResult, error) {
	unlock := s.locks.acquire(comicID)
	defer unlock()

	comic, err := s.comics.GetByID(ctx, comicID)
	if err != nil {
		return CoverResult{}, err
	}

	if comic.CoverURL != "" {
		return CoverResult{Comic: comic, CoverURL: comic.CoverURL, AlreadyHadCover: true}, nil
	}

	if !s.catalog.Available() {
		return CoverResult{}, &ConfigError{Missing: "COMICVINE_API_KEY"}
	}

	searchCtx, cancel := context.WithTimeout(ctx, outboundCallTimeout)
	defer cancel()
	candidates, err := s.catalog.SearchIssues(searchCtx, comic.Title, catalogCandidateWindow)
	if err != nil {
		return CoverResult{}, &UpstreamError{Source: "comicvine search", Err: err}
	}
	if len(candidates) == 0 {
		return CoverResult{}, ErrNoMatch
	}

	match := bestMatch(comic, candidates)
	if match.CoverURL == "" {
		return CoverResult{}, ErrNoCover
	}

	downloadCtx, cancel := context.WithTimeout(ctx, outboundCallTimeout)
	defer cancel()
	data, contentType, err := s.catalog.DownloadImage(downloadCtx, match.CoverURL, MaxCoverBytes)
	if err != nil {
		return CoverResult{}, err
	}

	filename := coverFilename(comic.ID, match.CoverURL, contentType)

	publicURL, err := s.objects.Upload(ctx, filename, contentType, data)
	if err != nil {
		return CoverResult{}, &PersistError{Op: "upload cover image", Err: err}
	}

	if err := s.comics.SetCover(ctx, comicID, publicURL); err != nil {
		// Best-effort cleanup of the orphaned object; the database error
		// is what the caller needs to see.
		if delErr := s.objects.Delete(context.WithoutCancel(ctx), filename); delErr != nil {
			log.Printf("cover cleanup failed: comic_id=%s path=%s error=%v", comicID, filename, delErr)
		}
		return CoverResult{}, &PersistError{Op: "update comic cover", Err: err}
	}

	return CoverResult{
		Comic:       comic,
		CoverURL:    publicURL,
		Match:       match,
		ImageSize:   len(data),
		ContentType: contentType,
		Filename:    filename,
	}, nil
}

// coverFilename derives the stored object name from the comic id and the
// source image, falling back to the content type when the URL carries no
// usable extension.
func coverFilename(comicID, sourceURL, contentType string) string {
	ext := strings.ToLower(path.Ext(sourceURL))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		switch contentType {
		case "image/png":
			ext = ".png"
		case "image/gif":
			ext = ".gif"
		case "image/webp":
			ext = ".webp"
		default:
			ext = ".jpg"
		}
	}
	return fmt.Sprintf("comic_%s_%d%s", comicID, time.Now().Unix(), ext)
}
