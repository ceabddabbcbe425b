package store

import (
	"context"
	"errors"
	"time"

	"comicshelf/internal/entity"
	"comicshelf/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ComicPG is the Postgres implementation of usecase.ComicRepository.
type ComicPG struct {
	db *pgxpool.Pool
}

func NewComicPG(db *pgxpool.Pool) *ComicPG {
	return &ComicPG{db: db}
}

const comicColumns = `id, title, issue, publisher,
	COALESCE(cover_url, '') AS cover_url,
	COALESCE(price_low, 0), COALESCE(price_medium, 0), COALESCE(price_high, 0),
	prices_updated_at, cover_updated_at, created_at, updated_at`

func (r *ComicPG) List(ctx context.Context, p usecase.ListParams) ([]entity.Comic, int, error) {
	const countSQL = `
		SELECT COUNT(*)
		FROM comics
		WHERE ($1 = '' OR publisher = $1)
		AND ($2 = '' OR title ILIKE '%' || $2 || '%')
	`
	var total int
	if err := r.db.QueryRow(ctx, countSQL, p.Publisher, p.Q).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := `
		SELECT ` + comicColumns + `
		FROM comics
		WHERE ($1 = '' OR publisher = $1)
		AND ($2 = '' OR title ILIKE '%' || $2 || '%')
		ORDER BY title, issue
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, dataSQL, p.Publisher, p.Q, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var comics []entity.Comic
	for rows.Next() {
		c, err := scanComic(rows)
		if err != nil {
			return nil, 0, err
		}
		comics = append(comics, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return comics, total, nil
}

func (r *ComicPG) GetByID(ctx context.Context, id string) (entity.Comic, error) {
	query := `
		SELECT ` + comicColumns + `
		FROM comics
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, id)
	c, err := scanComic(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Comic{}, usecase.ErrNotFound
	}
	if err != nil {
		return entity.Comic{}, err
	}
	return c, nil
}

func (r *ComicPG) UpdateMarketValue(ctx context.Context, id string, tiers entity.PriceTiers) error {
	const updateSQL = `
		UPDATE comics
		SET price_low = $2, price_medium = $3, price_high = $4,
		    prices_updated_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, updateSQL, id, tiers.Low, tiers.Medium, tiers.High)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *ComicPG) SetCover(ctx context.Context, id, coverURL string) error {
	const updateSQL = `
		UPDATE comics
		SET cover_url = $2, cover_updated_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, updateSQL, id, coverURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *ComicPG) ListStalePrices(ctx context.Context, before time.Time, limit int) ([]entity.Comic, error) {
	query := `
		SELECT ` + comicColumns + `
		FROM comics
		WHERE prices_updated_at IS NULL OR prices_updated_at < $1
		ORDER BY prices_updated_at ASC NULLS FIRST
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, before, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comics []entity.Comic
	for rows.Next() {
		c, err := scanComic(rows)
		if err != nil {
			return nil, err
		}
		comics = append(comics, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comics, nil
}

func scanComic(row pgx.Row) (entity.Comic, error) {
	var c entity.Comic
	err := row.Scan(
		&c.ID, &c.Title, &c.Issue, &c.Publisher,
		&c.CoverURL,
		&c.PriceLow, &c.PriceMedium, &c.PriceHigh,
		&c.PricesUpdatedAt, &c.CoverUpdatedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}
