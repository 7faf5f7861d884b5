package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"sitefactory/internal/curated"
	"sitefactory/internal/profile"
)

// minNarrowedRows is the threshold under which the narrowed industry/style
// query is considered too thin and the lookup widens to category-only.
const minNarrowedRows = 3

// InspirationCatalog reads the curated inspiration table. Row order is
// randomized by the database, so two identical requests may return different
// subsets; only category correctness and best-match-first are promised.
type InspirationCatalog struct {
	db *pgxpool.Pool
}

func NewInspirationCatalog(db *pgxpool.Pool) *InspirationCatalog {
	return &InspirationCatalog{db: db}
}

// Select returns up to limit active catalog rows for the classified signals.
// Industry and style narrow the match when they carry a real signal; a
// narrowed result under minNarrowedRows falls back to the whole category.
func (c *InspirationCatalog) Select(ctx context.Context, category profile.AudienceCategory, industry, style string, limit int) ([]curated.CatalogEntry, error) {
	q := `select id, title, domain, image_url, style, description, features
from inspirations where is_active and category = $1`
	args := []any{string(category)}

	narrowed := false
	if industry != "" && industry != profile.IndustryNone {
		args = append(args, industry)
		q += fmt.Sprintf(" and industry = $%d", len(args))
		narrowed = true
	}
	if style != "" {
		args = append(args, style)
		q += fmt.Sprintf(" and style = $%d", len(args))
		narrowed = true
	}
	args = append(args, limit)
	q += fmt.Sprintf(" order by random() limit $%d;", len(args))

	rows, err := c.query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	if len(rows) >= minNarrowedRows || !narrowed {
		return rows, nil
	}

	const wide = `select id, title, domain, image_url, style, description, features
from inspirations where is_active and category = $1 order by random() limit $2;`
	return c.query(ctx, wide, []any{string(category), limit})
}

func (c *InspirationCatalog) query(ctx context.Context, q string, args []any) ([]curated.CatalogEntry, error) {
	rows, err := c.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]curated.CatalogEntry, 0, 8)
	for rows.Next() {
		var (
			id                         int64
			entry                      curated.CatalogEntry
			style, description, extras *string
		)
		if err := rows.Scan(&id, &entry.Title, &entry.Domain, &entry.Image, &style, &description, &extras); err != nil {
			return nil, err
		}
		entry.ID = fmt.Sprintf("db_%d", id)
		if style != nil {
			entry.Style = *style
		}
		if description != nil {
			entry.Description = *description
		}
		if extras != nil {
			entry.Features = *extras
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}
