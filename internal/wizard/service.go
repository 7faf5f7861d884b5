// Package wizard orchestrates the content-selection engine: classifier
// signals feed the curated selector, the AI augmenter tops results up on a
// best-effort basis, and deterministic fallbacks guarantee every step
// completes without a live model or a populated catalog.
package wizard

import (
	"context"
	"errors"
	"log/slog"

	"sitefactory/internal/ai"
	"sitefactory/internal/curated"
	"sitefactory/internal/profile"
	"sitefactory/internal/types"
)

// InspirationLimit caps one inspirations response.
const InspirationLimit = 5

// Augmenter is the optional generative collaborator. Implementations signal
// ai.ErrUnavailable (or any error) to request the deterministic fallback.
type Augmenter interface {
	AnalyzeProfile(ctx context.Context, deepAnswers string, siteType types.SiteType, lang types.Language) (types.StructuredProfile, error)
	SuggestInspirations(ctx context.Context, p types.StructuredProfile, count int) ([]types.Inspiration, error)
}

// Catalog supplies curated inspiration rows matched to classifier signals.
type Catalog interface {
	Select(ctx context.Context, category profile.AudienceCategory, industry, style string, limit int) ([]curated.CatalogEntry, error)
}

type Service struct {
	augmenter Augmenter
	catalog   Catalog
}

// NewService wires the engine. Both collaborators may be nil: a nil augmenter
// always falls back, a nil catalog supplies no rows.
func NewService(augmenter Augmenter, catalog Catalog) *Service {
	return &Service{augmenter: augmenter, catalog: catalog}
}

// Analyze turns free-text answers into a StructuredProfile. AI output wins
// when available; otherwise the deterministic fallback profile is returned.
// Analyze cannot fail; the fallback is pure and local.
func (s *Service) Analyze(ctx context.Context, deepAnswers string, siteType types.SiteType, lang types.Language) types.StructuredProfile {
	if s.augmenter != nil {
		p, err := s.augmenter.AnalyzeProfile(ctx, deepAnswers, siteType, lang)
		if err == nil {
			return p
		}
		if !errors.Is(err, ai.ErrUnavailable) {
			slog.Warn("profile analysis failed, using fallback", "err", err)
		}
	}
	return curated.FallbackProfile(deepAnswers, siteType, lang)
}

// Inspirations assembles up to InspirationLimit records in a fixed fill
// order: curated catalog rows first, then AI suggestions, then localized
// templates. Ids never repeat within one response.
func (s *Service) Inspirations(ctx context.Context, p types.StructuredProfile) []types.Inspiration {
	sig := profile.Classify(p)

	out := make([]types.Inspiration, 0, InspirationLimit)
	seen := make(map[string]bool, InspirationLimit)

	appendUnique := func(items []types.Inspiration) {
		for _, item := range items {
			if len(out) >= InspirationLimit {
				return
			}
			if item.ID == "" || seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			out = append(out, item)
		}
	}

	if s.catalog != nil {
		entries, err := s.catalog.Select(ctx, sig.AudienceCategory, sig.Industry, sig.Style, InspirationLimit)
		if err != nil {
			// No catalog match is a degraded mode, not a failure.
			slog.Warn("inspiration catalog lookup failed", "err", err)
		}
		rows := make([]types.Inspiration, 0, len(entries))
		for _, entry := range entries {
			rows = append(rows, curated.ToInspiration(entry, p))
		}
		appendUnique(rows)
	}

	if len(out) < InspirationLimit && s.augmenter != nil {
		suggested, err := s.augmenter.SuggestInspirations(ctx, p, InspirationLimit-len(out))
		if err == nil {
			appendUnique(suggested)
		}
	}

	if len(out) < InspirationLimit {
		appendUnique(curated.FallbackInspirations(p, sig.AudienceCategory, InspirationLimit))
	}

	return out
}

// GenerateImages produces the preview gallery: one overview image plus one
// image per profile section (max four), deterministically from the curated
// pools. Selected inspirations are accepted for interface parity with the
// HTTP surface but do not influence the pool lookup.
func (s *Service) GenerateImages(p types.StructuredProfile, _ []types.Inspiration) []types.GeneratedImage {
	sig := profile.Classify(p)
	return curated.BuildGallery(p, curated.SelectImages(p, sig))
}
