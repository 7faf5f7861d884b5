package wizard

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitefactory/internal/ai"
	"sitefactory/internal/curated"
	"sitefactory/internal/profile"
	"sitefactory/internal/types"
)

type fakeAugmenter struct {
	profile      types.StructuredProfile
	inspirations []types.Inspiration
	err          error
	analyzeCalls int
	suggestCalls int
	lastCount    int
}

func (f *fakeAugmenter) AnalyzeProfile(_ context.Context, _ string, _ types.SiteType, _ types.Language) (types.StructuredProfile, error) {
	f.analyzeCalls++
	return f.profile, f.err
}

func (f *fakeAugmenter) SuggestInspirations(_ context.Context, _ types.StructuredProfile, count int) ([]types.Inspiration, error) {
	f.suggestCalls++
	f.lastCount = count
	if f.err != nil {
		return nil, f.err
	}
	if len(f.inspirations) > count {
		return f.inspirations[:count], nil
	}
	return f.inspirations, nil
}

type fakeCatalog struct {
	entries []curated.CatalogEntry
	err     error
}

func (f *fakeCatalog) Select(_ context.Context, _ profile.AudienceCategory, _, _ string, limit int) ([]curated.CatalogEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.entries) > limit {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

func catalogEntries(n int) []curated.CatalogEntry {
	out := make([]curated.CatalogEntry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, curated.CatalogEntry{
			ID:     fmt.Sprintf("db_%d", i+1),
			Title:  fmt.Sprintf("Site %d", i+1),
			Domain: fmt.Sprintf("site%d.example", i+1),
			Image:  fmt.Sprintf("https://img.example/%d.png", i+1),
		})
	}
	return out
}

func TestAnalyzePrefersAugmenter(t *testing.T) {
	want := types.StructuredProfile{SiteName: "Nova Studio", Lang: types.LangEN}
	aug := &fakeAugmenter{profile: want}
	svc := NewService(aug, nil)

	got := svc.Analyze(context.Background(), "a design studio", types.SiteBusiness, types.LangEN)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, aug.analyzeCalls)
}

func TestAnalyzeFallsBackWhenUnavailable(t *testing.T) {
	aug := &fakeAugmenter{err: ai.ErrUnavailable}
	svc := NewService(aug, nil)

	got := svc.Analyze(context.Background(), "une agence de conseil", types.SiteBusiness, types.LangFR)

	// The fallback satisfies the same structural contract as AI output.
	assert.NotEmpty(t, got.SiteName)
	assert.NotEmpty(t, got.Tagline)
	assert.NotEmpty(t, got.Tone)
	assert.NotEmpty(t, got.Ambience)
	assert.NotEmpty(t, got.PrimaryGoal)
	assert.NotEmpty(t, got.KeyHighlights)
	assert.NotEmpty(t, got.RecommendedCTA)
	assert.NotEmpty(t, got.Colors)
	assert.NotEmpty(t, got.Sections)
	assert.Equal(t, types.LangFR, got.Lang)
}

func TestAnalyzeNoAugmenterConfigured(t *testing.T) {
	svc := NewService(nil, nil)
	got := svc.Analyze(context.Background(), "answers", types.SitePersonal, types.LangEN)
	assert.Equal(t, "My Portfolio", got.SiteName)
}

func TestInspirationsCatalogOnly(t *testing.T) {
	svc := NewService(&fakeAugmenter{err: ai.ErrUnavailable}, &fakeCatalog{entries: catalogEntries(5)})
	p := types.StructuredProfile{Lang: types.LangFR, Tone: "moderne"}

	out := svc.Inspirations(context.Background(), p)

	require.Len(t, out, InspirationLimit)
	for _, insp := range out {
		assert.NotEmpty(t, insp.Justification)
	}
	seen := map[string]bool{}
	for _, insp := range out {
		assert.False(t, seen[insp.ID])
		seen[insp.ID] = true
	}
}

func TestInspirationsFillOrderCatalogThenAIThenTemplates(t *testing.T) {
	aug := &fakeAugmenter{inspirations: []types.Inspiration{
		{ID: "ai_1", Title: "AI One", Domain: "one.ai", Image: "https://img/1", Justification: "fits"},
	}}
	svc := NewService(aug, &fakeCatalog{entries: catalogEntries(2)})

	out := svc.Inspirations(context.Background(), types.StructuredProfile{Lang: types.LangEN})

	require.Len(t, out, InspirationLimit)
	assert.Equal(t, "db_1", out[0].ID)
	assert.Equal(t, "db_2", out[1].ID)
	assert.Equal(t, "ai_1", out[2].ID)
	// Remaining slots come from the deterministic templates.
	assert.Equal(t, "tpl_1", out[3].ID)
	assert.Equal(t, "tpl_2", out[4].ID)
	assert.Equal(t, 3, aug.lastCount)
}

func TestInspirationsAIUnavailableUsesTemplates(t *testing.T) {
	svc := NewService(&fakeAugmenter{err: ai.ErrUnavailable}, &fakeCatalog{})

	out := svc.Inspirations(context.Background(), types.StructuredProfile{Lang: types.LangFR})
	require.Len(t, out, InspirationLimit)
	assert.Equal(t, "tpl_1", out[0].ID)
}

func TestInspirationsCatalogErrorIsDegradedNotFatal(t *testing.T) {
	svc := NewService(nil, &fakeCatalog{err: fmt.Errorf("connection refused")})

	out := svc.Inspirations(context.Background(), types.StructuredProfile{Lang: types.LangEN})
	require.Len(t, out, InspirationLimit)
}

func TestInspirationsDeduplicatesIDs(t *testing.T) {
	aug := &fakeAugmenter{inspirations: []types.Inspiration{
		{ID: "db_1", Title: "Duplicate", Domain: "dup.example", Image: "https://img/dup"},
		{ID: "ai_9", Title: "Fresh", Domain: "fresh.example", Image: "https://img/fresh"},
	}}
	svc := NewService(aug, &fakeCatalog{entries: catalogEntries(3)})

	out := svc.Inspirations(context.Background(), types.StructuredProfile{Lang: types.LangEN})

	ids := map[string]int{}
	for _, insp := range out {
		ids[insp.ID]++
	}
	assert.Equal(t, 1, ids["db_1"])
	assert.Equal(t, 1, ids["ai_9"])
}

func TestInspirationsSkipsAugmenterWhenCatalogIsFull(t *testing.T) {
	aug := &fakeAugmenter{}
	svc := NewService(aug, &fakeCatalog{entries: catalogEntries(7)})

	out := svc.Inspirations(context.Background(), types.StructuredProfile{Lang: types.LangFR})
	require.Len(t, out, InspirationLimit)
	assert.Equal(t, 0, aug.suggestCalls)
}

func TestGenerateImagesEndToEnd(t *testing.T) {
	svc := NewService(nil, nil)
	p := types.StructuredProfile{
		Description: "agence de conseil en stratégie digitale pour PME ambitieuses",
		Sections: []types.Section{
			{ID: "hero"}, {ID: "about"}, {ID: "services"}, {ID: "testimonials"}, {ID: "contact"},
		},
		Lang: types.LangFR,
	}

	images := svc.GenerateImages(p, nil)

	// Overview plus four section images (five sections, capped at four).
	require.Len(t, images, 5)
	assert.Equal(t, types.ImageOverview, images[0].Type)
	assert.Equal(t, "hero", images[1].SectionID)
	assert.Equal(t, "about", images[2].SectionID)
	assert.Equal(t, "services", images[3].SectionID)
	assert.Equal(t, "testimonials", images[4].SectionID)
}

func TestGenerateImagesEmptySections(t *testing.T) {
	svc := NewService(nil, nil)
	images := svc.GenerateImages(types.StructuredProfile{Lang: types.LangEN}, nil)

	require.Len(t, images, 1)
	assert.Equal(t, types.ImageOverview, images[0].Type)
}

func TestGenerateImagesIdempotent(t *testing.T) {
	svc := NewService(nil, nil)
	p := types.StructuredProfile{
		Tone:     "minimal",
		Sections: []types.Section{{ID: "hero"}, {ID: "contact"}},
		Lang:     types.LangEN,
	}

	assert.Equal(t, svc.GenerateImages(p, nil), svc.GenerateImages(p, nil))
}
