package curated

import (
	"fmt"

	"sitefactory/internal/profile"
	"sitefactory/internal/types"
)

// maxSectionImages caps how many section previews a gallery carries no matter
// how many sections the profile declares.
const maxSectionImages = 4

// ImageSelection is the result of a deterministic pool lookup: one overview
// URL plus one URL per profile section, in section order.
type ImageSelection struct {
	Overview string
	Sections []string
}

// imagePools are the static curated preview collections, keyed by audience
// category then style. Each pool is an ordered list of five URLs: index 0 is
// the overview shot, the rest feed section images. Loaded once, never mutated.
var imagePools = map[profile.AudienceCategory]map[string][]string{
	profile.AudiencePersonal: {
		"creative": {
			"https://images.unsplash.com/photo-1558655146-d09347e92766?w=800&h=600&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1571171637578-41bc2dd41cd2?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1574169208507-84376144848b?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1542744173-8e7e53415bb0?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=400&fit=crop&auto=format&q=80",
		},
		"minimal": {
			"https://images.unsplash.com/photo-1586717791821-3f44a563fa4c?w=800&h=600&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1557804506-669a67965ba0?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1559136555-9303baea8ebd?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1552664730-d307ca884978?w=800&h=400&fit=crop&auto=format&q=80",
		},
		"modern": {
			"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=800&h=600&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1552664730-d307ca884978?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1586717791821-3f44a563fa4c?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1574169208507-84376144848b?w=800&h=400&fit=crop&auto=format&q=80",
		},
	},
	profile.AudienceBusiness: {
		"corporate": {
			"https://images.unsplash.com/photo-1559136555-9303baea8ebd?w=800&h=600&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1586717791821-3f44a563fa4c?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1552664730-d307ca884978?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1574169208507-84376144848b?w=800&h=400&fit=crop&auto=format&q=80",
		},
		"modern": {
			"https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=800&h=600&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1552664730-d307ca884978?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1586717791821-3f44a563fa4c?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1559136555-9303baea8ebd?w=800&h=400&fit=crop&auto=format&q=80",
		},
		"minimal": {
			"https://images.unsplash.com/photo-1557804506-669a67965ba0?w=800&h=600&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1559136555-9303baea8ebd?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1586717791821-3f44a563fa4c?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=800&h=400&fit=crop&auto=format&q=80",
			"https://images.unsplash.com/photo-1552664730-d307ca884978?w=800&h=400&fit=crop&auto=format&q=80",
		},
	},
}

// SelectImages resolves the curated pool for the classified audience/style
// pair and assigns URLs to the profile sections in order. A style with no
// dedicated pool falls back to the category's "modern" pool, so the lookup
// always succeeds and identical inputs always yield identical URLs.
func SelectImages(p types.StructuredProfile, sig profile.Signals) ImageSelection {
	pool := lookupPool(sig.AudienceCategory, sig.Style)

	sectionCount := len(p.Sections)
	if sectionCount > maxSectionImages {
		sectionCount = maxSectionImages
	}

	sections := make([]string, 0, sectionCount)
	sectionPool := pool[1:]
	for i := 0; i < sectionCount; i++ {
		sections = append(sections, sectionPool[i%len(sectionPool)])
	}

	return ImageSelection{Overview: pool[0], Sections: sections}
}

// BuildGallery turns a pool selection into the GeneratedImage records the
// wizard persists: exactly one overview entry plus one section entry per
// assigned URL, section ids taken from the profile in order.
func BuildGallery(p types.StructuredProfile, sel ImageSelection) []types.GeneratedImage {
	images := []types.GeneratedImage{{
		ID:       types.ImageOverview,
		Type:     types.ImageOverview,
		URL:      sel.Overview,
		Filename: "site-overview.png",
	}}

	for i, url := range sel.Sections {
		section := p.Sections[i]
		images = append(images, types.GeneratedImage{
			ID:        section.ID,
			Type:      types.ImageSection,
			SectionID: section.ID,
			URL:       url,
			Filename:  fmt.Sprintf("%s-section.png", section.ID),
		})
	}

	return images
}

func lookupPool(category profile.AudienceCategory, style string) []string {
	styles, ok := imagePools[category]
	if !ok {
		styles = imagePools[profile.AudienceBusiness]
	}
	if pool, ok := styles[style]; ok {
		return pool
	}
	return styles[profile.StyleModern]
}
