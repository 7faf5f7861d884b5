package curated

import (
	"fmt"

	"sitefactory/internal/types"
)

// CatalogEntry is a raw curated-inspiration row before justification text is
// attached. Style, Description and Features are optional editorial metadata.
type CatalogEntry struct {
	ID          string
	Title       string
	Domain      string
	Image       string
	Style       string
	Description string
	Features    string
}

// Justify synthesizes the localized justification text for a catalog entry:
// title plus style, profile tone, editorial description and feature notes,
// each with a language-appropriate default when the source field is empty.
func Justify(entry CatalogEntry, p types.StructuredProfile) string {
	style := entry.Style
	tone := p.Tone
	description := entry.Description
	features := entry.Features

	if p.Lang == types.LangFR {
		if style == "" {
			style = "design moderne"
		}
		if tone == "" {
			tone = "professionnelle"
		}
		if description == "" {
			description = "Interface parfaitement adaptée à votre secteur."
		}
		if features == "" {
			features = "Design optimisé pour l'expérience utilisateur."
		}
		return fmt.Sprintf("%s est un excellent exemple de %s qui correspond à votre vision %s. %s %s",
			entry.Title, style, tone, description, features)
	}

	if style == "" {
		style = "modern design"
	}
	if tone == "" {
		tone = "professional"
	}
	if description == "" {
		description = "Interface perfectly suited to your industry."
	}
	if features == "" {
		features = "Design optimized for user experience."
	}
	return fmt.Sprintf("%s is an excellent example of %s that matches your %s vision. %s %s",
		entry.Title, style, tone, description, features)
}

// ToInspiration attaches the synthesized justification and returns the
// user-facing record.
func ToInspiration(entry CatalogEntry, p types.StructuredProfile) types.Inspiration {
	return types.Inspiration{
		ID:            entry.ID,
		Title:         entry.Title,
		Domain:        entry.Domain,
		Image:         entry.Image,
		Justification: Justify(entry, p),
	}
}
