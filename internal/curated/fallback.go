package curated

import (
	"unicode/utf8"

	"sitefactory/internal/profile"
	"sitefactory/internal/types"
)

// defaultSectionIDs is the section plan a fallback profile carries so the
// gallery step still produces a full preview without any AI output.
var defaultSectionIDs = []string{"hero", "about", "services", "testimonials", "contact"}

var defaultSectionTitles = map[types.Language]map[string]string{
	types.LangFR: {
		"hero":         "Accueil",
		"about":        "À propos",
		"services":     "Services",
		"testimonials": "Témoignages",
		"contact":      "Contact",
	},
	types.LangEN: {
		"hero":         "Home",
		"about":        "About",
		"services":     "Services",
		"testimonials": "Testimonials",
		"contact":      "Contact",
	},
}

// FallbackProfile builds a complete deterministic StructuredProfile from the
// wizard inputs alone. It satisfies the same structural contract as an AI
// produced profile, which is what lets the wizard finish end-to-end with no
// live model behind it.
func FallbackProfile(deepAnswers string, siteType types.SiteType, lang types.Language) types.StructuredProfile {
	description := truncateRunes(deepAnswers, 200)

	p := types.StructuredProfile{
		Description:    description,
		Tone:           "moderne",
		Ambience:       "professionnel et élégant",
		PrimaryGoal:    "Présenter mon activité",
		KeyHighlights:  []string{"Qualité", "Professionnalisme", "Innovation"},
		RecommendedCTA: "Nous contacter",
		Colors:         []string{"#3B82F6", "#8B5CF6", "#EF4444"},
		Lang:           lang,
	}
	if siteType == types.SitePersonal {
		p.SiteName = "Mon Portfolio"
		p.Tagline = "Site web professionnel"
	} else {
		p.SiteName = "Mon Entreprise"
		p.Tagline = "Site web professionnel"
	}

	if lang == types.LangEN {
		p.Tone = "modern"
		p.Ambience = "professional and elegant"
		p.PrimaryGoal = "Showcase my work"
		p.KeyHighlights = []string{"Quality", "Professionalism", "Innovation"}
		p.RecommendedCTA = "Get in touch"
		p.Tagline = "A professional website"
		if siteType == types.SitePersonal {
			p.SiteName = "My Portfolio"
		} else {
			p.SiteName = "My Business"
		}
	}

	titles := defaultSectionTitles[lang]
	if titles == nil {
		titles = defaultSectionTitles[types.LangFR]
	}
	for _, id := range defaultSectionIDs {
		p.Sections = append(p.Sections, types.Section{ID: id, Title: titles[id]})
	}

	return p
}

// fallbackTemplate describes one localized template inspiration. Justify is
// derived from profile fields so entries stay specific to the request.
type fallbackTemplate struct {
	id             string
	personalTitle  string
	businessTitle  string
	personalDomain string
	businessDomain string
	image          string
	justify        func(p types.StructuredProfile) string
}

var fallbackTemplates = []fallbackTemplate{
	{
		id:             "tpl_1",
		personalTitle:  "Portfolio Créatif",
		businessTitle:  "Agence Moderne",
		personalDomain: "portfoliocreative.design",
		businessDomain: "agencemoderne.co",
		image:          "https://images.unsplash.com/photo-1558618667-fcc251c78b5e?w=400&h=300&fit=crop",
		justify: func(p types.StructuredProfile) string {
			tone := orDefault(p.Tone, "moderne", "modern", p.Lang)
			ambience := orDefault(p.Ambience, "professionnelle", "professional", p.Lang)
			if p.Lang == types.LangEN {
				return "A " + tone + " design that matches your " + ambience + " vision"
			}
			return "Design " + tone + " qui correspond à votre vision " + ambience
		},
	},
	{
		id:             "tpl_2",
		personalTitle:  "Showcase Artistique",
		businessTitle:  "Services Pro",
		personalDomain: "showcaseartistique.fr",
		businessDomain: "servicespro.io",
		image:          "https://images.unsplash.com/photo-1542744173-8e7e53415bb0?w=400&h=300&fit=crop",
		justify: func(p types.StructuredProfile) string {
			if p.Lang == types.LangEN {
				return "Excellent example for " + orDefault(p.PrimaryGoal, "", "showcasing your business", p.Lang)
			}
			return "Excellent exemple pour " + orDefault(p.PrimaryGoal, "présenter votre activité", "", p.Lang)
		},
	},
	{
		id:             "tpl_3",
		personalTitle:  "Site Inspiration",
		businessTitle:  "Site Inspiration",
		personalDomain: "inspiration-design.com",
		businessDomain: "inspiration-design.com",
		image:          "https://images.unsplash.com/photo-1586717791821-3f44a563fa4c?w=400&h=300&fit=crop",
		justify: func(p types.StructuredProfile) string {
			cta := orDefault(p.RecommendedCTA, "call-to-action efficace", "an effective call to action", p.Lang)
			if p.Lang == types.LangEN {
				return "An interface suited to your industry with " + cta
			}
			return "Interface adaptée à votre secteur avec " + cta
		},
	},
	{
		id:             "tpl_4",
		personalTitle:  "Portfolio Elite",
		businessTitle:  "Business Hub",
		personalDomain: "portfolioelite.design",
		businessDomain: "businesshub.co",
		image:          "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=400&h=300&fit=crop",
		justify: func(p types.StructuredProfile) string {
			if len(p.KeyHighlights) > 0 {
				return p.KeyHighlights[0]
			}
			if p.Lang == types.LangEN {
				return "A professional, high-impact design"
			}
			return "Design professionnel et impactant"
		},
	},
	{
		id:             "tpl_5",
		personalTitle:  "Studio Créatif",
		businessTitle:  "Studio Créatif",
		personalDomain: "studiocreatif.fr",
		businessDomain: "studiocreatif.fr",
		image:          "https://images.unsplash.com/photo-1574169208507-84376144848b?w=400&h=300&fit=crop",
		justify: func(p types.StructuredProfile) string {
			if len(p.KeyHighlights) > 1 {
				return p.KeyHighlights[1]
			}
			if p.Lang == types.LangEN {
				return "An authentic, personal approach"
			}
			return "Approche authentique et personnalisée"
		},
	},
}

// FallbackInspirations yields up to limit deterministic template entries for
// the classified audience category. Titles override to the profile site name
// where the template is generic, mirroring how the catalog personalizes rows.
func FallbackInspirations(p types.StructuredProfile, category profile.AudienceCategory, limit int) []types.Inspiration {
	out := make([]types.Inspiration, 0, limit)
	for _, tpl := range fallbackTemplates {
		if len(out) >= limit {
			break
		}
		title := tpl.businessTitle
		domain := tpl.businessDomain
		if category == profile.AudiencePersonal {
			title = tpl.personalTitle
			domain = tpl.personalDomain
		}
		if tpl.id == "tpl_3" && p.SiteName != "" {
			title = p.SiteName
		}
		out = append(out, types.Inspiration{
			ID:            tpl.id,
			Title:         title,
			Domain:        domain,
			Image:         tpl.image,
			Justification: tpl.justify(p),
		})
	}
	return out
}

// truncateRunes caps s at max runes, never splitting a multi-byte sequence,
// so accented French input keeps a valid UTF-8 tail.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	seen := 0
	for i := range s {
		if seen == max {
			return s[:i]
		}
		seen++
	}
	return s
}

func orDefault(value, frDefault, enDefault string, lang types.Language) string {
	if value != "" {
		return value
	}
	if lang == types.LangEN {
		return enDefault
	}
	return frDefault
}
