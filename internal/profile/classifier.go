package profile

import (
	"strings"

	"sitefactory/internal/types"
)

// AudienceCategory distinguishes portfolio-like sites from commercial ones.
type AudienceCategory string

const (
	AudiencePersonal AudienceCategory = "personal"
	AudienceBusiness AudienceCategory = "business"
)

// Signals are the coarse categorical tags derived from a profile. They drive
// curated pool and catalog selection and are recomputed on every request,
// never persisted, so classification always reflects the latest profile text.
type Signals struct {
	AudienceCategory AudienceCategory
	Industry         string
	Style            string
	ColorTone        string
}

const (
	IndustryNone = "none"
	StyleModern  = "modern"

	ToneWarm    = "warm"
	ToneCool    = "cool"
	ToneNeutral = "neutral"
)

// keywordRule maps a group of trigger substrings to a label. Rules are
// evaluated in slice order and the first match wins, so priority is encoded
// by position, not by nested conditionals.
type keywordRule struct {
	Keywords []string
	Label    string
}

// industryRules scan the profile description. Order matters: "digital" is a
// tech trigger, so e.g. "conseil en stratégie digitale" classifies as tech
// even though it also mentions consulting.
var industryRules = []keywordRule{
	{Keywords: []string{"tech", "software", "digital"}, Label: "tech"},
	{Keywords: []string{"design", "creative", "art"}, Label: "creative"},
	{Keywords: []string{"consulting", "conseil"}, Label: "consulting"},
	{Keywords: []string{"restaurant", "food"}, Label: "food"},
	{Keywords: []string{"shop", "boutique", "commerce"}, Label: "ecommerce"},
	{Keywords: []string{"health", "wellness", "fitness"}, Label: "wellness"},
	{Keywords: []string{"photo"}, Label: "photography"},
	{Keywords: []string{"agency", "agence"}, Label: "agency"},
}

// styleRules scan tone and ambience together.
var styleRules = []keywordRule{
	{Keywords: []string{"minimal", "épuré"}, Label: "minimal"},
	{Keywords: []string{"creative", "artistic", "créatif"}, Label: "creative"},
	{Keywords: []string{"corporate", "professionnel"}, Label: "corporate"},
	{Keywords: []string{"modern", "moderne"}, Label: StyleModern},
	{Keywords: []string{"elegant", "élégant"}, Label: "elegant"},
}

// Color tone indicators. The hex prefixes are a deliberately coarse
// approximation of the leading nibble: a value like "#1a73e8" reads as cool
// even though it could belong to any hue family. Known imprecision, kept
// as-is pending a product decision.
var (
	warmColorNames = []string{"red", "orange", "yellow"}
	warmHexPrefix  = []string{"#f", "#e"}
	coolColorNames = []string{"blue", "green", "purple"}
	coolHexPrefix  = []string{"#3", "#0", "#1"}
)

// Classify derives the categorical signals for a profile.
func Classify(p types.StructuredProfile) Signals {
	return Signals{
		AudienceCategory: classifyAudience(p),
		Industry:         firstMatch(industryRules, strings.ToLower(p.Description), IndustryNone),
		Style:            classifyStyle(p),
		ColorTone:        classifyColorTone(p.Colors),
	}
}

// classifyAudience looks for the language-invariant "portfolio" token in the
// fields a portfolio site would mention it.
func classifyAudience(p types.StructuredProfile) AudienceCategory {
	for _, field := range []string{p.SiteName, p.Tone, p.PrimaryGoal} {
		if strings.Contains(strings.ToLower(field), "portfolio") {
			return AudiencePersonal
		}
	}
	return AudienceBusiness
}

func classifyStyle(p types.StructuredProfile) string {
	haystack := strings.ToLower(p.Tone) + " " + strings.ToLower(p.Ambience)
	return firstMatch(styleRules, haystack, StyleModern)
}

func classifyColorTone(colors []string) string {
	if len(colors) == 0 {
		return ToneNeutral
	}
	first := strings.ToLower(colors[0])
	if containsAny(first, warmColorNames) || hasAnyPrefix(first, warmHexPrefix) {
		return ToneWarm
	}
	if containsAny(first, coolColorNames) || hasAnyPrefix(first, coolHexPrefix) {
		return ToneCool
	}
	return ToneNeutral
}

func firstMatch(rules []keywordRule, haystack, fallback string) string {
	for _, rule := range rules {
		if containsAny(haystack, rule.Keywords) {
			return rule.Label
		}
	}
	return fallback
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
