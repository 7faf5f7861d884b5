package types

import (
	"encoding/json"
	"time"
)

// SiteType is the audience the wizard is building a site for.
type SiteType string

const (
	SitePersonal SiteType = "personal"
	SiteBusiness SiteType = "business"
)

// Language is the wizard locale. All generated user-facing text follows it.
type Language string

const (
	LangFR Language = "fr"
	LangEN Language = "en"
)

// ProjectStatus tracks wizard progress for a project.
type ProjectStatus string

const (
	StatusDraft     ProjectStatus = "draft"
	StatusCompleted ProjectStatus = "completed"
)

// Section is one planned block of the generated site. ID is usually one of
// hero/about/services/work/testimonials/contact but free-form ids are allowed.
type Section struct {
	ID        string         `json:"id"`
	Title     string         `json:"title,omitempty"`
	Content   SectionContent `json:"content,omitempty"`
	MediaHint string         `json:"mediaHint,omitempty"`
}

// SectionContent is either a single string or a list of strings on the wire.
// The model is free to return either shape, so unmarshalling accepts both.
type SectionContent []string

func (s *SectionContent) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*s = SectionContent{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = SectionContent(list)
	return nil
}

func (s SectionContent) MarshalJSON() ([]byte, error) {
	if len(s) == 1 {
		return json.Marshal(s[0])
	}
	return json.Marshal([]string(s))
}

// StructuredProfile is the structured description of the desired website,
// derived from the user's free-text answers either by the AI augmenter or by
// the deterministic fallback generator.
type StructuredProfile struct {
	SiteName       string    `json:"siteName"`
	Tagline        string    `json:"tagline"`
	Description    string    `json:"description"`
	Tone           string    `json:"tone"`
	Ambience       string    `json:"ambience"`
	PrimaryGoal    string    `json:"primaryGoal"`
	KeyHighlights  []string  `json:"keyHighlights"`
	RecommendedCTA string    `json:"recommendedCTA"`
	Colors         []string  `json:"colors"`
	Sections       []Section `json:"sections,omitempty"`
	Lang           Language  `json:"lang"`
}

// Inspiration is a reference example site shown to the user for style
// selection. Domain is display-only, never resolved.
type Inspiration struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Domain        string `json:"domain"`
	Image         string `json:"image"`
	Justification string `json:"justification"`
}

// GeneratedImage is one preview image of the final gallery. Type is either
// "overview" or "section"; SectionID is set only for section images.
type GeneratedImage struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	SectionID string `json:"sectionId,omitempty"`
	URL       string `json:"url"`
	Filename  string `json:"filename"`
}

const (
	ImageOverview = "overview"
	ImageSection  = "section"
)

// Project is the persisted unit of wizard state, addressable by numeric id
// internally and by opaque slug publicly.
type Project struct {
	ID                   int64              `json:"id"`
	Slug                 string             `json:"slug"`
	SiteType             SiteType           `json:"siteType"`
	DeepAnswers          *string            `json:"deepAnswers"`
	StructuredProfile    *StructuredProfile `json:"structuredProfile"`
	SelectedInspirations []Inspiration      `json:"selectedInspirations"`
	GeneratedImages      []GeneratedImage   `json:"generatedImages"`
	Language             Language           `json:"language"`
	Status               ProjectStatus      `json:"status"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}
