package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sitefactory/internal/types"
)

func TestClassifyAudience(t *testing.T) {
	tests := []struct {
		name    string
		profile types.StructuredProfile
		want    AudienceCategory
	}{
		{
			name:    "no portfolio token anywhere",
			profile: types.StructuredProfile{SiteName: "Acme Conseil", Tone: "corporate", PrimaryGoal: "Win clients"},
			want:    AudienceBusiness,
		},
		{
			name:    "portfolio in site name",
			profile: types.StructuredProfile{SiteName: "Mon Portfolio", Tone: "moderne"},
			want:    AudiencePersonal,
		},
		{
			name:    "portfolio in primary goal, mixed case",
			profile: types.StructuredProfile{SiteName: "Jane Doe", PrimaryGoal: "Show my PORTFOLIO to recruiters"},
			want:    AudiencePersonal,
		},
		{
			name:    "portfolio in tone",
			profile: types.StructuredProfile{Tone: "personal portfolio vibe"},
			want:    AudiencePersonal,
		},
		{
			name:    "portfolio only in description does not count",
			profile: types.StructuredProfile{Description: "a portfolio of investments"},
			want:    AudienceBusiness,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.profile).AudienceCategory)
		})
	}
}

func TestClassifyIndustryPriorityOrder(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"tech keyword", "We build software for hospitals", "tech"},
		{"digital beats consulting", "agence de conseil en stratégie digitale", "tech"},
		{"consulting without tech tokens", "cabinet de conseil en management", "consulting"},
		{"creative", "art direction and design studio", "creative"},
		{"food", "restaurant gastronomique à Lyon", "food"},
		{"ecommerce", "une boutique de vêtements vintage", "ecommerce"},
		{"wellness", "yoga and fitness coaching", "wellness"},
		{"photography", "photographe de mariage", "photography"},
		{"agency", "agence de communication", "agency"},
		{"no match", "plumbing services", IndustryNone},
		{"empty description", "", IndustryNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(types.StructuredProfile{Description: tt.description})
			assert.Equal(t, tt.want, got.Industry)
		})
	}
}

func TestClassifyStyle(t *testing.T) {
	tests := []struct {
		name     string
		tone     string
		ambience string
		want     string
	}{
		{"minimal in tone", "minimaliste", "", "minimal"},
		{"épuré in ambience", "", "style épuré et aéré", "minimal"},
		{"creative", "créatif", "", "creative"},
		{"corporate via professionnel", "", "professionnel et sérieux", "corporate"},
		{"modern", "moderne", "", StyleModern},
		{"elegant", "élégant", "", "elegant"},
		{"minimal beats elegant", "minimal et élégant", "", "minimal"},
		{"default when nothing matches", "chaleureux", "convivial", StyleModern},
		{"empty defaults to modern", "", "", StyleModern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(types.StructuredProfile{Tone: tt.tone, Ambience: tt.ambience})
			assert.Equal(t, tt.want, got.Style)
		})
	}
}

func TestClassifyColorTone(t *testing.T) {
	tests := []struct {
		name   string
		colors []string
		want   string
	}{
		{"empty colors", nil, ToneNeutral},
		{"warm name", []string{"orange"}, ToneWarm},
		{"warm hex prefix", []string{"#EF4444"}, ToneWarm},
		{"cool name", []string{"Blue"}, ToneCool},
		{"cool hex prefix", []string{"#3B82F6"}, ToneCool},
		{"hex zero prefix", []string{"#0f172a"}, ToneCool},
		{"neutral hex", []string{"#8B5CF6"}, ToneNeutral},
		{"only first color counts", []string{"#999999", "red"}, ToneNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(types.StructuredProfile{Colors: tt.colors})
			assert.Equal(t, tt.want, got.ColorTone)
		})
	}
}
