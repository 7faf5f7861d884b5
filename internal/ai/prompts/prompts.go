// Package prompts holds the chat prompt templates sent to the model. Keeping
// them in one place makes prompt tweaks reviewable without touching the
// augmenter control flow.
package prompts

import (
	"encoding/json"
	"fmt"

	"sitefactory/internal/types"
)

func languageName(lang types.Language) string {
	if lang == types.LangFR {
		return "French"
	}
	return "English"
}

// AnalyzeProfile asks the model to turn free-text wizard answers into a
// StructuredProfile-shaped JSON object.
func AnalyzeProfile(deepAnswers string, siteType types.SiteType, lang types.Language) string {
	return fmt.Sprintf(`
Analyze the following user input and generate a structured profile for a %s website in %s.

User input: "%s"

Generate a comprehensive website profile including:
- Appropriate site name based on the business/personal nature
- Compelling tagline
- Design tone and visual ambience
- Color palette that matches the industry/style
- Recommended sections with detailed content plans
- Media hints for each section (photos, illustrations, etc.)

Return a JSON object with the following structure:
{
  "siteName": "string - suggested site name based on user description",
  "tagline": "string - compelling tagline that captures essence",
  "description": "string - brief professional description",
  "tone": "string - design tone (modern, professional, playful, elegant, etc.)",
  "ambience": "string - detailed visual ambience description",
  "primaryGoal": "string - main goal of the website",
  "keyHighlights": ["3-5 key", "selling points", "or highlights"],
  "recommendedCTA": "string - compelling call to action text",
  "colors": ["primary #hex", "secondary #hex", "accent #hex"],
  "sections": [
    {
      "id": "hero|about|services|work|testimonials|contact",
      "title": "section title in appropriate language",
      "content": "detailed description of section content and purpose",
      "mediaHint": "specific type of media/imagery needed for this section"
    }
  ],
  "lang": "%s"
}

Respond with only the JSON object, no additional text.
`, siteType, languageName(lang), deepAnswers, lang)
}

// SuggestInspirations asks the model for count additional inspiration records
// matching the profile. The profile is embedded as indented JSON so the model
// sees every field the catalog matching saw.
func SuggestInspirations(p types.StructuredProfile, count int, personal bool) string {
	profileJSON, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		profileJSON = []byte("{}")
	}

	audience := "business/commercial"
	if personal {
		audience = "personal/portfolio"
	}

	return fmt.Sprintf(`
Based on this website profile, generate %d additional realistic website inspirations:

Profile: %s

Generate inspirations as a JSON array matching this structure:
[
  {
    "id": "unique_id",
    "title": "Realistic website title based on profile",
    "domain": "realistic-domain.com",
    "image": "https://images.unsplash.com/appropriate-image-url?w=400&h=300&fit=crop",
    "justification": "Specific reason why this inspiration matches the profile (in %s)"
  }
]

Requirements:
- Match the tone: %s
- Match the ambience: %s
- Align with the primary goal: %s
- Consider the industry/type: %s
- Use high-quality Unsplash images with proper parameters
- Provide specific, contextual justifications in %s

Respond with only the JSON array, no additional text.
`, count, profileJSON, languageName(p.Lang), p.Tone, p.Ambience, p.PrimaryGoal, audience, languageName(p.Lang))
}
