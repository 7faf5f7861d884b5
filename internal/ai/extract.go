package ai

import (
	"errors"
	"strings"
)

var errNoJSON = errors.New("no JSON payload found in model output")

// extractJSON pulls the first balanced JSON object or array out of raw model
// output. Models routinely wrap payloads in markdown fences or prose, so the
// fences are stripped first and everything outside the balanced span is
// ignored. open/close are '{'/'}' or '['/']'.
func extractJSON(raw string, open, close byte) (string, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.IndexByte(cleaned, open)
	if start < 0 {
		return "", errNoJSON
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(cleaned); i++ {
		c := cleaned[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return cleaned[start : i+1], nil
			}
		}
	}
	return "", errNoJSON
}

func extractObject(raw string) (string, error) {
	return extractJSON(raw, '{', '}')
}

func extractArray(raw string) (string, error) {
	return extractJSON(raw, '[', ']')
}
