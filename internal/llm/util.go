// Package llm - util.go provides shared utilities for completion response processing.
package llm

import "strings"

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// Models often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// ExtractJSONObject returns the first top-level {...} span in text, or the
// trimmed text when no braces are found. Models sometimes prefix JSON with
// chatter that survives fence stripping.
func ExtractJSONObject(text string) string {
	return extractSpan(CleanJSONBlock(text), '{', '}')
}

// ExtractJSONArray returns the first top-level [...] span in text, or the
// trimmed text when no brackets are found.
func ExtractJSONArray(text string) string {
	return extractSpan(CleanJSONBlock(text), '[', ']')
}

func extractSpan(text string, open, close byte) string {
	start := strings.IndexByte(text, open)
	if start < 0 {
		return text
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case c == open && !inString:
			depth++
		case c == close && !inString:
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	// Unbalanced; return from the opening delimiter and let the JSON
	// decoder report the real error.
	return text[start:]
}
