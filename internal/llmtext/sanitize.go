package llmtext

import "strings"

// stopwords excluded from derived keyword lists.
var stopwords = map[string]bool{
	"the": true, "and": true, "of": true, "to": true, "in": true,
	"a": true, "is": true, "for": true, "on": true, "with": true,
	"as": true, "by": true, "an": true, "at": true, "from": true,
	"that": true, "this": true, "it": true, "be": true, "are": true,
	"or": true,
}

// Sanitize collapses all whitespace and newline runs to single spaces and
// trims. Idempotent: sanitizing already-sanitized text is a no-op.
func Sanitize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// SanitizeAll sanitizes each element of a slice, always returning a non-nil
// slice.
func SanitizeAll(texts []string) []string {
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		out = append(out, Sanitize(t))
	}
	return out
}

// ExtractKeywords derives search keywords from free text: lowercase, strip
// non-alphanumeric characters (keeping spaces), split, drop stopwords,
// deduplicate. Used as a fallback when the LLM omits searchKeywords.
func ExtractKeywords(text string) []string {
	if text == "" {
		return []string{}
	}

	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}

	seen := make(map[string]bool)
	keywords := []string{}
	for _, word := range strings.Fields(b.String()) {
		if stopwords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}
	return keywords
}
