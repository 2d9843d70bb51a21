// Package llmtext post-processes raw LLM output: best-effort JSON extraction
// from prose or markdown, whitespace sanitization, and keyword derivation.
package llmtext

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedBlockRe = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSON pulls a JSON payload out of LLM text that may be wrapped in
// prose or markdown fences. Priority order: direct parse, fenced code block,
// first-to-last bracket array span, first-to-last brace object span. The
// first matching candidate is parsed exactly once; if it is not valid JSON
// the result is nil and later tiers are not retried. Returns nil when no
// candidate parses.
func ExtractJSON(text string) json.RawMessage {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed)
	}

	candidate := extractCandidate(text)
	if candidate == "" {
		return nil
	}
	if !json.Valid([]byte(candidate)) {
		return nil
	}
	return json.RawMessage(candidate)
}

func extractCandidate(text string) string {
	if m := fencedBlockRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	// Greedy spans: first opening bracket to the last closing one, arrays
	// before objects, matching the extraction order of the original service.
	if start := strings.Index(text, "["); start != -1 {
		if end := strings.LastIndex(text, "]"); end > start {
			return text[start : end+1]
		}
	}
	if start := strings.Index(text, "{"); start != -1 {
		if end := strings.LastIndex(text, "}"); end > start {
			return text[start : end+1]
		}
	}
	return ""
}
