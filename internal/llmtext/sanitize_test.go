package llmtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "hello world", Sanitize("hello\r\nworld"))
	assert.Equal(t, "a b c", Sanitize("  a \t b\n\n c  "))
	assert.Equal(t, "", Sanitize(""))
	assert.Equal(t, "", Sanitize("   \n  "))
}

func TestSanitize_Idempotent(t *testing.T) {
	once := Sanitize("Learn   Go\nthe hard\tway")
	assert.Equal(t, once, Sanitize(once))
}

func TestSanitizeAll(t *testing.T) {
	out := SanitizeAll([]string{" a\nb ", "c"})
	assert.Equal(t, []string{"a b", "c"}, out)

	assert.NotNil(t, SanitizeAll(nil))
	assert.Empty(t, SanitizeAll(nil))
}

func TestExtractKeywords(t *testing.T) {
	keywords := ExtractKeywords("The Quick Brown Fox and the Lazy Dog")

	assert.NotContains(t, keywords, "the")
	assert.NotContains(t, keywords, "and")
	for _, want := range []string{"quick", "brown", "fox", "lazy", "dog"} {
		assert.Contains(t, keywords, want)
	}
}

func TestExtractKeywords_StripsPunctuationAndDedupes(t *testing.T) {
	keywords := ExtractKeywords("Go, go, GO! Concurrency: goroutines & channels.")

	assert.Contains(t, keywords, "go")
	assert.Contains(t, keywords, "concurrency")
	assert.Contains(t, keywords, "goroutines")
	assert.Contains(t, keywords, "channels")

	count := 0
	for _, k := range keywords {
		if k == "go" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractKeywords_Empty(t *testing.T) {
	assert.Empty(t, ExtractKeywords(""))
	assert.Empty(t, ExtractKeywords("the and of to"))
}
