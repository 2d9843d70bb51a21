package llmtext

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_DirectParse(t *testing.T) {
	raw := ExtractJSON(`{"title": "Go Basics", "lessons": []}`)
	require.NotNil(t, raw)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "Go Basics", parsed["title"])
}

func TestExtractJSON_FencedBlock(t *testing.T) {
	text := "Here is your course:\n```json\n{\"title\": \"Go Basics\"}\n```\nLet me know if you need changes."
	raw := ExtractJSON(text)
	require.NotNil(t, raw)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "Go Basics", parsed["title"])
}

func TestExtractJSON_FencedBlockWithoutLanguageTag(t *testing.T) {
	text := "```\n[{\"question\": \"What is Go?\"}]\n```"
	raw := ExtractJSON(text)
	require.NotNil(t, raw)

	var parsed []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "What is Go?", parsed[0]["question"])
}

func TestExtractJSON_ArraySpan(t *testing.T) {
	text := `Sure! The questions are [{"q": 1}, {"q": 2}] as requested.`
	raw := ExtractJSON(text)
	require.NotNil(t, raw)

	var parsed []map[string]int
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Len(t, parsed, 2)
}

func TestExtractJSON_ObjectSpan(t *testing.T) {
	// No bracket characters anywhere, so only the object tier can match.
	text := `The course object is {"title": "Go"} and nothing else.`
	raw := ExtractJSON(text)
	require.NotNil(t, raw)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "Go", parsed["title"])
}

func TestExtractJSON_ArrayInsideObjectWinsOverObject(t *testing.T) {
	// An array span anywhere in the text takes priority over the enclosing
	// object, even when the array is just an empty field value. Inherited
	// from the extraction order of the legacy service.
	text := `The course object is {"title": "Go", "lessons": []} and nothing else.`
	raw := ExtractJSON(text)
	require.NotNil(t, raw)
	assert.Equal(t, "[]", string(raw))
}

func TestExtractJSON_ArrayPreferredOverObject(t *testing.T) {
	// The array span contains objects; extraction must return the array.
	text := `Questions: [{"q": "a"}, {"q": "b"}]`
	raw := ExtractJSON(text)
	require.NotNil(t, raw)

	var parsed []map[string]string
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Len(t, parsed, 2)
}

func TestExtractJSON_NoCandidate(t *testing.T) {
	assert.Nil(t, ExtractJSON("I could not generate a course for that topic."))
	assert.Nil(t, ExtractJSON(""))
	assert.Nil(t, ExtractJSON("   \n\t  "))
}

func TestExtractJSON_FencedBlockWithInvalidJSON(t *testing.T) {
	// A matched fence that does not parse yields nil; later tiers are not
	// retried once a candidate matched.
	text := "```json\n{not valid json}\n```"
	assert.Nil(t, ExtractJSON(text))
}

func TestExtractJSON_MalformedSpan(t *testing.T) {
	assert.Nil(t, ExtractJSON("this { is not } valid { json"))
}
