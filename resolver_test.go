package negotiation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRegistry tests the Registry resolver.
func TestRegistry(t *testing.T) {
	r := NewRegistry(
		MediaType{Name: "text/html", Synonyms: []string{"application/xhtml+xml"}, Extensions: []string{"html", "htm"}},
		MediaType{Name: "application/json", Extensions: []string{"json"}},
		// 'html' is already taken - text/html stays its canonical media type.
		MediaType{Name: "text/x-html-fragment", Extensions: []string{"html"}},
	)

	t.Run("Extensions", func(t *testing.T) {
		assert.Equal(t, []string{"html", "htm"}, r.Extensions("text", "html"))
		assert.Equal(t, []string{"json"}, r.Extensions("application", "json"))
	})

	t.Run("Synonym", func(t *testing.T) {
		assert.Equal(t, []string{"html", "htm"}, r.Extensions("application", "xhtml+xml"))
	})

	t.Run("Unknown", func(t *testing.T) {
		assert.Len(t, r.Extensions("image", "png"), 0)
	})

	t.Run("MimeType", func(t *testing.T) {
		assert.Equal(t, "text/html", r.MimeType("html"))
		assert.Equal(t, "text/html", r.MimeType("htm"))
		assert.Equal(t, "application/json", r.MimeType("json"))
		assert.Equal(t, "", r.MimeType("png"))
	})
}

// TestDefaultRegistry tests the DefaultRegistry table.
func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []string{"html"}, r.Extensions("text", "html"))
	assert.Equal(t, []string{"json"}, r.Extensions("application", "json"))
	assert.Equal(t, []string{"xml"}, r.Extensions("text", "xml"))
	assert.Equal(t, "text/csv", r.MimeType("csv"))
	assert.Equal(t, "application/vnd.api+json", r.MimeType("jsonapi"))
}
