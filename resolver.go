package negotiation

// ExtensionResolver resolves media types into the format tokens a server may
// produce for them, and format tokens back into their canonical media type.
// Implementations must be safe for concurrent use.
type ExtensionResolver interface {
	// Extensions returns the format tokens recognized for the media type
	// 'mimeType/subtype' in preference order. Unknown media types resolve
	// to an empty slice.
	Extensions(mimeType, subtype string) []string
	// MimeType returns the canonical 'type/subtype' media type for the given
	// format token, or an empty string if the token is unknown.
	MimeType(format string) string
}

// MediaType is a single Registry entry.
type MediaType struct {
	// Name is the canonical 'type/subtype' value of the media type.
	Name string
	// Synonyms are alternative 'type/subtype' values resolving to the same formats.
	Synonyms []string
	// Extensions are the format tokens recognized for this media type, in preference order.
	Extensions []string
}

// Registry is an immutable, table-backed ExtensionResolver. It is built once
// with NewRegistry and never mutated afterwards, so it requires no locking.
type Registry struct {
	extensions map[string][]string
	mimeTypes  map[string]string
}

// compile time check for the ExtensionResolver.
var _ ExtensionResolver = &Registry{}

// NewRegistry creates the Registry for the provided media types. When multiple
// media types list the same format token, the token's canonical media type is
// the Name of the first entry that listed it.
func NewRegistry(types ...MediaType) *Registry {
	r := &Registry{
		extensions: make(map[string][]string),
		mimeTypes:  make(map[string]string),
	}
	for _, mt := range types {
		r.extensions[mt.Name] = mt.Extensions
		for _, synonym := range mt.Synonyms {
			r.extensions[synonym] = mt.Extensions
		}
		for _, extension := range mt.Extensions {
			if _, ok := r.mimeTypes[extension]; !ok {
				r.mimeTypes[extension] = mt.Name
			}
		}
	}
	return r
}

// Extensions implements ExtensionResolver.
func (r *Registry) Extensions(mimeType, subtype string) []string {
	return r.extensions[mimeType+"/"+subtype]
}

// MimeType implements ExtensionResolver.
func (r *Registry) MimeType(format string) string {
	return r.mimeTypes[format]
}

// DefaultRegistry creates the Registry with the conventional web media types.
func DefaultRegistry() *Registry {
	return NewRegistry(
		MediaType{Name: "text/html", Synonyms: []string{"application/xhtml+xml"}, Extensions: []string{"html"}},
		MediaType{Name: "text/plain", Extensions: []string{"txt"}},
		MediaType{Name: "application/json", Extensions: []string{"json"}},
		MediaType{Name: "application/vnd.api+json", Extensions: []string{"jsonapi"}},
		MediaType{Name: "application/xml", Synonyms: []string{"text/xml"}, Extensions: []string{"xml"}},
		MediaType{Name: "text/javascript", Synonyms: []string{"application/javascript"}, Extensions: []string{"js"}},
		MediaType{Name: "text/csv", Extensions: []string{"csv"}},
		MediaType{Name: "application/x-www-form-urlencoded", Extensions: []string{"form"}},
	)
}
