package negotiation

const (
	// HeaderAccept is the HTTP header name for acceptable media types.
	HeaderAccept = "Accept"
	// HeaderAcceptEncoding is the HTTP header name for acceptable content encodings.
	HeaderAcceptEncoding = "Accept-Encoding"
	// HeaderContentType is the HTTP header name for the payload media type.
	HeaderContentType = "Content-Type"
	// HeaderContentEncoding is the HTTP header name for the payload encoding.
	HeaderContentEncoding = "Content-Encoding"
	// HeaderVary is the HTTP header name listing the request headers the response varies on.
	HeaderVary = "Vary"
)

// QueryParamFormat is the query parameter that explicitly selects the response format.
const QueryParamFormat = "_format"
