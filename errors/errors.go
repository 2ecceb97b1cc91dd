package errors

import (
	"github.com/neuronlabs/jsonapi"
)

// Creator is the function used to create new Error instance.
type Creator func() *jsonapi.Error

// ErrNotAcceptable creates the api error for requests whose Accept header
// matched none of the formats the endpoint produces.
func ErrNotAcceptable() *jsonapi.Error {
	return &jsonapi.Error{
		Title:  "Not acceptable",
		Status: "406",
	}
}

// ErrUnsupportedFormat creates the api error for requests that explicitly
// asked for a format the endpoint never declared.
func ErrUnsupportedFormat() *jsonapi.Error {
	return &jsonapi.Error{
		Title:  "Unsupported format requested",
		Status: "406",
	}
}

// ErrUnsupportedContentType creates the api error for requests carrying an
// unsupported Content-Type media type.
func ErrUnsupportedContentType() *jsonapi.Error {
	return &jsonapi.Error{
		Title:  "Unsupported media type",
		Status: "415",
	}
}

// ErrInternalError creates the generic internal server api error.
func ErrInternalError() *jsonapi.Error {
	return &jsonapi.Error{
		Title:  "Internal server error",
		Status: "500",
	}
}
