package class

import (
	"github.com/neuronlabs/errors"
)

var (
	// MjrNegotiation is the major error classification for content negotiation issues.
	MjrNegotiation errors.Major
	// MjrMiddleware is the major error classification for middlewares.
	MjrMiddleware errors.Major
)

func init() {
	registerNegotiationClasses()
	registerMiddlewareClasses()
}

var (
	// NegotiationFormatNotSupported is the error classification used when the request
	// explicitly asked for a format the endpoint never declared.
	NegotiationFormatNotSupported errors.Class

	// NegotiationNotAcceptable is the error classification used when no media range
	// in the Accept header matched any of the endpoint's declared formats.
	NegotiationNotAcceptable errors.Class

	// NegotiationNoAcceptedFormats is the error classification used when the caller
	// declared no accepted formats at all.
	NegotiationNoAcceptedFormats errors.Class
)

func registerNegotiationClasses() {
	MjrNegotiation = errors.MustNewMajor()

	MnrNegotiationFormat := errors.MustNewMinor(MjrNegotiation)
	IndexFormatNotSupported := errors.MustNewIndex(MjrNegotiation, MnrNegotiationFormat)
	NegotiationFormatNotSupported = errors.MustNewClass(MjrNegotiation, MnrNegotiationFormat, IndexFormatNotSupported)

	IndexNotAcceptable := errors.MustNewIndex(MjrNegotiation, MnrNegotiationFormat)
	NegotiationNotAcceptable = errors.MustNewClass(MjrNegotiation, MnrNegotiationFormat, IndexNotAcceptable)

	MnrNegotiationInput := errors.MustNewMinor(MjrNegotiation)
	IndexNoAcceptedFormats := errors.MustNewIndex(MjrNegotiation, MnrNegotiationInput)
	NegotiationNoAcceptedFormats = errors.MustNewClass(MjrNegotiation, MnrNegotiationInput, IndexNoAcceptedFormats)
}

var (
	// MiddlewareInvalidContentType is the error classification for requests carrying
	// an unsupported Content-Type media type.
	MiddlewareInvalidContentType errors.Class
)

func registerMiddlewareClasses() {
	MjrMiddleware = errors.MustNewMajor()

	mnrContentType := errors.MustNewMinor(MjrMiddleware)
	MiddlewareInvalidContentType = errors.MustNewMinorClass(MjrMiddleware, mnrContentType)
}
