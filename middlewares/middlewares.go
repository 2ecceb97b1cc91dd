package middlewares

import (
	"io"
	"net/http"
	"strings"

	"github.com/neuronlabs/jsonapi"

	negotiation "github.com/neuronlabs/content-negotiation"
	handlerErrors "github.com/neuronlabs/content-negotiation/errors"
	"github.com/neuronlabs/content-negotiation/log"
)

// Middleware is the function used as a http.Handler.
type Middleware func(next http.Handler) http.Handler

// Negotiated is the middleware that chooses the response format for each
// request from the '_format' query parameter and the Accept header, against
// the 'accepted' formats the endpoint declares. The chosen format is stored
// in the request context and read back with negotiation.Format. When no
// format is acceptable the middleware responds with '406 Not Acceptable'
// carrying the negotiation diagnostics.
func Negotiated(n *negotiation.Negotiator, accepted ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			rw.Header().Add(negotiation.HeaderVary, negotiation.HeaderAccept)

			explicit := req.URL.Query().Get(negotiation.QueryParamFormat)
			format, err := n.Negotiate(explicit, req.Header[negotiation.HeaderAccept], accepted)
			if err != nil {
				marshalErrors(n, rw, req, 0, handlerErrors.MapError(err)...)
				return
			}
			log.Debug3f("Negotiated format: '%s'", format)
			next.ServeHTTP(rw, req.WithContext(negotiation.CtxWithFormat(req.Context(), format)))
		})
	}
}

// RequireContentType is the middleware that checks if the request contains
// Header "Content-Type" with a media type equal to 'mediaType', and answers
// '415 Unsupported Media Type' otherwise.
func RequireContentType(mediaType string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			contentType := req.Header.Get(negotiation.HeaderContentType)
			if semicolon := strings.IndexByte(contentType, ';'); semicolon >= 0 {
				contentType = contentType[:semicolon]
			}
			if strings.TrimSpace(contentType) != mediaType {
				rw.WriteHeader(http.StatusUnsupportedMediaType)
				return
			}
			next.ServeHTTP(rw, req)
		})
	}
}

func marshalErrors(n *negotiation.Negotiator, rw http.ResponseWriter, req *http.Request, status int, errs ...*jsonapi.Error) {
	rw.Header().Set(negotiation.HeaderContentType, jsonapi.MediaType)

	if status == 0 {
		status = handlerErrors.MultiError(errs).Status()
	}

	// the writer sets Content-Encoding, so it must precede WriteHeader
	w := n.Writer(rw, req)
	rw.WriteHeader(status)
	defer func() {
		wc, ok := w.(io.WriteCloser)
		if ok {
			if err := wc.Close(); err != nil {
				log.Debugf("Closing Writer failed: %v", err)
			}
		}
	}()

	err := jsonapi.MarshalErrors(w, errs...)
	if err != nil {
		log.Errorf("Marshaling errors: '%v' failed: %v", errs, err)
	}
}
