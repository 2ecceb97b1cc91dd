package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neuronlabs/jsonapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	negotiation "github.com/neuronlabs/content-negotiation"
)

// TestNegotiated tests the Negotiated middleware.
func TestNegotiated(t *testing.T) {
	n := negotiation.New(negotiation.DefaultRegistry())

	var chosen string
	handler := http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		chosen = negotiation.Format(req)
		rw.WriteHeader(http.StatusOK)
	})

	t.Run("Chosen", func(t *testing.T) {
		chosen = ""
		req, err := http.NewRequest("GET", "/houses", nil)
		require.NoError(t, err)
		req.Header.Add("Accept", "text/html;q=0.8, application/json;q=0.9")

		resp := httptest.NewRecorder()
		Negotiated(n, "html", "json")(handler).ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "json", chosen)
		assert.Equal(t, "Accept", resp.Header().Get("Vary"))
	})

	t.Run("ExplicitFormat", func(t *testing.T) {
		chosen = ""
		req, err := http.NewRequest("GET", "/houses?_format=json", nil)
		require.NoError(t, err)
		req.Header.Add("Accept", "text/html")

		resp := httptest.NewRecorder()
		Negotiated(n, "html", "json")(handler).ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "json", chosen)
	})

	t.Run("ExplicitFormatNotSupported", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/houses?_format=csv", nil)
		require.NoError(t, err)

		resp := httptest.NewRecorder()
		Negotiated(n, "html", "json")(handler).ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotAcceptable, resp.Code)
		assert.Equal(t, jsonapi.MediaType, resp.Header().Get("Content-Type"))
		assert.Contains(t, resp.Body.String(), "csv")
	})

	t.Run("NotAcceptable", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/houses", nil)
		require.NoError(t, err)
		req.Header.Add("Accept", "application/x-protobuf")

		resp := httptest.NewRecorder()
		Negotiated(n, "html", "json")(handler).ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotAcceptable, resp.Code)
		assert.Equal(t, jsonapi.MediaType, resp.Header().Get("Content-Type"))
		assert.Contains(t, resp.Body.String(), "accepted formats: html, json")
		assert.Contains(t, resp.Body.String(), "application/x-protobuf")
	})

	t.Run("NoAcceptHeader", func(t *testing.T) {
		chosen = ""
		req, err := http.NewRequest("GET", "/houses", nil)
		require.NoError(t, err)

		resp := httptest.NewRecorder()
		Negotiated(n, "html", "json")(handler).ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "html", chosen)
	})
}

// TestRequireContentType tests the RequireContentType middleware.
func TestRequireContentType(t *testing.T) {
	handler := http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusNoContent)
	})

	t.Run("Valid", func(t *testing.T) {
		req, err := http.NewRequest("POST", "/houses", nil)
		require.NoError(t, err)
		req.Header.Add("Content-Type", jsonapi.MediaType)

		resp := httptest.NewRecorder()
		RequireContentType(jsonapi.MediaType)(handler).ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNoContent, resp.Code)
	})

	t.Run("WithParameters", func(t *testing.T) {
		req, err := http.NewRequest("POST", "/houses", nil)
		require.NoError(t, err)
		req.Header.Add("Content-Type", "application/json; charset=utf-8")

		resp := httptest.NewRecorder()
		RequireContentType("application/json")(handler).ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNoContent, resp.Code)
	})

	t.Run("Invalid", func(t *testing.T) {
		req, err := http.NewRequest("POST", "/houses", nil)
		require.NoError(t, err)
		req.Header.Add("Content-Type", "text/plain")

		resp := httptest.NewRecorder()
		RequireContentType(jsonapi.MediaType)(handler).ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, resp.Code)
	})
}
