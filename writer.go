package negotiation

import (
	"compress/flate"
	"compress/gzip"
	"io"
	"net/http"

	"github.com/neuronlabs/brotli"

	"github.com/neuronlabs/content-negotiation/log"
)

// Writer returns the response writer negotiated from the request's
// Accept-Encoding header, choosing the most preferred supported content
// coding and setting the Content-Encoding header. The configured
// CompressionLevel is clamped to the chosen codec's valid range. The caller
// must close the returned writer when it implements io.WriteCloser, before
// any call to rw.WriteHeader.
func (n *Negotiator) Writer(rw http.ResponseWriter, req *http.Request) io.Writer {
	accepts := ParseAcceptEncoding(req.Header)

	w := io.Writer(rw)
	var err error

	for _, accept := range accepts {
		// q=0 marks the coding as not acceptable
		if accept.Quality == 0 {
			continue
		}
		compressionLevel := n.CompressionLevel
		switch accept.Value {
		case "gzip":
			switch {
			case compressionLevel == -1:
				compressionLevel = gzip.DefaultCompression
			case compressionLevel > gzip.BestCompression:
				compressionLevel = gzip.BestCompression
			case compressionLevel < gzip.BestSpeed:
				compressionLevel = gzip.BestSpeed
			}
			w, err = gzip.NewWriterLevel(rw, compressionLevel)
		case "deflate":
			switch {
			case compressionLevel == -1:
				compressionLevel = flate.DefaultCompression
			case compressionLevel > flate.BestCompression:
				compressionLevel = flate.BestCompression
			case compressionLevel < flate.BestSpeed:
				compressionLevel = flate.BestSpeed
			}
			w, err = flate.NewWriter(rw, compressionLevel)
		case "br":
			switch {
			case compressionLevel == -1:
				compressionLevel = brotli.DefaultCompression
			case compressionLevel > brotli.BestCompression:
				compressionLevel = brotli.BestCompression
			case compressionLevel < brotli.BestSpeed:
				compressionLevel = brotli.BestSpeed
			}
			w = brotli.NewWriterLevel(rw, compressionLevel)
		default:
			continue
		}
		if log.Level() == log.LDEBUG3 {
			log.Debug3f("Writer: '%s' with compression level: %d", accept.Value, compressionLevel)
		}
		rw.Header().Set(HeaderContentEncoding, accept.Value)
		break
	}

	if err != nil {
		log.Warningf("Can't create compressed writer: %v", err)
		w = rw
	}
	return w
}
