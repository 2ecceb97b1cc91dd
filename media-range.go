package negotiation

import (
	"strconv"
	"strings"
)

// wildcard is the media range marker matching any type or subtype.
const wildcard = "*"

// anyMediaRange is the universal media range.
const anyMediaRange = wildcard + "/" + wildcard

// mediaRange is a single parsed entry of the Accept header.
type mediaRange struct {
	mimeType string
	subtype  string
	quality  float64
	raw      string
}

// parseMediaRange parses a single Accept header entry like
// "application/json;q=0.8". The second return value is false when the entry
// is not valid media range syntax.
func parseMediaRange(entry string) (mediaRange, bool) {
	mr := mediaRange{quality: 1.0, raw: strings.TrimSpace(entry)}

	params := strings.Split(mr.raw, ";")
	mediaType := strings.TrimSpace(params[0])

	slash := strings.IndexByte(mediaType, '/')
	if slash < 0 {
		return mediaRange{}, false
	}
	mr.mimeType = strings.TrimSpace(mediaType[:slash])
	mr.subtype = strings.TrimSpace(mediaType[slash+1:])
	if mr.mimeType == "" || mr.subtype == "" || strings.ContainsRune(mr.subtype, '/') {
		return mediaRange{}, false
	}

	for _, param := range params[1:] {
		param = strings.TrimSpace(param)
		if strings.HasPrefix(param, "q=") || strings.HasPrefix(param, "Q=") {
			// unparsable quality keeps the 1.0 default
			if q, err := strconv.ParseFloat(param[2:], 64); err == nil {
				mr.quality = q
			}
		}
	}
	return mr, true
}
