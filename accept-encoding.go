package negotiation

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
)

// QualityValue is a single Accept-Encoding entry with its quality factor.
type QualityValue struct {
	// Value is the content coding name.
	Value string
	// Quality is the entry's q-value. Defaults to 1.0 when absent or unparsable.
	Quality float64
}

// ParseAcceptEncoding parses the Accept-Encoding header from 'h' into quality
// values sorted by descending quality. Entries sharing a quality keep their
// header order.
func ParseAcceptEncoding(h http.Header) []QualityValue {
	var values []QualityValue
	for _, line := range h[HeaderAcceptEncoding] {
		for _, entry := range strings.Split(line, ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}
			qv := QualityValue{Value: entry, Quality: 1.0}
			if semicolon := strings.IndexByte(entry, ';'); semicolon >= 0 {
				qv.Value = strings.TrimSpace(entry[:semicolon])
				for _, param := range strings.Split(entry[semicolon+1:], ";") {
					param = strings.TrimSpace(param)
					if strings.HasPrefix(param, "q=") || strings.HasPrefix(param, "Q=") {
						if q, err := strconv.ParseFloat(param[2:], 64); err == nil {
							qv.Quality = q
						}
					}
				}
			}
			if qv.Value == "" {
				continue
			}
			values = append(values, qv)
		}
	}
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Quality > values[j].Quality
	})
	return values
}
