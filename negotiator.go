package negotiation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/neuronlabs/errors"

	"github.com/neuronlabs/content-negotiation/errors/class"
	"github.com/neuronlabs/content-negotiation/log"
)

// Negotiator chooses the response format for a request from the formats an
// endpoint declares it can produce. It is a pure decision function over its
// inputs and is safe for concurrent use, provided its Resolver is.
type Negotiator struct {
	// Resolver maps media types to format tokens and back.
	Resolver ExtensionResolver
	// CompressionLevel defines the compression level for negotiated response writers.
	CompressionLevel int
}

// New creates new Negotiator with the provided resolver.
func New(resolver ExtensionResolver) *Negotiator {
	return &Negotiator{
		Resolver:         resolver,
		CompressionLevel: -1,
	}
}

// Negotiate chooses one of the 'accepted' formats for a request.
//
// A non-empty 'explicitFormat' (conventionally the '_format' query parameter)
// overrides the Accept header entirely: it is chosen when listed in 'accepted'
// and refused otherwise. With no explicit format, an empty 'acceptHeader' or
// one starting with the universal '*/*' range chooses the first accepted
// format. Otherwise the first Accept header line is parsed into media ranges;
// entries that are not valid media range syntax are dropped. A q=1.0 entry
// that matches while scanning in header order wins immediately; failing that,
// the entries are ranked by descending quality (ties keep the raw entry text
// order) and the first match wins.
//
// The returned format is always a member of 'accepted'. The returned error is
// a *Refusal when negotiation failed, carrying every considered entry for
// diagnostics.
func (n *Negotiator) Negotiate(explicitFormat string, acceptHeader []string, accepted []string) (string, error) {
	if len(accepted) == 0 {
		return "", errors.NewDet(class.NegotiationNoAcceptedFormats, "no accepted formats declared for negotiation")
	}

	if explicitFormat != "" {
		for _, format := range accepted {
			if format == explicitFormat {
				return explicitFormat, nil
			}
		}
		return "", &Refusal{
			Accepted: accepted,
			Format:   explicitFormat,
			class:    class.NegotiationFormatNotSupported,
		}
	}

	if len(acceptHeader) == 0 || strings.TrimSpace(acceptHeader[0]) == anyMediaRange {
		return accepted[0], nil
	}

	entries := strings.Split(acceptHeader[0], ",")
	candidates := make([]candidate, 0, len(entries))
	for _, entry := range entries {
		mr, ok := parseMediaRange(entry)
		if !ok {
			log.Debug3f("Skipping malformed media range: '%s'", entry)
			continue
		}
		c := candidate{quality: mr.quality, raw: mr.raw, exts: n.extensionSet(mr)}
		if mr.quality == 1.0 {
			if format, ok := n.findFormat(c.exts, accepted); ok {
				log.Debug2f("Media range: '%s' matched format: '%s'", mr.raw, format)
				return format, nil
			}
		}
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].quality != candidates[j].quality {
			return candidates[i].quality > candidates[j].quality
		}
		return candidates[i].raw < candidates[j].raw
	})

	for _, c := range candidates {
		if format, ok := n.findFormat(c.exts, accepted); ok {
			log.Debug2f("Media range: '%s' matched format: '%s'", c.raw, format)
			return format, nil
		}
	}

	refusal := &Refusal{Accepted: accepted, class: class.NegotiationNotAcceptable}
	for _, c := range candidates {
		refusal.Attempted = append(refusal.Attempted, Candidate{
			Raw:        c.raw,
			Quality:    c.quality,
			Extensions: c.exts.list(),
		})
	}
	return "", refusal
}

// candidate is a parsed Accept header entry awaiting ranking.
type candidate struct {
	quality float64
	raw     string
	exts    extensionSet
}

// extensionSet describes the accepted formats a media range can serve: the
// universal wildcard, any subtype of a given type, or a finite token set
// resolved from the registry.
type extensionSet struct {
	universal bool
	anyOfType string
	tokens    []string
}

func (n *Negotiator) extensionSet(mr mediaRange) extensionSet {
	switch {
	case mr.mimeType == wildcard && mr.subtype == wildcard:
		return extensionSet{universal: true}
	case mr.subtype == wildcard:
		return extensionSet{anyOfType: mr.mimeType}
	default:
		return extensionSet{tokens: n.Resolver.Extensions(mr.mimeType, mr.subtype)}
	}
}

// findFormat matches 'exts' against the 'accepted' formats. The universal
// wildcard yields the caller's top preference; a finite set yields its first
// token present in 'accepted'; an any-subtype marker yields the first accepted
// format whose canonical media type has the marker's top-level type.
func (n *Negotiator) findFormat(exts extensionSet, accepted []string) (string, bool) {
	switch {
	case exts.universal:
		return accepted[0], true
	case exts.anyOfType != "":
		for _, format := range accepted {
			mimeType := n.Resolver.MimeType(format)
			if slash := strings.IndexByte(mimeType, '/'); slash >= 0 && mimeType[:slash] == exts.anyOfType {
				return format, true
			}
		}
	default:
		for _, token := range exts.tokens {
			for _, format := range accepted {
				if token == format {
					return token, true
				}
			}
		}
	}
	return "", false
}

func (e extensionSet) list() []string {
	switch {
	case e.universal:
		return []string{anyMediaRange}
	case e.anyOfType != "":
		return []string{e.anyOfType + "/" + wildcard}
	default:
		return e.tokens
	}
}

// Candidate is a considered Accept header entry carried in a Refusal.
type Candidate struct {
	// Raw is the header entry as received.
	Raw string
	// Quality is the entry's q-value.
	Quality float64
	// Extensions are the format tokens the entry resolved to; wildcard ranges
	// list their range expression instead.
	Extensions []string
}

// Refusal is the negotiation failure outcome: either the explicitly requested
// format is not produced by the endpoint, or no Accept header entry matched.
// It implements errors.ClassError so that it maps onto HTTP responses the same
// way as other classified errors.
type Refusal struct {
	// Accepted are the formats the endpoint declared it can produce.
	Accepted []string
	// Attempted are the considered header entries, in ranked order.
	Attempted []Candidate
	// Format is the explicitly requested format. It is set only when the
	// refusal came from the explicit format override.
	Format string

	class errors.Class
}

// compile time check for the errors.ClassError.
var _ errors.ClassError = &Refusal{}

// Class implements errors.ClassError.
func (r *Refusal) Class() errors.Class {
	return r.class
}

// Error implements error.
func (r *Refusal) Error() string {
	return r.Details()
}

// Details returns the diagnostic message enumerating the accepted formats and
// every considered header entry with the extensions it resolved to.
func (r *Refusal) Details() string {
	if r.Format != "" {
		return fmt.Sprintf("format: '%s' is not provided by this endpoint - accepted formats: %s",
			r.Format, strings.Join(r.Accepted, ", "))
	}
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "no acceptable media range - accepted formats: %s", strings.Join(r.Accepted, ", "))
	for _, c := range r.Attempted {
		fmt.Fprintf(&sb, "; '%s' => [%s]", c.Raw, strings.Join(c.Extensions, ", "))
	}
	return sb.String()
}
