package errors

import (
	"strconv"

	"github.com/neuronlabs/errors"
	"github.com/neuronlabs/jsonapi"

	"github.com/neuronlabs/content-negotiation/errors/class"
	"github.com/neuronlabs/content-negotiation/log"
)

// DefaultClassMapper is the default error classification mapper.
var DefaultClassMapper = &ClassMapper{
	Majors: map[errors.Major]Creator{
		class.MjrNegotiation: ErrNotAcceptable,
		class.MjrMiddleware:  ErrUnsupportedContentType,
	},
	Class: map[errors.Class]Creator{
		class.NegotiationFormatNotSupported: ErrUnsupportedFormat,
		class.NegotiationNotAcceptable:      ErrNotAcceptable,
		class.NegotiationNoAcceptedFormats:  ErrInternalError,
		class.MiddlewareInvalidContentType:  ErrUnsupportedContentType,
	},
}

// MapError maps the 'err' input error into slice of 'Error'.
// The function uses DefaultClassMapper for error mapping.
// The logic is the same as for DefaultClassMapper.Errors method.
func MapError(err error) []*jsonapi.Error {
	return DefaultClassMapper.errors(err)
}

// ClassMapper is the classified errors mapper.
// It creates the 'Error' from the provided error.
type ClassMapper struct {
	Majors map[errors.Major]Creator
	Minors map[errors.Minor]Creator
	Class  map[errors.Class]Creator
}

// Errors gets the slice of 'Error' from the provided 'err' error.
// The mapping is based on the 'most specific classification first' method.
// If the error is 'errors.ClassError' the function gets it's class.
// The function checks classification occurrence based on the priority:
//	- Class
//	- Minor
//	- Major
// If no mapping is provided for given classification - an internal error is returned.
func (c *ClassMapper) Errors(err error) []*jsonapi.Error {
	return c.errors(err)
}

func (c *ClassMapper) errors(err error) []*jsonapi.Error {
	switch et := err.(type) {
	case errors.ClassError:
		return []*jsonapi.Error{c.mapSingleError(et)}
	case errors.MultiError:
		var errs []*jsonapi.Error
		for _, single := range et {
			errs = append(errs, c.mapSingleError(single))
		}
		return errs
	default:
		log.Debugf("Unknown error: %+v", err)
	}
	return []*jsonapi.Error{ErrInternalError()}
}

// detailer is the interface for classified errors carrying diagnostic details
// without the full errors.DetailedError surface.
type detailer interface {
	Details() string
}

func (c *ClassMapper) mapSingleError(e errors.ClassError) *jsonapi.Error {
	// check if the class is stored in the mapper
	creator, ok := c.Class[e.Class()]
	if !ok {
		// otherwise check it's minor
		creator, ok = c.Minors[e.Class().Minor()]
		if !ok {
			// at last check it's major
			creator, ok = c.Majors[e.Class().Major()]
			if !ok {
				log.Errorf("Unmapped error provided: %v, with Class: %v", e, e.Class())
				return ErrInternalError()
			}
		}
	}

	err := creator()
	err.Code = strconv.FormatInt(int64(e.Class()), 16)
	switch det := e.(type) {
	case errors.DetailedError:
		err.Detail = det.Details()
		err.ID = det.ID().String()
	case detailer:
		err.Detail = det.Details()
	}
	return err
}
