package errors

import (
	"net/http"
	"strconv"

	"github.com/neuronlabs/jsonapi"

	"github.com/neuronlabs/content-negotiation/log"
)

// MultiError is the multiple Error wrapper.
type MultiError []*jsonapi.Error

// Status gets the most significant api error status. An internal server error
// dominates; otherwise the highest status wins.
func (m MultiError) Status() int {
	var status int
	for _, err := range m {
		code, er := strconv.Atoi(err.Status)
		if er != nil {
			log.Warningf("Error: '%v' contains non integer status value", err)
			continue
		}
		if code == http.StatusInternalServerError {
			return code
		}
		if code > status {
			status = code
		}
	}
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return status
}
