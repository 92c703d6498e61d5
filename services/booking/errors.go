package booking

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnauthenticated     = errors.New("please login to book an appointment")
	ErrMissingTherapist    = errors.New("therapist information is missing")
	ErrAbandoned           = errors.New("request abandoned by caller")
	ErrDuplicateSubmission = errors.New("a booking for this therapist is already being submitted")
	ErrCancellationClosed  = errors.New("appointments can only be cancelled within 5 hours of booking")
)

// ValidationError carries one message per invalid draft field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
