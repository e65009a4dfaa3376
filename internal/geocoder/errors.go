package geocoder

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a geocode lookup failed.
type ErrorKind int

const (
	// KindNetwork covers transport failures, HTTP errors and empty bodies.
	KindNetwork ErrorKind = iota
	// KindMalformed covers bodies that are not a recognizable geocode response.
	KindMalformed
)

func (k ErrorKind) String() string {
	if k == KindMalformed {
		return "malformed response"
	}
	return "network error"
}

// Error is returned by Client.Geocode. Both kinds abort the save that triggered the lookup.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geocoder: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("geocoder: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsGeocodeError reports whether err comes from a failed geocode lookup.
func IsGeocodeError(err error) bool {
	var geoErr *Error
	return errors.As(err, &geoErr)
}
