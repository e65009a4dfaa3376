package models

// GeocodeStatus tags the variant of a GeocodeResult.
type GeocodeStatus int

const (
	GeocodeError GeocodeStatus = iota
	GeocodeOK
	GeocodeZeroResults
)

func (s GeocodeStatus) String() string {
	switch s {
	case GeocodeOK:
		return "OK"
	case GeocodeZeroResults:
		return "ZERO_RESULTS"
	default:
		return "ERROR"
	}
}

// GeocodeResult is the geocoding provider's answer reduced to what the widget needs.
// Lat and Lon are only meaningful when Status is GeocodeOK.
type GeocodeResult struct {
	Status GeocodeStatus
	Lat    float64
	Lon    float64
}
