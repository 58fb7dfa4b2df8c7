package domain

import "math"

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Valid reports whether both components are finite and within geographic
// range (lat in [-90, 90], lon in [-180, 180]).
func (c Coordinates) Valid() bool {
	for _, v := range []float64{c.Lat, c.Lon} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}
