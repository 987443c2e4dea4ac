package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParseCoordinate parses a "<lat>/<lon>" string. Exactly two components are
// required and each must parse to a finite, non-NaN number. No whitespace
// trimming and no range validation is applied.
func ParseCoordinate(raw string) (Coordinate, error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return Coordinate{}, ErrInvalidCoordinateFormat
	}

	lat, err := parseFinite(parts[0])
	if err != nil {
		return Coordinate{}, err
	}
	lon, err := parseFinite(parts[1])
	if err != nil {
		return Coordinate{}, err
	}

	return Coordinate{Lat: lat, Lon: lon}, nil
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidCoordinateFormat
	}
	return v, nil
}
