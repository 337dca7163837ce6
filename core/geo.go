package core

import (
	"math"
	"strings"
	"unicode"
)

// earthRadiusKm is the mean Earth radius used by the great-circle
// approximation.
const earthRadiusKm = 6371.0

// toRadians converts degrees to radians.
func toRadians(degrees float64) float64 { return degrees * math.Pi / 180.0 }

// Haversine returns the great-circle distance between two coordinates
// in kilometers.
func Haversine(a, b Coordinates) float64 {
	lat1 := toRadians(a.Lat)
	lon1 := toRadians(a.Lon)
	lat2 := toRadians(b.Lat)
	lon2 := toRadians(b.Lon)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2.0)*math.Sin(dLat/2.0) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2.0)*math.Sin(dLon/2.0)
	c := 2.0 * math.Atan2(math.Sqrt(h), math.Sqrt(1.0-h))

	return earthRadiusKm * c
}

// Fold normalizes a string for search comparisons: lower-cased with all
// whitespace removed. Searches match on folded forms, so "SaoPaulo"
// finds "Sao Paulo".
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
