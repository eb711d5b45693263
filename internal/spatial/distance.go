package spatial

import (
	"github.com/golang/geo/s2"
)

// Point is a WGS-84 coordinate in decimal degrees
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceMiles calculates the great-circle distance between two points in miles
// using the Haversine formula. Out-of-range coordinates are not validated.
func DistanceMiles(a, b Point) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * EarthRadiusMiles
}

// WithinRadius reports whether p lies within radiusMiles of center (inclusive)
func WithinRadius(center, p Point, radiusMiles float64) (float64, bool) {
	d := DistanceMiles(center, p)
	return d, d <= radiusMiles
}

// KmToMiles converts kilometers to miles
func KmToMiles(km float64) float64 {
	return km * KmToMilesFactor
}

// MilesToKm converts miles to kilometers
func MilesToKm(miles float64) float64 {
	return miles * MilesToKmFactor
}

// Constants
const (
	EarthRadiusMiles = 3958.8 // Earth's mean radius in miles

	KmToMilesFactor = 0.621371
	MilesToKmFactor = 1.609344
)
