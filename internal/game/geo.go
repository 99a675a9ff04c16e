package game

import "math"

// Haversine calculates the great-circle distance in meters between two
// WGS84 coordinates.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := math.Pi / 180.0

	dLat := (lat2 - lat1) * toRad
	dLng := (lng2 - lng1) * toRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*toRad)*math.Cos(lat2*toRad)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * c
}

// DistanceBetween returns the haversine distance between two players'
// latest locations, or +Inf when either is unknown. Unknown distances
// never trigger catches and never win nearest comparisons.
func DistanceBetween(a, b *PlayerLocation) float64 {
	if a == nil || b == nil || a.Loc == nil || b.Loc == nil {
		return math.Inf(1)
	}
	return Haversine(a.Loc.Lat, a.Loc.Lng, b.Loc.Lat, b.Loc.Lng)
}

// ValidCoordinate reports whether lat/lng are finite and within WGS84
// bounds.
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
