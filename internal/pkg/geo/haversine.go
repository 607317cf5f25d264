package geo

import "math"

const earthRadiusKm = 6371

func degreesToRadians(deg float64) float64 {
	return math.Pi / 180 * deg
}

// Haversine returns the great-circle distance in kilometers between two
// points given as (latitude, longitude) pairs in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(lat1))*math.Cos(degreesToRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
