package geo

import "math"

// EarthRadiusKm is the mean spherical earth radius used by the haversine
// formula. No ellipsoidal correction is applied — city-to-city travel
// estimates do not need one.
const EarthRadiusKm = 6371.0

// haversine returns the great-circle distance in kilometres between two
// points given in decimal degrees:
//
//	a = sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlon/2)
//	c = 2·asin(√a)
//	d = c × EarthRadiusKm
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return c * EarthRadiusKm
}
