// Package domain contains the core data types for the travel emissions
// service. This package has zero heavy dependencies and is imported by every
// other internal package (geo, factors, ledger, service, handler).
package domain

import "math"

// Location is a named point in the fixed location registry.
// Coordinates are decimal degrees (WGS 84). The registry is immutable after
// startup; every location referenced by a trip or stay must resolve here.
type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Round2 rounds v to two decimal places.
// Distances (km) and emissions (kg CO2e) are reported at this precision
// throughout the service.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
