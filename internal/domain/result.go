package domain

// TripLeg is one computed transport segment of a calculation.
// DistanceKm and EmissionKg are both rounded to two decimal places at
// creation; a leg is immutable once computed.
type TripLeg struct {
	From       string        `json:"from"`
	To         string        `json:"to"`
	Mode       TransportMode `json:"mode"`
	Class      TravelClass   `json:"class,omitempty"`
	Passengers int           `json:"passengers"`
	DistanceKm float64       `json:"distance_km"`
	EmissionKg float64       `json:"emission_kg"`
}

// CalculationResult is the full outcome of one Compute call.
//
// TransportKg is the sum of the already-rounded per-leg emissions, so the
// subtotal always matches the itemized legs exactly. AccommodationKg and
// MealKg accumulate unrounded and are rounded once here. TotalKg is the
// rounded sum of the three subtotals.
type CalculationResult struct {
	TransportKg     float64   `json:"transport_kg"`
	AccommodationKg float64   `json:"accommodation_kg"`
	MealKg          float64   `json:"meal_kg"`
	TotalKg         float64   `json:"total_kg"`
	Legs            []TripLeg `json:"legs"`
}
