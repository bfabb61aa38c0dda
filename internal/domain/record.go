package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmissionRecord is one row in the emissions ledger: the aggregate outcome
// of a single completed calculation, plus the requester metadata it was
// submitted with. Records are append-only — never edited or deleted — and
// ordered by insertion.
type EmissionRecord struct {
	ID            uuid.UUID `json:"id"`
	RequesterID   string    `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	Department    string    `json:"department"`
	Purpose       string    `json:"purpose"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`

	TransportKg     float64 `json:"transport_kg"`
	AccommodationKg float64 `json:"accommodation_kg"`
	MealKg          float64 `json:"meal_kg"`
	TotalKg         float64 `json:"total_kg"`

	CreatedAt time.Time `json:"created_at"`
}

// LastCalculation is a consistent snapshot of the most recent submission:
// the three category subtotals, the total, and the itemized legs.
// The ledger replaces it wholesale on every Record call, and readers get
// all fields from under a single lock.
type LastCalculation struct {
	TransportKg     float64   `json:"transport_kg"`
	AccommodationKg float64   `json:"accommodation_kg"`
	MealKg          float64   `json:"meal_kg"`
	TotalKg         float64   `json:"total_kg"`
	Legs            []TripLeg `json:"legs"`
}
