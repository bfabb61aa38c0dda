package domain

import "time"

// TripInput is one transport segment as entered by the caller.
// From and To must be names present in the location registry.
// Class is only meaningful when Mode is ModeFlight.
type TripInput struct {
	From       string
	To         string
	Mode       TransportMode
	Class      TravelClass
	Passengers int
}

// StayInput is one hotel stay as entered by the caller.
type StayInput struct {
	Location string
	Tier     HotelTier
	Nights   int
}

// MealDayInput is the daily meal pattern for one stay: up to three meal
// selections repeated over Nights days. CategoryNone (or an empty string at
// the HTTP boundary) means the meal is skipped.
type MealDayInput struct {
	Breakfast MealCategory
	Lunch     MealCategory
	Dinner    MealCategory
	Nights    int
}

// SubmissionMeta is the caller-supplied context recorded alongside a
// calculation. The calculator treats all of it as opaque — no validation
// beyond what the input surface already enforces.
type SubmissionMeta struct {
	RequesterID   string
	RequesterName string
	Department    string
	Purpose       string
	StartDate     time.Time
	EndDate       time.Time
}

// Submission is one complete "Calculate" action: the trip, stay, and meal
// entries to evaluate plus the metadata to record with the result.
type Submission struct {
	Meta  SubmissionMeta
	Trips []TripInput
	Stays []StayInput
	Meals []MealDayInput
}
