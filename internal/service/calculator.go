// Package service contains the business logic for the travel emissions API.
// Services validate inputs, resolve distances and emission factors, and
// orchestrate ledger calls. No HTTP concerns live here — handlers depend on
// service methods, not the other way around.
package service

import (
	"context"
	"fmt"

	"github.com/avasquez-gs/travel-emissions/internal/domain"
	"github.com/avasquez-gs/travel-emissions/internal/factors"
	"github.com/avasquez-gs/travel-emissions/internal/geo"
	"github.com/avasquez-gs/travel-emissions/internal/ledger"
)

// CalculatorService computes emissions for a submission and records the
// aggregate in the ledger.
type CalculatorService struct {
	registry *geo.Registry
	ledger   ledger.Ledger
}

// NewCalculatorService constructs a CalculatorService backed by the provided
// location registry and ledger.
func NewCalculatorService(registry *geo.Registry, l ledger.Ledger) *CalculatorService {
	return &CalculatorService{registry: registry, ledger: l}
}

// Submit computes the emissions for one submission and, on success, appends
// a record to the ledger. There is no partial commit: if any entry fails
// validation or lookup, nothing is recorded.
func (s *CalculatorService) Submit(ctx context.Context, sub domain.Submission) (domain.EmissionRecord, domain.CalculationResult, error) {
	result, err := s.Compute(sub.Trips, sub.Stays, sub.Meals)
	if err != nil {
		return domain.EmissionRecord{}, domain.CalculationResult{}, fmt.Errorf("service.CalculatorService.Submit: %w", err)
	}

	rec := s.ledger.Record(result, sub.Meta)
	return rec, result, nil
}

// Compute evaluates trip, stay, and meal entries into category subtotals and
// an itemized leg list. It is pure: no state is read or written, so repeated
// calls with different inputs never interfere.
//
// Rounding policy: each transport leg is rounded to two decimals before
// summation, so the transport subtotal is always the exact sum of the
// displayed legs. Accommodation and meal emissions accumulate unrounded and
// are rounded once at the result boundary.
func (s *CalculatorService) Compute(trips []domain.TripInput, stays []domain.StayInput, meals []domain.MealDayInput) (domain.CalculationResult, error) {
	var transport float64
	legs := make([]domain.TripLeg, 0, len(trips))

	for i, trip := range trips {
		leg, err := s.computeLeg(trip)
		if err != nil {
			return domain.CalculationResult{}, fmt.Errorf("trip %d: %w", i+1, err)
		}
		transport += leg.EmissionKg
		legs = append(legs, leg)
	}

	var accommodation float64
	for i, stay := range stays {
		kg, err := s.computeStay(stay)
		if err != nil {
			return domain.CalculationResult{}, fmt.Errorf("stay %d: %w", i+1, err)
		}
		accommodation += kg
	}

	var meal float64
	for i, day := range meals {
		kg, err := computeMealDays(day)
		if err != nil {
			return domain.CalculationResult{}, fmt.Errorf("meals %d: %w", i+1, err)
		}
		meal += kg
	}

	transport = domain.Round2(transport)
	accommodation = domain.Round2(accommodation)
	meal = domain.Round2(meal)

	return domain.CalculationResult{
		TransportKg:     transport,
		AccommodationKg: accommodation,
		MealKg:          meal,
		TotalKg:         domain.Round2(transport + accommodation + meal),
		Legs:            legs,
	}, nil
}

// computeLeg resolves one trip input into an immutable TripLeg.
func (s *CalculatorService) computeLeg(trip domain.TripInput) (domain.TripLeg, error) {
	if trip.Passengers < 1 {
		return domain.TripLeg{}, fmt.Errorf("%w: passengers must be at least 1, got %d", domain.ErrValidation, trip.Passengers)
	}

	distance, err := s.registry.Distance(trip.From, trip.To)
	if err != nil {
		return domain.TripLeg{}, err
	}

	factor, err := factors.TransportFactor(trip.Mode, trip.Class, distance)
	if err != nil {
		return domain.TripLeg{}, err
	}

	return domain.TripLeg{
		From:       trip.From,
		To:         trip.To,
		Mode:       trip.Mode,
		Class:      flightClass(trip),
		Passengers: trip.Passengers,
		DistanceKm: distance,
		EmissionKg: legEmission(distance, factor, trip.Passengers),
	}, nil
}

// legEmission is the per-leg formula: distance × factor / passengers,
// rounded to two decimals. A passenger count below 1 divides by 1 — the
// service validates passengers earlier, but the formula must never divide
// by zero regardless of who calls it.
func legEmission(distanceKm, factor float64, passengers int) float64 {
	if passengers < 1 {
		passengers = 1
	}
	return domain.Round2(distanceKm * factor / float64(passengers))
}

// computeStay returns the unrounded accommodation emission for one stay.
// The stay location must exist in the registry even though it does not
// influence the factor — a typo'd city should fail here, not slip through.
func (s *CalculatorService) computeStay(stay domain.StayInput) (float64, error) {
	if stay.Nights < 1 {
		return 0, fmt.Errorf("%w: nights must be at least 1, got %d", domain.ErrValidation, stay.Nights)
	}
	if _, ok := s.registry.Lookup(stay.Location); !ok {
		return 0, fmt.Errorf("stay location %q: %w", stay.Location, domain.ErrUnknownLocation)
	}

	nightly, err := factors.HotelFactor(stay.Tier)
	if err != nil {
		return 0, err
	}
	return nightly * float64(stay.Nights), nil
}

// computeMealDays returns the unrounded meal emission for one meal-day
// pattern: the sum of the selected meals' factors multiplied by nights.
func computeMealDays(day domain.MealDayInput) (float64, error) {
	if day.Nights < 1 {
		return 0, fmt.Errorf("%w: nights must be at least 1, got %d", domain.ErrValidation, day.Nights)
	}

	var perDay float64
	for _, cat := range []domain.MealCategory{day.Breakfast, day.Lunch, day.Dinner} {
		if cat == domain.CategoryNone || cat == "" {
			continue
		}
		f, err := factors.MealFactor(cat)
		if err != nil {
			return 0, err
		}
		perDay += f
	}
	return perDay * float64(day.Nights), nil
}

// flightClass returns the travel class for flight legs and blanks it for
// every other mode, so simple-mode legs never carry a misleading class.
func flightClass(trip domain.TripInput) domain.TravelClass {
	if trip.Mode == domain.ModeFlight {
		return trip.Class
	}
	return ""
}
