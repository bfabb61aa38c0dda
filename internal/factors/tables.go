// Package factors holds the static emission-factor tables and the lookups
// over them. The tables are fixed constants from published per-activity
// coefficients; nothing here mutates after package initialization, so all
// lookups are safe for concurrent use.
package factors

import (
	"fmt"
	"sort"

	"github.com/avasquez-gs/travel-emissions/internal/domain"
)

// Flight band boundaries in kilometres. Bands are half-open on the lower
// end: distance < 800 is short haul, 800 <= distance < 3700 is medium haul,
// distance >= 3700 is long haul.
const (
	shortHaulMaxKm  = 800.0
	mediumHaulMaxKm = 3700.0
)

// flightFactors maps travel class and distance band to kg CO2e per
// passenger-km. Within a class the factor decreases with haul length:
// takeoff and climb dominate short flights.
var flightFactors = map[domain.TravelClass]map[domain.DistanceBand]float64{
	domain.ClassEconomy: {
		domain.BandShortHaul:  0.15,
		domain.BandMediumHaul: 0.12,
		domain.BandLongHaul:   0.09,
	},
	domain.ClassBusiness: {
		domain.BandShortHaul:  0.30,
		domain.BandMediumHaul: 0.24,
		domain.BandLongHaul:   0.18,
	},
	domain.ClassFirst: {
		domain.BandShortHaul:  0.45,
		domain.BandMediumHaul: 0.36,
		domain.BandLongHaul:   0.27,
	},
}

// simpleFactors maps every non-flight mode to its flat kg CO2e per
// passenger-km factor.
var simpleFactors = map[domain.TransportMode]float64{
	domain.ModeTrainStandard:  0.035,
	domain.ModeTrainHighSpeed: 0.05,
	domain.ModeBusStandard:    0.04,
	domain.ModeBusCoach:       0.03,
	domain.ModeCarGasoline:    0.12,
	domain.ModeCarDiesel:      0.14,
	domain.ModeCarHybrid:      0.08,
	domain.ModeCarElectric:    0.05,
	domain.ModeTaxi:           0.15,
	domain.ModeFerry:          0.19,
}

// hotelFactors maps accommodation tier to kg CO2e per night.
var hotelFactors = map[domain.HotelTier]float64{
	domain.TierBudget:   15.0,
	domain.TierMidRange: 25.0,
	domain.TierLuxury:   40.0,
}

// mealFactors maps dietary category to kg CO2e per meal.
// domain.CategoryNone is deliberately absent — a skipped meal is handled by
// the calculator, not by a zero entry here.
var mealFactors = map[domain.MealCategory]float64{
	domain.CategoryVegan:      1.5,
	domain.CategoryVegetarian: 2.5,
	domain.CategoryOmnivore:   4.0,
}

// BandFor returns the distance band for a flight of the given length.
func BandFor(distanceKm float64) domain.DistanceBand {
	switch {
	case distanceKm < shortHaulMaxKm:
		return domain.BandShortHaul
	case distanceKm < mediumHaulMaxKm:
		return domain.BandMediumHaul
	default:
		return domain.BandLongHaul
	}
}

// TransportFactor resolves the per-passenger-km factor for a trip leg.
// For flights the factor is selected by travel class and the band of
// distanceKm; for every other mode the flat factor is returned and class is
// ignored. Returns domain.ErrUnknownFactor for a mode or class outside the
// closed sets.
func TransportFactor(mode domain.TransportMode, class domain.TravelClass, distanceKm float64) (float64, error) {
	if mode == domain.ModeFlight {
		byBand, ok := flightFactors[class]
		if !ok {
			return 0, fmt.Errorf("factors.TransportFactor: travel class %q: %w", class, domain.ErrUnknownFactor)
		}
		return byBand[BandFor(distanceKm)], nil
	}

	f, ok := simpleFactors[mode]
	if !ok {
		return 0, fmt.Errorf("factors.TransportFactor: transport mode %q: %w", mode, domain.ErrUnknownFactor)
	}
	return f, nil
}

// HotelFactor returns the kg CO2e per night for an accommodation tier.
func HotelFactor(tier domain.HotelTier) (float64, error) {
	f, ok := hotelFactors[tier]
	if !ok {
		return 0, fmt.Errorf("factors.HotelFactor: hotel tier %q: %w", tier, domain.ErrUnknownFactor)
	}
	return f, nil
}

// MealFactor returns the kg CO2e per meal for a dietary category.
// Callers must filter out domain.CategoryNone before looking up.
func MealFactor(category domain.MealCategory) (float64, error) {
	f, ok := mealFactors[category]
	if !ok {
		return 0, fmt.Errorf("factors.MealFactor: meal category %q: %w", category, domain.ErrUnknownFactor)
	}
	return f, nil
}

// TransportModes returns every known transport mode, flights included,
// in ascending key order. Used to populate input selectors.
func TransportModes() []domain.TransportMode {
	modes := make([]domain.TransportMode, 0, len(simpleFactors)+1)
	modes = append(modes, domain.ModeFlight)
	for m := range simpleFactors {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

// TravelClasses returns the flight cabin classes in ascending key order.
func TravelClasses() []domain.TravelClass {
	classes := make([]domain.TravelClass, 0, len(flightFactors))
	for c := range flightFactors {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })
	return classes
}

// HotelTiers returns the accommodation tiers in ascending key order.
func HotelTiers() []domain.HotelTier {
	tiers := make([]domain.HotelTier, 0, len(hotelFactors))
	for h := range hotelFactors {
		tiers = append(tiers, h)
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i] < tiers[j] })
	return tiers
}

// MealCategories returns the selectable meal categories in ascending key
// order, with NONE appended last as the skip option.
func MealCategories() []domain.MealCategory {
	cats := make([]domain.MealCategory, 0, len(mealFactors)+1)
	for c := range mealFactors {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return append(cats, domain.CategoryNone)
}
