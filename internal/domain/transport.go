package domain

// TransportMode identifies how a trip leg was travelled.
// The set is closed: the factor tables only know these keys, and the input
// boundary must not let anything else through. Flights are the one tiered
// mode — their factor additionally depends on TravelClass and DistanceBand.
type TransportMode string

const (
	ModeFlight         TransportMode = "FLIGHT"
	ModeTrainStandard  TransportMode = "TRAIN - STANDARD"
	ModeTrainHighSpeed TransportMode = "TRAIN - HIGH SPEED"
	ModeBusStandard    TransportMode = "BUS - STANDARD"
	ModeBusCoach       TransportMode = "BUS - COACH"
	ModeCarGasoline    TransportMode = "CAR - GASOLINE"
	ModeCarDiesel      TransportMode = "CAR - DIESEL"
	ModeCarHybrid      TransportMode = "CAR - HYBRID"
	ModeCarElectric    TransportMode = "CAR - ELECTRIC"
	ModeTaxi           TransportMode = "TAXI"
	ModeFerry          TransportMode = "FERRY"
)

// TravelClass is the cabin class of a flight leg.
// Ignored for every mode other than ModeFlight.
type TravelClass string

const (
	ClassEconomy  TravelClass = "ECONOMY"
	ClassBusiness TravelClass = "BUSINESS"
	ClassFirst    TravelClass = "FIRST"
)

// DistanceBand is the haul category of a flight, selected from the computed
// great-circle distance. Boundaries are half-open: distance < 800 is short,
// 800 <= distance < 3700 is medium, distance >= 3700 is long.
type DistanceBand string

const (
	BandShortHaul  DistanceBand = "short_haul"
	BandMediumHaul DistanceBand = "medium_haul"
	BandLongHaul   DistanceBand = "long_haul"
)

// HotelTier classifies accommodation for the per-night factor lookup.
type HotelTier string

const (
	TierBudget   HotelTier = "BUDGET"
	TierMidRange HotelTier = "MID-RANGE"
	TierLuxury   HotelTier = "LUXURY"
)

// MealCategory is the dietary category of a single meal.
// CategoryNone marks a meal that was not taken; it contributes zero and is
// never looked up in the factor table.
type MealCategory string

const (
	CategoryVegan      MealCategory = "VEGAN"
	CategoryVegetarian MealCategory = "VEGETARIAN"
	CategoryOmnivore   MealCategory = "OMNIVORE"
	CategoryNone       MealCategory = "NONE"
)
