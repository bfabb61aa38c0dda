// Package geo provides the fixed location registry and great-circle distance
// computation between registered locations.
//
// The registry is loaded once from an embedded JSON table; it is immutable
// after construction and safe for concurrent reads.
package geo

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/goccy/go-json"

	"github.com/avasquez-gs/travel-emissions/internal/domain"
)

//go:embed data/locations.json
var rawLocationsJSON []byte

// Registry holds the known locations, keyed by name.
type Registry struct {
	locations map[string]domain.Location
}

// NewRegistry builds a Registry from the embedded location table.
// Returns an error only if the embedded data is malformed, which would be a
// build defect rather than a runtime condition.
func NewRegistry() (*Registry, error) {
	var locs []domain.Location
	if err := json.Unmarshal(rawLocationsJSON, &locs); err != nil {
		return nil, fmt.Errorf("geo.NewRegistry: decode embedded locations: %w", err)
	}
	return NewRegistryFromLocations(locs), nil
}

// NewRegistryFromLocations builds a Registry from an explicit location list.
// Used by tests that need controlled coordinates (e.g. two points an exact
// distance apart).
func NewRegistryFromLocations(locs []domain.Location) *Registry {
	m := make(map[string]domain.Location, len(locs))
	for _, l := range locs {
		m[l.Name] = l
	}
	return &Registry{locations: m}
}

// Lookup returns the location registered under name.
func (r *Registry) Lookup(name string) (domain.Location, bool) {
	l, ok := r.locations[name]
	return l, ok
}

// Names returns all registered location names in ascending order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.locations))
	for n := range r.locations {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Distance returns the great-circle distance in kilometres between two
// registered locations, rounded to two decimal places.
// Returns domain.ErrUnknownLocation if either name is not registered; a
// missing city is never substituted with a zero distance.
func (r *Registry) Distance(from, to string) (float64, error) {
	a, ok := r.locations[from]
	if !ok {
		return 0, fmt.Errorf("geo.Registry.Distance: %q: %w", from, domain.ErrUnknownLocation)
	}
	b, ok := r.locations[to]
	if !ok {
		return 0, fmt.Errorf("geo.Registry.Distance: %q: %w", to, domain.ErrUnknownLocation)
	}
	return domain.Round2(haversine(a.Lat, a.Lon, b.Lat, b.Lon)), nil
}
