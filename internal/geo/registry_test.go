package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasquez-gs/travel-emissions/internal/domain"
	"github.com/avasquez-gs/travel-emissions/internal/geo"
)

func newRegistry(t *testing.T) *geo.Registry {
	t.Helper()
	r, err := geo.NewRegistry()
	require.NoError(t, err)
	return r
}

// TestNewRegistry_embeddedTable verifies that the embedded location table
// decodes and contains the full city set.
func TestNewRegistry_embeddedTable(t *testing.T) {
	r := newRegistry(t)

	names := r.Names()
	assert.Len(t, names, 20)
	assert.Contains(t, names, "VELLORE")
	assert.Contains(t, names, "SAN FRANCISCO")

	loc, ok := r.Lookup("CHENNAI")
	require.True(t, ok)
	assert.InDelta(t, 13.0827, loc.Lat, 1e-9)
	assert.InDelta(t, 80.2707, loc.Lon, 1e-9)
}

// TestDistance_knownPairs checks the haversine result against independently
// computed great-circle distances (mean spherical earth, R = 6371 km).
func TestDistance_knownPairs(t *testing.T) {
	r := newRegistry(t)

	tests := []struct {
		from, to string
		wantKm   float64
	}{
		{"VELLORE", "CHENNAI", 124.70},
		{"DELHI", "MUMBAI", 1148.09},
		{"LONDON", "NEW YORK", 5570.22},
		{"LONDON", "PARIS", 343.56},
		{"TOKYO", "SYDNEY", 7825.82},
	}
	for _, tc := range tests {
		d, err := r.Distance(tc.from, tc.to)
		require.NoError(t, err)
		assert.InDelta(t, tc.wantKm, d, 0.01, "%s -> %s", tc.from, tc.to)
	}
}

// TestDistance_symmetry verifies distance(A,B) == distance(B,A).
func TestDistance_symmetry(t *testing.T) {
	r := newRegistry(t)

	ab, err := r.Distance("DELHI", "SINGAPORE")
	require.NoError(t, err)
	ba, err := r.Distance("SINGAPORE", "DELHI")
	require.NoError(t, err)

	assert.Equal(t, ab, ba)
}

// TestDistance_identity verifies distance(A,A) == 0.
func TestDistance_identity(t *testing.T) {
	r := newRegistry(t)

	d, err := r.Distance("BERLIN", "BERLIN")
	require.NoError(t, err)
	assert.Zero(t, d)
}

// TestDistance_unknownLocation verifies that an unregistered name fails with
// domain.ErrUnknownLocation instead of quietly returning zero.
func TestDistance_unknownLocation(t *testing.T) {
	r := newRegistry(t)

	_, err := r.Distance("ATLANTIS", "LONDON")
	assert.ErrorIs(t, err, domain.ErrUnknownLocation)

	_, err = r.Distance("LONDON", "ATLANTIS")
	assert.ErrorIs(t, err, domain.ErrUnknownLocation)
}

// TestDistance_customRegistry exercises NewRegistryFromLocations with
// controlled coordinates: two points on the equator 90° of longitude apart
// are a quarter of the earth's circumference from each other.
func TestDistance_customRegistry(t *testing.T) {
	r := geo.NewRegistryFromLocations([]domain.Location{
		{Name: "A", Lat: 0, Lon: 0},
		{Name: "B", Lat: 0, Lon: 90},
	})

	d, err := r.Distance("A", "B")
	require.NoError(t, err)
	assert.InDelta(t, 2*3.14159265*geo.EarthRadiusKm/4, d, 0.5)
}
