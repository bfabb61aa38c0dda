package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasquez-gs/travel-emissions/internal/domain"
	"github.com/avasquez-gs/travel-emissions/internal/handler"
)

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ---- GET /calculations -----------------------------------------------------

func TestListCalculations_defaultsAndPassthrough(t *testing.T) {
	fixture := recordFixture()
	var gotParams domain.PaginationParams
	ledger := &mockLedgerReader{
		historyPaged: func(p domain.PaginationParams) ([]domain.EmissionRecord, int) {
			gotParams = p
			return []domain.EmissionRecord{fixture}, 1
		},
	}

	rec := get(t, newHTTPHandler(nil, ledger), "/calculations")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, gotParams)

	var resp handler.ListCalculationsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, fixture.ID, resp.Data[0].ID)
	assert.Equal(t, 1, resp.Pagination.Total)
}

func TestListCalculations_pageAndLimitParams(t *testing.T) {
	var gotParams domain.PaginationParams
	ledger := &mockLedgerReader{
		historyPaged: func(p domain.PaginationParams) ([]domain.EmissionRecord, int) {
			gotParams = p
			return []domain.EmissionRecord{}, 0
		},
	}

	rec := get(t, newHTTPHandler(nil, ledger), "/calculations?page=3&limit=5")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 3, Limit: 5}, gotParams)
}

// ---- GET /calculations/latest ----------------------------------------------

func TestGetLatestCalculation_200(t *testing.T) {
	ledger := &mockLedgerReader{
		lastCalculation: func() (domain.LastCalculation, bool) {
			return domain.LastCalculation{
				TransportKg: 120,
				TotalKg:     120,
				Legs: []domain.TripLeg{
					{From: "DELHI", To: "MUMBAI", Mode: domain.ModeFlight, Class: domain.ClassEconomy, Passengers: 1, DistanceKm: 1148.09, EmissionKg: 137.77},
				},
			}, true
		},
	}

	rec := get(t, newHTTPHandler(nil, ledger), "/calculations/latest")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.LastCalculation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Legs, 1)
	assert.Equal(t, "DELHI", resp.Legs[0].From)
	assert.Equal(t, 120.0, resp.TransportKg)
}

func TestGetLatestCalculation_404_whenEmpty(t *testing.T) {
	ledger := &mockLedgerReader{
		lastCalculation: func() (domain.LastCalculation, bool) {
			return domain.LastCalculation{}, false
		},
	}

	rec := get(t, newHTTPHandler(nil, ledger), "/calculations/latest")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "not_found", resp.Error.Code)
}

// ---- GET /summary ----------------------------------------------------------

func TestGetSummary(t *testing.T) {
	ledger := &mockLedgerReader{
		runningTotal: func() float64 { return 1234.5678 },
		count:        func() int { return 7 },
	}

	rec := get(t, newHTTPHandler(nil, ledger), "/summary")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.SummaryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1234.57, resp.RunningTotalKg)
	assert.Equal(t, 7, resp.Submissions)
}

// ---- GET /reference --------------------------------------------------------

func TestGetReference(t *testing.T) {
	ref := handler.ReferenceData{
		Locations:      []string{"CHENNAI", "DELHI"},
		TransportModes: []domain.TransportMode{domain.ModeFlight, domain.ModeTaxi},
		TravelClasses:  []domain.TravelClass{domain.ClassEconomy},
		HotelTiers:     []domain.HotelTier{domain.TierBudget},
		MealCategories: []domain.MealCategory{domain.CategoryVegan, domain.CategoryNone},
	}
	h := handler.NewRouter(handler.NewServer(nil, nil, ref))

	rec := get(t, h, "/reference")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.ReferenceData
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, ref, resp)
}
