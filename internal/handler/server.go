// Package handler implements the HTTP surface of the travel emissions API.
// All handlers are methods on Server. Methods are split into endpoint
// specific files (calculate.go, report.go, export.go, ...) but all share the
// same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avasquez-gs/travel-emissions/internal/domain"
)

// CalculatorServicer defines the business operation the calculation handler
// depends on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the service layer.
type CalculatorServicer interface {
	Submit(ctx context.Context, sub domain.Submission) (domain.EmissionRecord, domain.CalculationResult, error)
}

// LedgerReader is the read-only view of the ledger used by the reporting
// endpoints. Reporting never mutates — only Submit writes, via the service.
type LedgerReader interface {
	History() []domain.EmissionRecord
	HistoryPaged(p domain.PaginationParams) ([]domain.EmissionRecord, int)
	RunningTotal() float64
	Count() int
	LastCalculation() (domain.LastCalculation, bool)
}

// ReferenceData is the closed key sets the input surface may use.
// Assembled once at startup from the location registry and factor tables.
type ReferenceData struct {
	Locations      []string               `json:"locations"`
	TransportModes []domain.TransportMode `json:"transport_modes"`
	TravelClasses  []domain.TravelClass   `json:"travel_classes"`
	HotelTiers     []domain.HotelTier     `json:"hotel_tiers"`
	MealCategories []domain.MealCategory  `json:"meal_categories"`
}

// Server implements the API endpoints.
// Wire it in main.go via NewRouter.
type Server struct {
	calc   CalculatorServicer
	ledger LedgerReader
	ref    ReferenceData
}

// NewServer constructs the Server with all its dependencies.
func NewServer(calc CalculatorServicer, ledger LedgerReader, ref ReferenceData) *Server {
	return &Server{calc: calc, ledger: ledger, ref: ref}
}

// NewRouter mounts every endpoint on a fresh chi router.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/reference", s.GetReference)
	r.Post("/calculations", s.CreateCalculation)
	r.Get("/calculations", s.ListCalculations)
	r.Get("/calculations/latest", s.GetLatestCalculation)
	r.Get("/summary", s.GetSummary)
	r.Get("/export", s.GetExport)
	return r
}
