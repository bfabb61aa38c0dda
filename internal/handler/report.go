package handler

import (
	"net/http"
	"strconv"

	"github.com/avasquez-gs/travel-emissions/internal/domain"
)

// Pagination echoes the page window applied to a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ListCalculationsResponse is the body of GET /calculations.
type ListCalculationsResponse struct {
	Data       []domain.EmissionRecord `json:"data"`
	Pagination Pagination              `json:"pagination"`
}

// SummaryResponse is the body of GET /summary.
type SummaryResponse struct {
	RunningTotalKg float64 `json:"running_total_kg"`
	Submissions    int     `json:"submissions"`
}

// ListCalculations handles GET /calculations.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20,
// max=100). Records come back in submission order.
func (s *Server) ListCalculations(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(
		queryInt(r, "page"),
		queryInt(r, "limit"),
	)

	records, total := s.ledger.HistoryPaged(params)
	writeJSON(w, http.StatusOK, ListCalculationsResponse{
		Data: records,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetLatestCalculation handles GET /calculations/latest.
// Returns the most recent submission's category breakdown with its itemized
// transport legs, or 404 when nothing has been calculated yet.
func (s *Server) GetLatestCalculation(w http.ResponseWriter, r *http.Request) {
	last, ok := s.ledger.LastCalculation()
	if !ok {
		writeError(w, domain.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, last)
}

// GetSummary handles GET /summary.
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SummaryResponse{
		RunningTotalKg: domain.Round2(s.ledger.RunningTotal()),
		Submissions:    s.ledger.Count(),
	})
}

// GetReference handles GET /reference.
// The input surface builds its selectors from these closed key sets.
func (s *Server) GetReference(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ref)
}

// queryInt parses an optional positive integer query parameter.
// Absent or malformed values return nil and fall back to defaults.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
