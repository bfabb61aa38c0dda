package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/avasquez-gs/travel-emissions/internal/domain"
)

// dateLayout is the wire format for submission date ranges.
const dateLayout = "2006-01-02"

// RequesterRequest identifies who is submitting the calculation.
// Type is "employee" or "guest"; guests without an ID get a generated one.
type RequesterRequest struct {
	Type       string `json:"type"`
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
}

// TripRequest is one transport entry of a calculation request.
type TripRequest struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Mode       string `json:"mode"`
	Class      string `json:"class,omitempty"`
	Passengers int    `json:"passengers"`
}

// StayRequest is one accommodation entry of a calculation request.
type StayRequest struct {
	Location string `json:"location"`
	Tier     string `json:"tier"`
	Nights   int    `json:"nights"`
}

// MealDayRequest is one daily meal pattern of a calculation request.
// Omitted or "NONE" selections are skipped meals.
type MealDayRequest struct {
	Breakfast string `json:"breakfast,omitempty"`
	Lunch     string `json:"lunch,omitempty"`
	Dinner    string `json:"dinner,omitempty"`
	Nights    int    `json:"nights"`
}

// CreateCalculationRequest is the body of POST /calculations.
type CreateCalculationRequest struct {
	Requester RequesterRequest `json:"requester"`
	Purpose   string           `json:"purpose"`
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
	Trips     []TripRequest    `json:"trips"`
	Stays     []StayRequest    `json:"stays"`
	Meals     []MealDayRequest `json:"meals"`
}

// CreateCalculationResponse pairs the appended ledger record with the full
// itemized result of the computation.
type CreateCalculationResponse struct {
	Record domain.EmissionRecord    `json:"record"`
	Result domain.CalculationResult `json:"result"`
}

// CreateCalculation handles POST /calculations.
// It computes emissions for the submitted trips, stays, and meals, records
// the aggregate in the ledger, and returns both. A calculation either fully
// succeeds or is rejected in full.
func (s *Server) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	var req CreateCalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "request body is not valid JSON: "+err.Error())
		return
	}

	sub, err := requestToSubmission(req)
	if err != nil {
		requestError(w, err.Error())
		return
	}

	rec, result, err := s.calc.Submit(r.Context(), sub)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateCalculationResponse{Record: rec, Result: result})
}

// --- mapping helpers --------------------------------------------------------

// requestToSubmission converts the request body into a domain.Submission.
// Returns an error for malformed dates; enumerated keys are passed through
// as-is — the service layer owns their validation.
func requestToSubmission(req CreateCalculationRequest) (domain.Submission, error) {
	meta, err := requestToMeta(req)
	if err != nil {
		return domain.Submission{}, err
	}

	sub := domain.Submission{Meta: meta}
	for _, t := range req.Trips {
		sub.Trips = append(sub.Trips, domain.TripInput{
			From:       t.From,
			To:         t.To,
			Mode:       domain.TransportMode(t.Mode),
			Class:      domain.TravelClass(t.Class),
			Passengers: t.Passengers,
		})
	}
	for _, st := range req.Stays {
		sub.Stays = append(sub.Stays, domain.StayInput{
			Location: st.Location,
			Tier:     domain.HotelTier(st.Tier),
			Nights:   st.Nights,
		})
	}
	for _, m := range req.Meals {
		sub.Meals = append(sub.Meals, domain.MealDayInput{
			Breakfast: domain.MealCategory(m.Breakfast),
			Lunch:     domain.MealCategory(m.Lunch),
			Dinner:    domain.MealCategory(m.Dinner),
			Nights:    m.Nights,
		})
	}
	return sub, nil
}

func requestToMeta(req CreateCalculationRequest) (domain.SubmissionMeta, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return domain.SubmissionMeta{}, &dateError{field: "start_date", value: req.StartDate}
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return domain.SubmissionMeta{}, &dateError{field: "end_date", value: req.EndDate}
	}

	meta := domain.SubmissionMeta{
		RequesterID:   req.Requester.ID,
		RequesterName: req.Requester.Name,
		Department:    req.Requester.Department,
		Purpose:       req.Purpose,
		StartDate:     start,
		EndDate:       end,
	}

	if req.Requester.Type == "guest" {
		if meta.RequesterID == "" {
			meta.RequesterID = guestID()
		}
		if meta.Department == "" {
			meta.Department = "External"
		}
	}
	return meta, nil
}

// guestID generates a short anonymous requester ID for guests.
func guestID() string {
	return "Guest-" + uuid.NewString()[:8]
}

type dateError struct {
	field string
	value string
}

func (e *dateError) Error() string {
	return e.field + " must be formatted as YYYY-MM-DD, got " + strconv.Quote(e.value)
}
