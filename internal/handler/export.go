package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/avasquez-gs/travel-emissions/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV
// export. One row per ledger record, in submission order.
var csvHeaders = []string{
	"record_id", "requester_id", "requester_name", "department", "purpose",
	"start_date", "end_date",
	"transport_kg", "accommodation_kg", "meal_kg", "total_kg",
	"created_at",
}

// GetExport handles GET /export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	records := s.ledger.History()

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, records)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// writeCSV encodes the records as CSV with a header row and an attachment
// disposition so browsers download it as a file.
func writeCSV(w http.ResponseWriter, records []domain.EmissionRecord) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	// csv.Writer against a bytes.Buffer cannot fail; Flush surfaces nothing.
	_ = cw.Write(csvHeaders)
	for _, rec := range records {
		_ = cw.Write(recordToCSVRecord(rec))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="emissions_data.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// recordToCSVRecord encodes one EmissionRecord as a flat string slice.
// Dates use YYYY-MM-DD; the creation timestamp uses RFC 3339.
func recordToCSVRecord(rec domain.EmissionRecord) []string {
	return []string{
		rec.ID.String(),
		rec.RequesterID,
		rec.RequesterName,
		rec.Department,
		rec.Purpose,
		rec.StartDate.Format(dateLayout),
		rec.EndDate.Format(dateLayout),
		formatKg(rec.TransportKg),
		formatKg(rec.AccommodationKg),
		formatKg(rec.MealKg),
		formatKg(rec.TotalKg),
		rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// formatKg renders an emission value with the service-wide two-decimal
// precision.
func formatKg(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
