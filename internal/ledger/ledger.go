// Package ledger holds the process-lifetime emissions history.
// It replaces a database: records live in memory for the lifetime of the
// process and are never edited or deleted once appended. A single mutex
// guards every write and every multi-field read, since a Record call updates
// several fields that must stay consistent with each other.
package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avasquez-gs/travel-emissions/internal/domain"
)

// Ledger defines the accumulator operations for completed calculations.
// The service layer depends on this interface, not the concrete store,
// which allows it to be unit-tested with a mock.
type Ledger interface {
	// Record appends one entry built from a calculation result and its
	// submission metadata, updates the running total, and replaces the
	// last-calculation snapshot. Returns the stored record with its
	// assigned ID and timestamp.
	Record(result domain.CalculationResult, meta domain.SubmissionMeta) domain.EmissionRecord

	// History returns every record in insertion order. Never nil, so
	// encoders emit [] for an empty ledger and callers can range safely.
	History() []domain.EmissionRecord

	// HistoryPaged returns one page of records in insertion order plus the
	// total record count.
	HistoryPaged(p domain.PaginationParams) ([]domain.EmissionRecord, int)

	// RunningTotal returns the sum of TotalKg across all records.
	RunningTotal() float64

	// Count returns the number of records.
	Count() int

	// LastCalculation returns a consistent snapshot of the most recent
	// submission. ok is false until the first Record call.
	LastCalculation() (domain.LastCalculation, bool)
}

// memLedger is the in-memory implementation of Ledger.
type memLedger struct {
	mu           sync.Mutex
	records      []domain.EmissionRecord
	runningTotal float64
	last         domain.LastCalculation
	hasLast      bool

	// now is swappable for deterministic timestamps in tests.
	now func() time.Time
}

// New constructs an empty Ledger.
func New() Ledger {
	return &memLedger{now: time.Now}
}

// NewWithClock constructs an empty Ledger whose record timestamps come from
// the provided clock. Test use only.
func NewWithClock(now func() time.Time) Ledger {
	return &memLedger{now: now}
}

func (l *memLedger) Record(result domain.CalculationResult, meta domain.SubmissionMeta) domain.EmissionRecord {
	rec := domain.EmissionRecord{
		ID:              uuid.New(),
		RequesterID:     meta.RequesterID,
		RequesterName:   meta.RequesterName,
		Department:      meta.Department,
		Purpose:         meta.Purpose,
		StartDate:       meta.StartDate,
		EndDate:         meta.EndDate,
		TransportKg:     result.TransportKg,
		AccommodationKg: result.AccommodationKg,
		MealKg:          result.MealKg,
		TotalKg:         result.TotalKg,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec.CreatedAt = l.now().UTC()
	l.records = append(l.records, rec)
	l.runningTotal += rec.TotalKg
	l.last = domain.LastCalculation{
		TransportKg:     result.TransportKg,
		AccommodationKg: result.AccommodationKg,
		MealKg:          result.MealKg,
		TotalKg:         result.TotalKg,
		Legs:            append([]domain.TripLeg(nil), result.Legs...),
	}
	l.hasLast = true

	return rec
}

func (l *memLedger) History() []domain.EmissionRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.EmissionRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *memLedger) HistoryPaged(p domain.PaginationParams) ([]domain.EmissionRecord, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := len(l.records)
	start := p.Offset()
	if start >= total {
		return []domain.EmissionRecord{}, total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return append([]domain.EmissionRecord(nil), l.records[start:end]...), total
}

func (l *memLedger) RunningTotal() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.runningTotal
}

func (l *memLedger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

func (l *memLedger) LastCalculation() (domain.LastCalculation, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.hasLast {
		return domain.LastCalculation{}, false
	}
	snap := l.last
	snap.Legs = append([]domain.TripLeg(nil), l.last.Legs...)
	return snap, true
}
