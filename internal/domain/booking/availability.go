package booking

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

const DateLayout = "2006-01-02"

// DateRange is a closed interval of calendar days. A nil End means the range
// is open-ended and extends forever.
type DateRange struct {
	Start time.Time
	End   *time.Time
}

// Day returns the single-day range [d, d].
func Day(d time.Time) DateRange {
	day := DateOf(d)
	return DateRange{Start: day, End: &day}
}

// Overlaps reports whether two ranges share at least one day.
//
// Boundaries are inclusive: a booking that ends on day N conflicts with one
// that starts on day N, so same-day handover is not allowed.
func (r DateRange) Overlaps(o DateRange) bool {
	rStart, oStart := DateOf(r.Start), DateOf(o.Start)

	// r.start <= o.end
	if o.End != nil && rStart.After(DateOf(*o.End)) {
		return false
	}
	// o.start <= r.end
	if r.End != nil && oStart.After(DateOf(*r.End)) {
		return false
	}
	return true
}

// Covers reports whether day d falls inside the range.
func (r DateRange) Covers(d time.Time) bool {
	return r.Overlaps(Day(d))
}

// FirstConflict returns the first active booking whose range overlaps
// candidate, or nil. Non-active bookings never conflict.
func FirstConflict(candidate DateRange, existing []models.Booking) *models.Booking {
	for i := range existing {
		b := &existing[i]
		if Status(b.Status) != StatusActive {
			continue
		}
		if candidate.Overlaps(Range(b)) {
			return b
		}
	}
	return nil
}

// DateOf strips the clock from t and returns the calendar day at UTC midnight,
// which is how dates are stored.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseOptionalDate parses s, returning nil for a blank value.
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// NewRange validates start/end and builds the candidate range.
func NewRange(start time.Time, end *time.Time) (DateRange, error) {
	r := DateRange{Start: DateOf(start)}
	if end != nil {
		e := DateOf(*end)
		if e.Before(r.Start) {
			return DateRange{}, ErrInvalidDateRange
		}
		r.End = &e
	}
	return r, nil
}
