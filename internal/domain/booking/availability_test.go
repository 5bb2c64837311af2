package booking

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

func day(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(s string) *time.Time {
	t := day(s)
	return &t
}

func TestDateRangeOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b DateRange
		want bool
	}{
		{"disjoint before", DateRange{day("2025-06-01"), ptr("2025-06-05")}, DateRange{day("2025-06-06"), ptr("2025-06-10")}, false},
		{"disjoint after", DateRange{day("2025-06-06"), ptr("2025-06-10")}, DateRange{day("2025-06-01"), ptr("2025-06-05")}, false},
		{"shared boundary day", DateRange{day("2025-06-01"), ptr("2025-06-05")}, DateRange{day("2025-06-05"), ptr("2025-06-10")}, true},
		{"shared start day", DateRange{day("2025-06-05"), ptr("2025-06-10")}, DateRange{day("2025-06-01"), ptr("2025-06-05")}, true},
		{"contained", DateRange{day("2025-06-01"), ptr("2025-06-30")}, DateRange{day("2025-06-10"), ptr("2025-06-12")}, true},
		{"identical single day", Day(day("2025-06-01")), Day(day("2025-06-01")), true},
		{"open existing blocks later", DateRange{day("2025-07-01"), ptr("2025-07-02")}, DateRange{day("2025-06-01"), nil}, true},
		{"open existing does not block earlier", DateRange{day("2025-05-01"), ptr("2025-05-31")}, DateRange{day("2025-06-01"), nil}, false},
		{"open candidate hits later booking", DateRange{day("2025-06-01"), nil}, DateRange{day("2030-01-01"), ptr("2030-01-02")}, true},
		{"open candidate after finished booking", DateRange{day("2025-06-06"), nil}, DateRange{day("2025-06-01"), ptr("2025-06-05")}, false},
		{"both open", DateRange{day("2025-06-01"), nil}, DateRange{day("2026-01-01"), nil}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Fatalf("a.Overlaps(b) = %v, want %v", got, tc.want)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Fatalf("overlap must be symmetric: b.Overlaps(a) = %v", got)
			}
		})
	}
}

func TestOverlapsIgnoresClock(t *testing.T) {
	end := time.Date(2025, 6, 5, 23, 59, 0, 0, time.UTC)
	a := DateRange{Start: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), End: &end}
	b := DateRange{Start: time.Date(2025, 6, 5, 1, 0, 0, 0, time.UTC)}

	if !a.Overlaps(b) {
		t.Fatal("same calendar day must overlap regardless of time of day")
	}
}

func TestCovers(t *testing.T) {
	open := DateRange{Start: day("2025-06-01")}
	if !open.Covers(day("2099-12-31")) {
		t.Fatal("open-ended range must cover every later date")
	}
	if open.Covers(day("2025-05-31")) {
		t.Fatal("range must not cover dates before its start")
	}

	closed := DateRange{Start: day("2025-06-01"), End: ptr("2025-06-05")}
	for _, d := range []string{"2025-06-01", "2025-06-03", "2025-06-05"} {
		if !closed.Covers(day(d)) {
			t.Fatalf("expected %s covered", d)
		}
	}
	if closed.Covers(day("2025-06-06")) {
		t.Fatal("day after end must not be covered")
	}
}

func TestFirstConflictSkipsInactive(t *testing.T) {
	existing := []models.Booking{
		{ID: 1, Status: string(StatusReturned), BookingDate: day("2025-06-01"), ReturnDate: ptr("2025-06-05")},
		{ID: 2, Status: string(StatusCancelled), BookingDate: day("2025-06-01")},
		{ID: 3, Status: string(StatusActive), BookingDate: day("2025-06-10"), ReturnDate: ptr("2025-06-12")},
	}

	if c := FirstConflict(DateRange{day("2025-06-02"), ptr("2025-06-04")}, existing); c != nil {
		t.Fatalf("inactive bookings must not conflict, got %d", c.ID)
	}

	c := FirstConflict(DateRange{day("2025-06-12"), nil}, existing)
	if c == nil || c.ID != 3 {
		t.Fatalf("expected conflict with booking 3, got %v", c)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2025-13-01"); err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := ParseDate("01/06/2025"); err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	d, err := ParseOptionalDate("   ")
	if err != nil || d != nil {
		t.Fatalf("blank optional date should be nil, got %v %v", d, err)
	}

	d, err = ParseOptionalDate(" 2025-06-05 ")
	if err != nil || !d.Equal(day("2025-06-05")) {
		t.Fatalf("unexpected %v %v", d, err)
	}
}

func TestNewRange(t *testing.T) {
	if _, err := NewRange(day("2025-06-05"), ptr("2025-06-04")); err != ErrInvalidDateRange {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}

	r, err := NewRange(day("2025-06-05"), ptr("2025-06-05"))
	if err != nil {
		t.Fatalf("single-day range should be valid: %v", err)
	}
	if !r.End.Equal(r.Start) {
		t.Fatal("expected single-day range")
	}

	r, err = NewRange(day("2025-06-05"), nil)
	if err != nil || r.End != nil {
		t.Fatalf("open range expected, got %v %v", r, err)
	}
}
