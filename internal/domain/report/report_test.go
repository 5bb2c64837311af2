package report

import (
	"testing"
	"time"
)

func TestMonthBounds(t *testing.T) {
	loc := time.FixedZone("EET", 2*3600)

	from, to := MonthBounds(time.Date(2025, 12, 17, 22, 0, 0, 0, loc))

	if !from.Equal(time.Date(2025, 12, 1, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected from %v", from)
	}
	if !to.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected to %v", to)
	}
}
