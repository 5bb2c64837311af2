package booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

func TestReturnOverwritesPlannedDate(t *testing.T) {
	b := &models.Booking{
		Status:      string(StatusActive),
		BookingDate: day("2025-06-01"),
		ReturnDate:  ptr("2025-06-05"),
		TotalPrice:  decimal.NewFromInt(100),
	}

	now := time.Date(2025, 6, 9, 17, 45, 0, 0, time.FixedZone("EET", 2*3600))
	if err := Return(b, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Status != string(StatusReturned) {
		t.Fatalf("expected returned, got %s", b.Status)
	}
	if !b.ReturnDate.Equal(day("2025-06-09")) {
		t.Fatalf("expected actual return day, got %v", b.ReturnDate)
	}

	if err := Return(b, now); err != ErrNotActive {
		t.Fatalf("second return must fail with ErrNotActive, got %v", err)
	}
}

func TestCancelKeepsPlannedDate(t *testing.T) {
	b := &models.Booking{Status: string(StatusActive), BookingDate: day("2025-06-01"), ReturnDate: ptr("2025-06-05")}

	if err := Cancel(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != string(StatusCancelled) || !b.ReturnDate.Equal(day("2025-06-05")) {
		t.Fatalf("unexpected booking after cancel: %+v", b)
	}
	if err := Cancel(b); err != ErrNotActive {
		t.Fatalf("expected ErrNotActive, got %v", err)
	}
	if err := Return(b, time.Now()); err != ErrNotActive {
		t.Fatalf("cancelled booking cannot be returned, got %v", err)
	}
}

func TestReserveAndRelease(t *testing.T) {
	d := &models.Dress{IsAvailable: true, BookingCount: 2}

	Reserve(d, time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC))

	if d.IsAvailable || d.BookingCount != 3 || !d.LastBookingDate.Equal(day("2025-06-01")) {
		t.Fatalf("unexpected dress after reserve: %+v", d)
	}

	Release(d)
	if !d.IsAvailable || d.BookingCount != 3 {
		t.Fatalf("release must only flip the flag: %+v", d)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusReturned, StatusCancelled} {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	if Status("lost").Valid() {
		t.Fatal("unknown status should be invalid")
	}
	if InitialStatus() != StatusActive {
		t.Fatal("bookings start active")
	}
}
