package booking

import (
	"time"

	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Return closes an active booking. The actual return day replaces whatever
// return date was planned.
func Return(b *models.Booking, today time.Time) error {
	if err := CanReturn(Status(b.Status)); err != nil {
		return err
	}

	day := DateOf(today)
	b.Status = string(StatusReturned)
	b.ReturnDate = &day
	return nil
}

// Cancel closes an active booking without touching its planned dates.
func Cancel(b *models.Booking) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	return nil
}

// Reserve applies the dress side of a new booking.
func Reserve(d *models.Dress, start time.Time) {
	day := DateOf(start)
	d.IsAvailable = false
	d.BookingCount++
	d.LastBookingDate = &day
}

// Release marks the dress as available again after a return or cancel.
func Release(d *models.Dress) {
	d.IsAvailable = true
}

// Range returns the scheduled range of a booking.
func Range(b *models.Booking) DateRange {
	return DateRange{Start: b.BookingDate, End: b.ReturnDate}
}
