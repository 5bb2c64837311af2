package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

const (
	UpcomingLimit = 10
	PopularLimit  = 5
)

type Dashboard struct {
	TotalDresses     int64            `json:"total_dresses"`
	AvailableDresses int64            `json:"available_dresses"`
	ActiveBookings   int64            `json:"active_bookings"`
	TotalBookings    int64            `json:"total_bookings"`
	Upcoming         []models.Booking `json:"upcoming"`
	DueToday         []models.Booking `json:"due_today"`
}

type PopularDress struct {
	DressNumber  string `json:"dress_number"`
	ModelName    string `json:"model_name"`
	BookingCount int64  `json:"booking_count"`
}

type Monthly struct {
	From     time.Time       `json:"from"`
	To       time.Time       `json:"to"`
	Bookings int64           `json:"bookings"`
	Revenue  decimal.Decimal `json:"revenue"`
	Popular  []PopularDress  `json:"popular"`
}

// MonthBounds returns the first day of the month containing today and the
// first day of the following month.
func MonthBounds(today time.Time) (time.Time, time.Time) {
	from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	return from, from.AddDate(0, 1, 0)
}

// Repository is read-only.
type Repository interface {
	CountDresses(ctx context.Context, onlyAvailable bool) (int64, error)
	CountBookings(ctx context.Context, status string) (int64, error)

	// UpcomingBookings lists active bookings starting on or after day.
	UpcomingBookings(ctx context.Context, day time.Time, limit int) ([]models.Booking, error)
	// DueOn lists active bookings whose planned return date is day.
	DueOn(ctx context.Context, day time.Time) ([]models.Booking, error)

	// CreatedBetween counts bookings created in [from, to) and sums their deposits.
	CreatedBetween(ctx context.Context, from, to time.Time) (int64, decimal.Decimal, error)
	PopularDresses(ctx context.Context, limit int) ([]PopularDress, error)
}
