package booking

import (
	"context"

	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

type ListFilter struct {
	// Status "" or "all" means any status.
	Status string
	// Search matches customer name, phone or email.
	Search string
}

type Repository interface {
	// Atomic runs fn in a single transaction. fn receives a repository bound
	// to that transaction; returning an error rolls everything back.
	Atomic(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Dress --------
	// LockDress and LockBooking return ErrDressNotFound / ErrBookingNotFound
	// for missing rows and hold a row lock until the transaction ends.
	LockDress(
		ctx context.Context,
		dressID uint,
	) (*models.Dress, error)

	// SaveDressState persists is_available, booking_count and last_booking_date.
	SaveDressState(
		ctx context.Context,
		d *models.Dress,
	) error

	ListAvailableDresses(
		ctx context.Context,
		category string,
	) ([]models.Dress, error)

	// -------- Booking (conflict / create) --------
	ListActiveForDress(
		ctx context.Context,
		dressID uint,
	) ([]models.Booking, error)

	ListActiveForDresses(
		ctx context.Context,
		dressIDs []uint,
	) ([]models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	// GetBooking preloads the dress and returns ErrBookingNotFound when missing.
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	LockBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// UpdateBookingStatus persists status and return_date.
	UpdateBookingStatus(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listing --------
	ListBookings(
		ctx context.Context,
		f ListFilter,
	) ([]models.Booking, error)
}
