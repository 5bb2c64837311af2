package booking

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/bridal-rental/internal/audit"
	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/booking"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
	"github.com/BruksfildServices01/bridal-rental/internal/session"
	"github.com/BruksfildServices01/bridal-rental/internal/timezone"
)

// closeBooking runs change on the locked booking and frees its dress, all in
// one transaction.
func closeBooking(
	ctx context.Context,
	repo domain.Repository,
	bookingID uint,
	change func(b *models.Booking) error,
) (*models.Booking, error) {

	var out *models.Booking

	err := repo.Atomic(ctx, func(tx domain.Repository) error {
		b, err := tx.LockBooking(ctx, bookingID)
		if err != nil {
			return err
		}

		if err := change(b); err != nil {
			return err
		}
		if err := tx.UpdateBookingStatus(ctx, b); err != nil {
			return err
		}

		// The dress may have been deleted since; history stays.
		if b.DressID != nil {
			dress, err := tx.LockDress(ctx, *b.DressID)
			if err != nil {
				return err
			}
			domain.Release(dress)
			if err := tx.SaveDressState(ctx, dress); err != nil {
				return err
			}
			b.Dress = dress
		}

		out = b
		return nil
	})

	return out, err
}

func dressLabel(b *models.Booking) string {
	if b.DressNumber == "" {
		return "unknown"
	}
	return b.DressNumber
}

// ======================================================
// RETURN
// ======================================================

type ReturnBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewReturnBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *ReturnBooking {
	return &ReturnBooking{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

// Execute records the return today (shop time) and frees the dress.
func (uc *ReturnBooking) Execute(
	ctx context.Context,
	actor session.Principal,
	bookingID uint,
) (*models.Booking, error) {

	now := timezone.NowIn(uc.timezone)

	b, err := closeBooking(ctx, uc.repo, bookingID, func(b *models.Booking) error {
		return domain.Return(b, now)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action: audit.ActionReturnBooking,
		Details: fmt.Sprintf(
			"Dress returned: %s - customer %s (by %s)",
			dressLabel(b), b.CustomerName, actor.Email,
		),
	})

	return b, nil
}

// ======================================================
// CANCEL
// ======================================================

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels an active booking. The record and its planned dates are
// kept; it simply stops blocking the dress.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	actor session.Principal,
	bookingID uint,
) (*models.Booking, error) {

	b, err := closeBooking(ctx, uc.repo, bookingID, domain.Cancel)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action: audit.ActionCancelBooking,
		Details: fmt.Sprintf(
			"Booking cancelled: %s - customer %s (by %s)",
			dressLabel(b), b.CustomerName, actor.Email,
		),
	})

	return b, nil
}
