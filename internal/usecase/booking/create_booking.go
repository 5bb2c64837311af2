package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/bridal-rental/internal/audit"
	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/booking"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
	"github.com/BruksfildServices01/bridal-rental/internal/session"
	"github.com/BruksfildServices01/bridal-rental/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	DressID uint

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	// YYYY-MM-DD. ReturnDate may be blank for an open-ended booking.
	BookingDate string
	ReturnDate  string

	TotalPrice  decimal.Decimal
	DepositPaid decimal.Decimal
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	actor session.Principal,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Input
	// --------------------------------------------------
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return nil, domain.ErrCustomerNameRequired
	}
	email := strings.TrimSpace(in.CustomerEmail)
	if email != "" && !validators.IsEmail(email) {
		return nil, domain.ErrInvalidEmail
	}
	if in.TotalPrice.IsNegative() || in.DepositPaid.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	start, err := domain.ParseDate(in.BookingDate)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseOptionalDate(in.ReturnDate)
	if err != nil {
		return nil, err
	}
	candidate, err := domain.NewRange(start, end)
	if err != nil {
		return nil, err
	}

	total := in.TotalPrice.Round(2)
	deposit := in.DepositPaid.Round(2)

	b := &models.Booking{
		Reference:        uuid.NewString(),
		CustomerName:     name,
		CustomerPhone:    strings.TrimSpace(in.CustomerPhone),
		CustomerEmail:    email,
		BookingDate:      candidate.Start,
		ReturnDate:       candidate.End,
		TotalPrice:       total,
		DepositPaid:      deposit,
		RemainingBalance: total.Sub(deposit),
		Notes:            strings.TrimSpace(in.Notes),
		Status:           string(domain.InitialStatus()),
	}

	// --------------------------------------------------
	// Lock dress, check, insert, flip flag
	// --------------------------------------------------
	err = uc.repo.Atomic(ctx, func(tx domain.Repository) error {
		dress, err := tx.LockDress(ctx, in.DressID)
		if err != nil {
			return err
		}

		existing, err := tx.ListActiveForDress(ctx, dress.ID)
		if err != nil {
			return err
		}
		if domain.FirstConflict(candidate, existing) != nil {
			return domain.ErrConflict
		}

		b.DressID = &dress.ID
		b.DressNumber = dress.DressNumber

		if err := tx.CreateBooking(ctx, b); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		domain.Reserve(dress, candidate.Start)
		if err := tx.SaveDressState(ctx, dress); err != nil {
			return fmt.Errorf("update dress %s: %w", dress.DressNumber, err)
		}

		b.Dress = dress
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action: audit.ActionAddBooking,
		Details: fmt.Sprintf(
			"New booking: dress %s - customer %s (by %s)",
			b.DressNumber, b.CustomerName, actor.Email,
		),
	})

	return b, nil
}
