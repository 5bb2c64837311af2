package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/booking"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

type BookingRepository struct {
	txState
}

func NewBookingRepository(s *Store) *BookingRepository {
	return &BookingRepository{txState{s: s}}
}

func (r *BookingRepository) Atomic(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	if r.inTx {
		return fn(r)
	}
	return r.s.atomic(func() error {
		return fn(&BookingRepository{txState{s: r.s, inTx: true}})
	})
}

// --------------------------------------------------
// Dress
// --------------------------------------------------

func (r *BookingRepository) LockDress(_ context.Context, dressID uint) (*models.Dress, error) {
	defer r.lock()()

	d, ok := r.s.dresses[dressID]
	if !ok {
		return nil, domain.ErrDressNotFound
	}
	return &d, nil
}

func (r *BookingRepository) SaveDressState(_ context.Context, d *models.Dress) error {
	defer r.lock()()

	stored, ok := r.s.dresses[d.ID]
	if !ok {
		return domain.ErrDressNotFound
	}
	stored.IsAvailable = d.IsAvailable
	stored.BookingCount = d.BookingCount
	stored.LastBookingDate = d.LastBookingDate
	stored.UpdatedAt = r.s.Clock()
	r.s.dresses[d.ID] = stored
	return nil
}

func (r *BookingRepository) ListAvailableDresses(_ context.Context, category string) ([]models.Dress, error) {
	defer r.lock()()

	var out []models.Dress
	for _, d := range r.s.dresses {
		if !d.IsAvailable {
			continue
		}
		if category != "" && category != "all" && d.Category != category {
			continue
		}
		d.ImageData = nil
		out = append(out, d)
	}
	sortByNumber(out)
	return out, nil
}

// --------------------------------------------------
// Booking (conflict / create)
// --------------------------------------------------

func (r *BookingRepository) ListActiveForDress(ctx context.Context, dressID uint) ([]models.Booking, error) {
	return r.ListActiveForDresses(ctx, []uint{dressID})
}

func (r *BookingRepository) ListActiveForDresses(_ context.Context, dressIDs []uint) ([]models.Booking, error) {
	defer r.lock()()

	var out []models.Booking
	for _, b := range r.s.bookings {
		if b.Status != string(domain.StatusActive) || b.DressID == nil {
			continue
		}
		if slices.Contains(dressIDs, *b.DressID) {
			out = append(out, b)
		}
	}
	slices.SortFunc(out, func(a, b models.Booking) int {
		return cmp.Or(a.BookingDate.Compare(b.BookingDate), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (r *BookingRepository) CreateBooking(_ context.Context, b *models.Booking) error {
	defer r.lock()()

	r.s.nextBookingID++
	now := r.s.Clock()
	b.ID = r.s.nextBookingID
	b.CreatedAt = now
	b.UpdatedAt = now

	stored := *b
	stored.Dress = nil
	r.s.bookings[b.ID] = stored
	return nil
}

// --------------------------------------------------
// Booking (return / cancel)
// --------------------------------------------------

func (r *BookingRepository) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	defer r.lock()()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	b = r.s.withDress(b)
	return &b, nil
}

func (r *BookingRepository) LockBooking(_ context.Context, id uint) (*models.Booking, error) {
	defer r.lock()()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepository) UpdateBookingStatus(_ context.Context, b *models.Booking) error {
	defer r.lock()()

	stored, ok := r.s.bookings[b.ID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	stored.Status = b.Status
	stored.ReturnDate = b.ReturnDate
	stored.UpdatedAt = r.s.Clock()
	r.s.bookings[b.ID] = stored
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingRepository) ListBookings(_ context.Context, f domain.ListFilter) ([]models.Booking, error) {
	defer r.lock()()

	search := strings.ToLower(strings.TrimSpace(f.Search))

	var out []models.Booking
	for _, b := range r.s.bookings {
		if f.Status != "" && f.Status != "all" && b.Status != f.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(b.CustomerName), search) &&
			!strings.Contains(strings.ToLower(b.CustomerPhone), search) &&
			!strings.Contains(strings.ToLower(b.CustomerEmail), search) {
			continue
		}
		out = append(out, r.s.withDress(b))
	}

	slices.SortFunc(out, func(a, b models.Booking) int {
		return cmp.Or(b.BookingDate.Compare(a.BookingDate), cmp.Compare(b.ID, a.ID))
	})
	return out, nil
}

var _ domain.Repository = (*BookingRepository)(nil)
