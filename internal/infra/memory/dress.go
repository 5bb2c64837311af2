package memory

import (
	"context"
	"slices"
	"strings"

	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/catalog"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

type DressRepository struct {
	txState
}

func NewDressRepository(s *Store) *DressRepository {
	return &DressRepository{txState{s: s}}
}

func (r *DressRepository) Atomic(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	if r.inTx {
		return fn(r)
	}
	return r.s.atomic(func() error {
		return fn(&DressRepository{txState{s: r.s, inTx: true}})
	})
}

func (r *DressRepository) CreateDress(_ context.Context, d *models.Dress) error {
	defer r.lock()()

	for _, existing := range r.s.dresses {
		if existing.DressNumber == d.DressNumber {
			return domain.ErrDuplicateIdentifier
		}
	}

	r.s.nextDressID++
	now := r.s.Clock()
	d.ID = r.s.nextDressID
	d.CreatedAt = now
	d.UpdatedAt = now
	r.s.dresses[d.ID] = *d
	return nil
}

func (r *DressRepository) GetDress(_ context.Context, id uint) (*models.Dress, error) {
	defer r.lock()()

	d, ok := r.s.dresses[id]
	if !ok {
		return nil, domain.ErrDressNotFound
	}
	return &d, nil
}

func (r *DressRepository) LockDress(ctx context.Context, id uint) (*models.Dress, error) {
	return r.GetDress(ctx, id)
}

func (r *DressRepository) ExistsByNumber(_ context.Context, number string) (bool, error) {
	defer r.lock()()

	for _, d := range r.s.dresses {
		if d.DressNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *DressRepository) ListDresses(_ context.Context, f domain.ListFilter) ([]models.Dress, error) {
	defer r.lock()()

	search := strings.ToLower(strings.TrimSpace(f.Search))

	var out []models.Dress
	for _, d := range r.s.dresses {
		if f.Category != "" && f.Category != "all" && d.Category != f.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(d.DressNumber), search) &&
			!strings.Contains(strings.ToLower(d.ModelName), search) &&
			!strings.Contains(strings.ToLower(d.Color), search) {
			continue
		}
		d.ImageData = nil
		out = append(out, d)
	}

	sortByNumber(out)
	return out, nil
}

func (r *DressRepository) ListCategories(_ context.Context) ([]string, error) {
	defer r.lock()()

	var cats []string
	for _, d := range r.s.dresses {
		if d.Category != "" && !slices.Contains(cats, d.Category) {
			cats = append(cats, d.Category)
		}
	}
	slices.Sort(cats)
	return cats, nil
}

func (r *DressRepository) CountDresses(_ context.Context) (int64, error) {
	defer r.lock()()
	return int64(len(r.s.dresses)), nil
}

func (r *DressRepository) UpdateDress(_ context.Context, d *models.Dress) error {
	defer r.lock()()

	stored, ok := r.s.dresses[d.ID]
	if !ok {
		return domain.ErrDressNotFound
	}

	updated := *d
	updated.DressNumber = stored.DressNumber
	updated.BookingCount = stored.BookingCount
	updated.LastBookingDate = stored.LastBookingDate
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = r.s.Clock()
	r.s.dresses[d.ID] = updated
	return nil
}

func (r *DressRepository) DeleteDress(_ context.Context, id uint) error {
	defer r.lock()()

	if _, ok := r.s.dresses[id]; !ok {
		return domain.ErrDressNotFound
	}
	delete(r.s.dresses, id)

	// ON DELETE SET NULL
	for bid, b := range r.s.bookings {
		if b.DressID != nil && *b.DressID == id {
			b.DressID = nil
			r.s.bookings[bid] = b
		}
	}
	return nil
}

func (r *DressRepository) CountActiveBookings(_ context.Context, dressID uint) (int64, error) {
	defer r.lock()()

	var n int64
	for _, b := range r.s.bookings {
		if b.DressID != nil && *b.DressID == dressID && b.Status == "active" {
			n++
		}
	}
	return n, nil
}

func sortByNumber(ds []models.Dress) {
	slices.SortFunc(ds, func(a, b models.Dress) int {
		return strings.Compare(a.DressNumber, b.DressNumber)
	})
}

var _ domain.Repository = (*DressRepository)(nil)
