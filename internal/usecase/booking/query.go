package booking

import (
	"context"

	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/booking"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

type Queries struct {
	repo domain.Repository
}

func NewQueries(repo domain.Repository) *Queries {
	return &Queries{repo: repo}
}

func (q *Queries) Get(ctx context.Context, id uint) (*models.Booking, error) {
	return q.repo.GetBooking(ctx, id)
}

// List defaults to active bookings; pass Status "all" for every status.
func (q *Queries) List(ctx context.Context, f domain.ListFilter) ([]models.Booking, error) {
	if f.Status == "" {
		f.Status = string(domain.StatusActive)
	}
	return q.repo.ListBookings(ctx, f)
}
