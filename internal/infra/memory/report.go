package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/report"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

type ReportRepository struct {
	txState
}

func NewReportRepository(s *Store) *ReportRepository {
	return &ReportRepository{txState{s: s}}
}

func (r *ReportRepository) CountDresses(_ context.Context, onlyAvailable bool) (int64, error) {
	defer r.lock()()

	var n int64
	for _, d := range r.s.dresses {
		if !onlyAvailable || d.IsAvailable {
			n++
		}
	}
	return n, nil
}

func (r *ReportRepository) CountBookings(_ context.Context, status string) (int64, error) {
	defer r.lock()()

	var n int64
	for _, b := range r.s.bookings {
		if status == "" || b.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *ReportRepository) UpcomingBookings(_ context.Context, day time.Time, limit int) ([]models.Booking, error) {
	defer r.lock()()

	var out []models.Booking
	for _, b := range r.s.bookings {
		if b.Status == "active" && !b.BookingDate.Before(day) {
			out = append(out, r.s.withDress(b))
		}
	}
	slices.SortFunc(out, func(a, b models.Booking) int {
		return cmp.Or(a.BookingDate.Compare(b.BookingDate), cmp.Compare(a.ID, b.ID))
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *ReportRepository) DueOn(_ context.Context, day time.Time) ([]models.Booking, error) {
	defer r.lock()()

	var out []models.Booking
	for _, b := range r.s.bookings {
		if b.Status == "active" && b.ReturnDate != nil && b.ReturnDate.Equal(day) {
			out = append(out, r.s.withDress(b))
		}
	}
	slices.SortFunc(out, func(a, b models.Booking) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *ReportRepository) CreatedBetween(_ context.Context, from, to time.Time) (int64, decimal.Decimal, error) {
	defer r.lock()()

	var n int64
	revenue := decimal.Zero
	for _, b := range r.s.bookings {
		if !b.CreatedAt.Before(from) && b.CreatedAt.Before(to) {
			n++
			revenue = revenue.Add(b.DepositPaid)
		}
	}
	return n, revenue, nil
}

func (r *ReportRepository) PopularDresses(_ context.Context, limit int) ([]domain.PopularDress, error) {
	defer r.lock()()

	counts := map[uint]int64{}
	for _, b := range r.s.bookings {
		if b.DressID != nil {
			counts[*b.DressID]++
		}
	}

	var out []domain.PopularDress
	for id, n := range counts {
		d, ok := r.s.dresses[id]
		if !ok {
			continue
		}
		out = append(out, domain.PopularDress{
			DressNumber:  d.DressNumber,
			ModelName:    d.ModelName,
			BookingCount: n,
		})
	}
	slices.SortFunc(out, func(a, b domain.PopularDress) int {
		return cmp.Or(cmp.Compare(b.BookingCount, a.BookingCount), strings.Compare(a.DressNumber, b.DressNumber))
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ domain.Repository = (*ReportRepository)(nil)
