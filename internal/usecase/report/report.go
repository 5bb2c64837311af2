package report

import (
	"context"

	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/report"
	"github.com/BruksfildServices01/bridal-rental/internal/timezone"
)

type Reports struct {
	repo     domain.Repository
	timezone string
}

func NewReports(repo domain.Repository, tz string) *Reports {
	return &Reports{repo: repo, timezone: tz}
}

func (r *Reports) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	today := timezone.Today(r.timezone)

	var (
		out domain.Dashboard
		err error
	)

	if out.TotalDresses, err = r.repo.CountDresses(ctx, false); err != nil {
		return nil, err
	}
	if out.AvailableDresses, err = r.repo.CountDresses(ctx, true); err != nil {
		return nil, err
	}
	if out.ActiveBookings, err = r.repo.CountBookings(ctx, "active"); err != nil {
		return nil, err
	}
	if out.TotalBookings, err = r.repo.CountBookings(ctx, ""); err != nil {
		return nil, err
	}
	if out.Upcoming, err = r.repo.UpcomingBookings(ctx, today, domain.UpcomingLimit); err != nil {
		return nil, err
	}
	if out.DueToday, err = r.repo.DueOn(ctx, today); err != nil {
		return nil, err
	}

	return &out, nil
}

// Monthly covers bookings created in the current calendar month, shop time.
// Revenue is the deposits collected on those bookings.
func (r *Reports) Monthly(ctx context.Context) (*domain.Monthly, error) {
	from, to := domain.MonthBounds(timezone.NowIn(r.timezone))

	count, revenue, err := r.repo.CreatedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	popular, err := r.repo.PopularDresses(ctx, domain.PopularLimit)
	if err != nil {
		return nil, err
	}

	return &domain.Monthly{
		From:     from,
		To:       to,
		Bookings: count,
		Revenue:  revenue,
		Popular:  popular,
	}, nil
}
