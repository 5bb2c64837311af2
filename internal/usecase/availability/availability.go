package availability

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/booking"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

// Engine answers "is this dress free" questions. It never writes.
type Engine struct {
	repo domain.Repository
}

func NewEngine(repo domain.Repository) *Engine {
	return &Engine{repo: repo}
}

// Conflict returns the first active booking of the dress that overlaps
// [start, end], or nil. A nil end means open-ended.
func (e *Engine) Conflict(
	ctx context.Context,
	dressID uint,
	start time.Time,
	end *time.Time,
) (*models.Booking, error) {

	candidate, err := domain.NewRange(start, end)
	if err != nil {
		return nil, err
	}

	existing, err := e.repo.ListActiveForDress(ctx, dressID)
	if err != nil {
		return nil, err
	}

	return domain.FirstConflict(candidate, existing), nil
}

func (e *Engine) CheckConflict(
	ctx context.Context,
	dressID uint,
	start time.Time,
	end *time.Time,
) (bool, error) {

	b, err := e.Conflict(ctx, dressID, start, end)
	if err != nil {
		return false, err
	}
	return b != nil, nil
}

// FindAvailable lists dresses flagged available (optionally in category)
// that no active booking covers on date, in catalog order.
func (e *Engine) FindAvailable(
	ctx context.Context,
	date time.Time,
	category string,
) ([]models.Dress, error) {

	dresses, err := e.repo.ListAvailableDresses(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(dresses) == 0 {
		return []models.Dress{}, nil
	}

	ids := make([]uint, len(dresses))
	for i, d := range dresses {
		ids[i] = d.ID
	}

	active, err := e.repo.ListActiveForDresses(ctx, ids)
	if err != nil {
		return nil, err
	}

	byDress := make(map[uint][]models.Booking, len(active))
	for _, b := range active {
		if b.DressID != nil {
			byDress[*b.DressID] = append(byDress[*b.DressID], b)
		}
	}

	target := domain.Day(date)
	out := make([]models.Dress, 0, len(dresses))
	for _, d := range dresses {
		if domain.FirstConflict(target, byDress[d.ID]) == nil {
			out = append(out, d)
		}
	}
	return out, nil
}
