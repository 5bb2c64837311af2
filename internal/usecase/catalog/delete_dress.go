package catalog

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/bridal-rental/internal/audit"
	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/catalog"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
	"github.com/BruksfildServices01/bridal-rental/internal/session"
)

type DeleteDress struct {
	repo   domain.Repository
	images *Images
	audit  *audit.Dispatcher
}

func NewDeleteDress(
	repo domain.Repository,
	images *Images,
	audit *audit.Dispatcher,
) *DeleteDress {
	return &DeleteDress{
		repo:   repo,
		images: images,
		audit:  audit,
	}
}

// Execute refuses to delete a dress that still has an active booking. The
// check and the delete share one transaction with the dress row locked, so
// a booking cannot slip in between.
func (uc *DeleteDress) Execute(
	ctx context.Context,
	actor session.Principal,
	id uint,
) error {

	var deleted *models.Dress

	err := uc.repo.Atomic(ctx, func(tx domain.Repository) error {
		d, err := tx.LockDress(ctx, id)
		if err != nil {
			return err
		}

		active, err := tx.CountActiveBookings(ctx, id)
		if err != nil {
			return err
		}
		if active > 0 {
			return domain.ErrHasActiveBookings
		}

		if err := tx.DeleteDress(ctx, id); err != nil {
			return err
		}

		deleted = d
		return nil
	})
	if err != nil {
		return err
	}

	uc.images.Discard(ctx, deleted.ImageKey)

	uc.audit.Dispatch(audit.Event{
		Action:  audit.ActionDeleteDress,
		Details: fmt.Sprintf("Deleted dress %s (by %s)", deleted.DressNumber, actor.Email),
	})

	return nil
}
