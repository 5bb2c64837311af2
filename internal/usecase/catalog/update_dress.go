package catalog

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/bridal-rental/internal/audit"
	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/catalog"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
	"github.com/BruksfildServices01/bridal-rental/internal/session"
)

type UpdateDress struct {
	repo   domain.Repository
	images *Images
	audit  *audit.Dispatcher
}

func NewUpdateDress(
	repo domain.Repository,
	images *Images,
	audit *audit.Dispatcher,
) *UpdateDress {
	return &UpdateDress{
		repo:   repo,
		images: images,
		audit:  audit,
	}
}

// Execute rewrites every editable field. The dress number never changes.
func (uc *UpdateDress) Execute(
	ctx context.Context,
	actor session.Principal,
	id uint,
	in DressInput,
) (*models.Dress, error) {

	var (
		d      *models.Dress
		oldKey string
	)

	// The row stays locked from read to write so a booking transition on
	// the same dress cannot be overwritten with a stale is_available.
	err := uc.repo.Atomic(ctx, func(tx domain.Repository) error {
		var err error
		d, err = tx.LockDress(ctx, id)
		if err != nil {
			return err
		}

		if err := in.apply(d); err != nil {
			return err
		}

		switch {
		case in.Image != nil && len(in.Image.Data) > 0:
			if oldKey, err = uc.images.Attach(ctx, d, in.Image); err != nil {
				return err
			}
		case in.RemoveImage:
			oldKey = uc.images.Detach(d)
		}

		if err := tx.UpdateDress(ctx, d); err != nil {
			if d.ImageKey != "" && oldKey != d.ImageKey {
				uc.images.Discard(ctx, d.ImageKey)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if oldKey != d.ImageKey {
		uc.images.Discard(ctx, oldKey)
	}

	uc.audit.Dispatch(audit.Event{
		Action:  audit.ActionEditDress,
		Details: fmt.Sprintf("Edited dress %s (by %s)", d.DressNumber, actor.Email),
	})

	return d, nil
}
