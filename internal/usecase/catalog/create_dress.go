package catalog

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/bridal-rental/internal/audit"
	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/catalog"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
	"github.com/BruksfildServices01/bridal-rental/internal/session"
)

type CreateDress struct {
	repo   domain.Repository
	images *Images
	audit  *audit.Dispatcher
}

func NewCreateDress(
	repo domain.Repository,
	images *Images,
	audit *audit.Dispatcher,
) *CreateDress {
	return &CreateDress{
		repo:   repo,
		images: images,
		audit:  audit,
	}
}

func (uc *CreateDress) Execute(
	ctx context.Context,
	actor session.Principal,
	in DressInput,
) (*models.Dress, error) {

	number := domain.NormalizeNumber(in.DressNumber)
	if number == "" {
		return nil, domain.ErrNumberRequired
	}

	exists, err := uc.repo.ExistsByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateIdentifier
	}

	d := &models.Dress{DressNumber: number}
	if err := in.apply(d); err != nil {
		return nil, err
	}

	if in.Image != nil && len(in.Image.Data) > 0 {
		if _, err := uc.images.Attach(ctx, d, in.Image); err != nil {
			return nil, err
		}
	}

	// The unique index still guards against a concurrent insert.
	if err := uc.repo.CreateDress(ctx, d); err != nil {
		uc.images.Discard(ctx, d.ImageKey)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:  audit.ActionAddDress,
		Details: fmt.Sprintf("Added dress %s (by %s)", d.DressNumber, actor.Email),
	})

	return d, nil
}
