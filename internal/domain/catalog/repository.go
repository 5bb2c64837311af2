package catalog

import (
	"context"

	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

type ListFilter struct {
	// Category "" or "all" means every category.
	Category string
	// Search is a case-insensitive substring over number, model and color.
	Search string
}

type Repository interface {
	Atomic(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	CreateDress(
		ctx context.Context,
		d *models.Dress,
	) error

	// GetDress returns ErrDressNotFound when the id is unknown.
	GetDress(
		ctx context.Context,
		id uint,
	) (*models.Dress, error)

	// LockDress is GetDress with a row lock held until the transaction ends.
	LockDress(
		ctx context.Context,
		id uint,
	) (*models.Dress, error)

	ExistsByNumber(
		ctx context.Context,
		number string,
	) (bool, error)

	ListDresses(
		ctx context.Context,
		f ListFilter,
	) ([]models.Dress, error)

	ListCategories(
		ctx context.Context,
	) ([]string, error)

	CountDresses(
		ctx context.Context,
	) (int64, error)

	// UpdateDress persists every editable field. dress_number and the
	// booking counters are never written here.
	UpdateDress(
		ctx context.Context,
		d *models.Dress,
	) error

	DeleteDress(
		ctx context.Context,
		id uint,
	) error

	CountActiveBookings(
		ctx context.Context,
		dressID uint,
	) (int64, error)
}
