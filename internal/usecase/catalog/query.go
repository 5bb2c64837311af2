package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/catalog"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

// Queries groups the read-only catalog operations.
type Queries struct {
	repo   domain.Repository
	images *Images
}

func NewQueries(
	repo domain.Repository,
	images *Images,
) *Queries {
	return &Queries{
		repo:   repo,
		images: images,
	}
}

func (q *Queries) Get(ctx context.Context, id uint) (*models.Dress, error) {
	return q.repo.GetDress(ctx, id)
}

func (q *Queries) List(ctx context.Context, f domain.ListFilter) ([]models.Dress, error) {
	return q.repo.ListDresses(ctx, f)
}

func (q *Queries) Categories(ctx context.Context) ([]string, error) {
	return q.repo.ListCategories(ctx)
}

// Image returns the dress photo or the placeholder, with its content type.
func (q *Queries) Image(ctx context.Context, id uint) ([]byte, string, error) {
	d, err := q.repo.GetDress(ctx, id)
	if err != nil {
		return nil, "", err
	}

	data, contentType := q.images.Load(ctx, d)
	return data, contentType, nil
}
