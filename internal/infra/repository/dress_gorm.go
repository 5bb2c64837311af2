package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/catalog"
	"github.com/BruksfildServices01/bridal-rental/internal/httperr"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

type DressGormRepository struct {
	db *gorm.DB
}

func NewDressGormRepository(db *gorm.DB) *DressGormRepository {
	return &DressGormRepository{db: db}
}

func (r *DressGormRepository) Atomic(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DressGormRepository{db: tx})
	})
}

func (r *DressGormRepository) CreateDress(
	ctx context.Context,
	d *models.Dress,
) error {
	err := r.db.WithContext(ctx).Create(d).Error
	if httperr.IsUniqueViolation(err) {
		return domain.ErrDuplicateIdentifier
	}
	return err
}

func (r *DressGormRepository) GetDress(
	ctx context.Context,
	id uint,
) (*models.Dress, error) {
	return r.first(r.db.WithContext(ctx), id)
}

func (r *DressGormRepository) LockDress(
	ctx context.Context,
	id uint,
) (*models.Dress, error) {
	return r.first(
		r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}),
		id,
	)
}

func (r *DressGormRepository) first(q *gorm.DB, id uint) (*models.Dress, error) {
	var d models.Dress
	err := q.First(&d, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrDressNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DressGormRepository) ExistsByNumber(
	ctx context.Context,
	number string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Dress{}).
		Where("dress_number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DressGormRepository) ListDresses(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Dress, error) {

	q := r.db.WithContext(ctx).Omit("image_data")

	if f.Category != "" && f.Category != "all" {
		q = q.Where("category = ?", f.Category)
	}

	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"(LOWER(dress_number) LIKE ? OR LOWER(model_name) LIKE ? OR LOWER(color) LIKE ?)",
			like, like, like,
		)
	}

	var dresses []models.Dress
	if err := q.
		Order("dress_number ASC").
		Find(&dresses).Error; err != nil {
		return nil, err
	}
	return dresses, nil
}

func (r *DressGormRepository) ListCategories(
	ctx context.Context,
) ([]string, error) {

	var cats []string
	if err := r.db.WithContext(ctx).
		Model(&models.Dress{}).
		Distinct().
		Where("category <> ''").
		Order("category ASC").
		Pluck("category", &cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *DressGormRepository) CountDresses(
	ctx context.Context,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Dress{}).Count(&count).Error
	return count, err
}

func (r *DressGormRepository) UpdateDress(
	ctx context.Context,
	d *models.Dress,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Dress{ID: d.ID}).
		Select("*").
		Omit("id", "dress_number", "booking_count", "last_booking_date", "created_at").
		Updates(d).Error
}

func (r *DressGormRepository) DeleteDress(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Dress{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrDressNotFound
	}
	return nil
}

func (r *DressGormRepository) CountActiveBookings(
	ctx context.Context,
	dressID uint,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("dress_id = ? AND status = ?", dressID, "active").
		Count(&count).Error
	return count, err
}

// Compile-time check
var _ domain.Repository = (*DressGormRepository)(nil)
