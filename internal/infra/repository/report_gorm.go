package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/report"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) CountDresses(
	ctx context.Context,
	onlyAvailable bool,
) (int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Dress{})
	if onlyAvailable {
		q = q.Where("is_available = ?", true)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *ReportGormRepository) CountBookings(
	ctx context.Context,
	status string,
) (int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *ReportGormRepository) UpcomingBookings(
	ctx context.Context,
	day time.Time,
	limit int,
) ([]models.Booking, error) {

	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Dress", omitImage).
		Where("booking_date >= ? AND status = ?", day, "active").
		Order("booking_date ASC").
		Limit(limit).
		Find(&bookings).Error
	return bookings, err
}

func (r *ReportGormRepository) DueOn(
	ctx context.Context,
	day time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Dress", omitImage).
		Where("return_date = ? AND status = ?", day, "active").
		Order("id ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *ReportGormRepository) CreatedBetween(
	ctx context.Context,
	from time.Time,
	to time.Time,
) (int64, decimal.Decimal, error) {

	var row struct {
		Count   int64
		Revenue decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("COUNT(*) AS count, COALESCE(SUM(deposit_paid), 0) AS revenue").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&row).Error

	return row.Count, row.Revenue, err
}

func (r *ReportGormRepository) PopularDresses(
	ctx context.Context,
	limit int,
) ([]domain.PopularDress, error) {

	var out []domain.PopularDress
	err := r.db.WithContext(ctx).
		Model(&models.Dress{}).
		Select("dresses.dress_number, dresses.model_name, COUNT(bookings.id) AS booking_count").
		Joins("JOIN bookings ON bookings.dress_id = dresses.id").
		Group("dresses.id, dresses.dress_number, dresses.model_name").
		Order("booking_count DESC, dresses.dress_number ASC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// Compile-time check
var _ domain.Repository = (*ReportGormRepository)(nil)
