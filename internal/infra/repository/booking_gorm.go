package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/booking"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) Atomic(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Dress
// --------------------------------------------------

func (r *BookingGormRepository) LockDress(
	ctx context.Context,
	dressID uint,
) (*models.Dress, error) {

	var d models.Dress
	err := r.db.WithContext(ctx).
		Omit("image_data").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&d, dressID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrDressNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *BookingGormRepository) SaveDressState(
	ctx context.Context,
	d *models.Dress,
) error {
	return r.db.WithContext(ctx).
		Model(d).
		Select("is_available", "booking_count", "last_booking_date").
		Updates(d).Error
}

func (r *BookingGormRepository) ListAvailableDresses(
	ctx context.Context,
	category string,
) ([]models.Dress, error) {

	q := r.db.WithContext(ctx).
		Omit("image_data").
		Where("is_available = ?", true)

	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}

	var dresses []models.Dress
	if err := q.Order("dress_number ASC").Find(&dresses).Error; err != nil {
		return nil, err
	}
	return dresses, nil
}

// --------------------------------------------------
// Booking (conflict / create)
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveForDress(
	ctx context.Context,
	dressID uint,
) ([]models.Booking, error) {
	return r.ListActiveForDresses(ctx, []uint{dressID})
}

func (r *BookingGormRepository) ListActiveForDresses(
	ctx context.Context,
	dressIDs []uint,
) ([]models.Booking, error) {

	if len(dressIDs) == 0 {
		return nil, nil
	}

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("dress_id IN ? AND status = ?", dressIDs, string(domain.StatusActive)).
		Order("booking_date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

// --------------------------------------------------
// Booking (return / cancel)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Preload("Dress", omitImage).
		First(&b, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) LockBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).
		Model(b).
		Select("status", "return_date").
		Updates(b).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Preload("Dress", omitImage)

	if f.Status != "" && f.Status != "all" {
		q = q.Where("status = ?", f.Status)
	}

	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"(LOWER(customer_name) LIKE ? OR LOWER(customer_phone) LIKE ? OR LOWER(customer_email) LIKE ?)",
			like, like, like,
		)
	}

	var bookings []models.Booking
	if err := q.
		Order("booking_date DESC, id DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func omitImage(db *gorm.DB) *gorm.DB {
	return db.Omit("image_data")
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
