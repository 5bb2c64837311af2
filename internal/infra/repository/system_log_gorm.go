package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

type SystemLogGormRepository struct {
	db *gorm.DB
}

func NewSystemLogGormRepository(db *gorm.DB) *SystemLogGormRepository {
	return &SystemLogGormRepository{db: db}
}

func (r *SystemLogGormRepository) Append(
	ctx context.Context,
	entry *models.SystemLog,
) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *SystemLogGormRepository) List(
	ctx context.Context,
	action string,
	limit int,
	offset int,
) ([]models.SystemLog, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.SystemLog{})
	if action != "" {
		q = q.Where("action = ?", action)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.SystemLog
	if err := q.
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
