package repository

import (
	"context"
	"errors"

	"clubhub/internal/domain/activity"
	clubhub_errors "clubhub/pkg/errors"

	"gorm.io/gorm"
)

type PostgresActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) Create(ctx context.Context, f *activity.File) error {
	res := r.db.WithContext(ctx).Create(f)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return clubhub_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresActivityRepository) GetByID(ctx context.Context, id string) (activity.File, error) {
	var f activity.File
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return activity.File{}, clubhub_errors.ErrNotFound
		}
		return activity.File{}, err
	}
	return f, nil
}

func (r *PostgresActivityRepository) List(ctx context.Context) ([]activity.File, error) {
	var files []activity.File
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *PostgresActivityRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&activity.File{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return clubhub_errors.ErrNotFound
	}
	return nil
}
