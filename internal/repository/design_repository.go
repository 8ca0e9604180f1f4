package repository

import (
	"context"
	"errors"

	"clubhub/internal/domain/design"
	clubhub_errors "clubhub/pkg/errors"

	"gorm.io/gorm"
)

type PostgresDesignRepository struct {
	db *gorm.DB
}

func NewDesignRepository(db *gorm.DB) DesignRepository {
	return &PostgresDesignRepository{db: db}
}

func (r *PostgresDesignRepository) Create(ctx context.Context, f *design.File) error {
	res := r.db.WithContext(ctx).Create(f)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return clubhub_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresDesignRepository) GetByID(ctx context.Context, id string) (design.File, error) {
	var f design.File
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return design.File{}, clubhub_errors.ErrNotFound
		}
		return design.File{}, err
	}
	return f, nil
}

func (r *PostgresDesignRepository) List(ctx context.Context, typeFilter string) ([]design.File, error) {
	q := r.db.WithContext(ctx).Model(&design.File{})
	if typeFilter != "" && typeFilter != "all" {
		q = q.Where("type = ?", typeFilter)
	}

	var files []design.File
	if err := q.Order("created_at DESC").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *PostgresDesignRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&design.File{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return clubhub_errors.ErrNotFound
	}
	return nil
}
