package repository

import (
	"context"
	"errors"
	"time"

	"clubhub/internal/domain/vendor"
	clubhub_errors "clubhub/pkg/errors"

	"gorm.io/gorm"
)

type PostgresVendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &PostgresVendorRepository{db: db}
}

func (r *PostgresVendorRepository) Create(ctx context.Context, v *vendor.Vendor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *PostgresVendorRepository) GetByID(ctx context.Context, id string) (vendor.Vendor, error) {
	var v vendor.Vendor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return vendor.Vendor{}, clubhub_errors.ErrNotFound
		}
		return vendor.Vendor{}, err
	}
	return v, nil
}

func (r *PostgresVendorRepository) List(ctx context.Context, f vendor.Filter) ([]vendor.Vendor, error) {
	q := r.db.WithContext(ctx).Model(&vendor.Vendor{})
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}

	var vendors []vendor.Vendor
	if err := q.Order("created_at DESC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *PostgresVendorRepository) Update(ctx context.Context, v vendor.Vendor) error {
	v.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).
		Model(&vendor.Vendor{}).
		Where("id = ?", v.ID).
		Updates(map[string]interface{}{
			"name":        v.Name,
			"email":       v.Email,
			"type":        v.Type,
			"description": v.Description,
			"updated_at":  v.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return clubhub_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresVendorRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&vendor.Vendor{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return clubhub_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresVendorRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&vendor.Vendor{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
