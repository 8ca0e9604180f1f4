package repository

import (
	"context"
	"errors"
	"time"

	"clubhub/internal/domain/link"
	clubhub_errors "clubhub/pkg/errors"

	"gorm.io/gorm"
)

type PostgresLinkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &PostgresLinkRepository{db: db}
}

func (r *PostgresLinkRepository) Create(ctx context.Context, l *link.Link) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *PostgresLinkRepository) GetByID(ctx context.Context, id string) (link.Link, error) {
	var l link.Link
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return link.Link{}, clubhub_errors.ErrNotFound
		}
		return link.Link{}, err
	}
	return l, nil
}

func (r *PostgresLinkRepository) List(ctx context.Context) ([]link.Link, error) {
	var links []link.Link
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *PostgresLinkRepository) Update(ctx context.Context, l link.Link) error {
	l.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).
		Model(&link.Link{}).
		Where("id = ?", l.ID).
		Updates(map[string]interface{}{
			"name":        l.Name,
			"url":         l.URL,
			"description": l.Description,
			"updated_at":  l.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return clubhub_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresLinkRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&link.Link{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return clubhub_errors.ErrNotFound
	}
	return nil
}
