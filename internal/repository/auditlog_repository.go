package repository

import (
	"context"
	"errors"
	"time"

	"clubhub/internal/domain/auditlog"
	clubhub_errors "clubhub/pkg/errors"

	"gorm.io/gorm"
)

type PostgresAuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &PostgresAuditLogRepository{db: db}
}

func (r *PostgresAuditLogRepository) Create(ctx context.Context, e *auditlog.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *PostgresAuditLogRepository) GetByID(ctx context.Context, id string) (auditlog.Entry, error) {
	var e auditlog.Entry
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auditlog.Entry{}, clubhub_errors.ErrNotFound
		}
		return auditlog.Entry{}, err
	}
	return e, nil
}

// Query applies the filter conjunctively and returns one page plus the
// total matching count for UI paging.
func (r *PostgresAuditLogRepository) Query(ctx context.Context, f auditlog.Filter, offset, limit int) ([]auditlog.Entry, int64, error) {
	q := r.applyFilter(r.db.WithContext(ctx).Model(&auditlog.Entry{}), f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []auditlog.Entry
	err := q.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *PostgresAuditLogRepository) applyFilter(q *gorm.DB, f auditlog.Filter) *gorm.DB {
	if f.Username != "" {
		q = q.Where("username LIKE ?", "%"+f.Username+"%")
	}
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Keyword != "" {
		pattern := "%" + f.Keyword + "%"
		// details is JSONB on postgres, which has no LIKE operator;
		// the cast keeps the predicate valid on both dialects.
		q = q.Where("description LIKE ? OR CAST(details AS TEXT) LIKE ?", pattern, pattern)
	}
	// Date bounds are computed in Go so the same query works on both
	// postgres and sqlite.
	if t, err := time.Parse("2006-01-02", f.StartDate); err == nil {
		q = q.Where("created_at >= ?", t)
	}
	if t, err := time.Parse("2006-01-02", f.EndDate); err == nil {
		q = q.Where("created_at < ?", t.AddDate(0, 0, 1))
	}
	return q
}

func (r *PostgresAuditLogRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&auditlog.Entry{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return clubhub_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresAuditLogRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&auditlog.Entry{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
