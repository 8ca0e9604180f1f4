package repository

import (
	"context"
	"errors"
	"time"

	"clubhub/internal/domain/finance"
	clubhub_errors "clubhub/pkg/errors"

	"gorm.io/gorm"
)

type PostgresFinanceRepository struct {
	db *gorm.DB
}

func NewFinanceRepository(db *gorm.DB) FinanceRepository {
	return &PostgresFinanceRepository{db: db}
}

func (r *PostgresFinanceRepository) Create(ctx context.Context, rec *finance.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *PostgresFinanceRepository) GetByID(ctx context.Context, id string) (finance.Record, error) {
	var rec finance.Record
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return finance.Record{}, clubhub_errors.ErrNotFound
		}
		return finance.Record{}, err
	}
	return rec, nil
}

func (r *PostgresFinanceRepository) List(ctx context.Context) ([]finance.Record, error) {
	var records []finance.Record
	err := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Update writes the full record state, receipt columns included. The
// service layer decides whether the receipt columns carry new or old
// values before calling.
func (r *PostgresFinanceRepository) Update(ctx context.Context, rec finance.Record) error {
	rec.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).
		Model(&finance.Record{}).
		Where("id = ?", rec.ID).
		Updates(map[string]interface{}{
			"kind":                  rec.Kind,
			"amount":                rec.Amount,
			"date":                  rec.Date,
			"description":           rec.Description,
			"receipt_filename":      rec.ReceiptFilename,
			"receipt_original_name": rec.ReceiptOriginalName,
			"updated_at":            rec.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return clubhub_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresFinanceRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&finance.Record{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return clubhub_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresFinanceRepository) Statistics(ctx context.Context) (finance.Statistics, error) {
	type row struct {
		Kind  string
		Total float64
		Count int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&finance.Record{}).
		Select("kind, SUM(amount) as total, COUNT(*) as count").
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return finance.Statistics{}, err
	}

	var stats finance.Statistics
	for _, rw := range rows {
		switch rw.Kind {
		case finance.KindIncome:
			stats.TotalIncome = rw.Total
			stats.IncomeCount = rw.Count
		case finance.KindExpense:
			stats.TotalExpense = rw.Total
			stats.ExpenseCount = rw.Count
		}
	}
	stats.Balance = stats.TotalIncome - stats.TotalExpense
	return stats, nil
}
