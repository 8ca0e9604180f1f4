package repository

import (
	"context"
	"errors"
	"time"

	"clubhub/internal/domain/meeting"
	clubhub_errors "clubhub/pkg/errors"

	"gorm.io/gorm"
)

type PostgresMeetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &PostgresMeetingRepository{db: db}
}

func (r *PostgresMeetingRepository) Create(ctx context.Context, rec *meeting.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *PostgresMeetingRepository) GetByID(ctx context.Context, id string) (meeting.Record, error) {
	var rec meeting.Record
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return meeting.Record{}, clubhub_errors.ErrNotFound
		}
		return meeting.Record{}, err
	}
	return rec, nil
}

func (r *PostgresMeetingRepository) List(ctx context.Context) ([]meeting.Record, error) {
	var records []meeting.Record
	err := r.db.WithContext(ctx).
		Order("meeting_date DESC, created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresMeetingRepository) Update(ctx context.Context, rec meeting.Record) error {
	rec.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).
		Model(&meeting.Record{}).
		Where("id = ?", rec.ID).
		Updates(map[string]interface{}{
			"meeting_date":  rec.MeetingDate,
			"recorder_name": rec.RecorderName,
			"content":       rec.Content,
			"updated_at":    rec.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return clubhub_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresMeetingRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&meeting.Record{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return clubhub_errors.ErrNotFound
	}
	return nil
}
