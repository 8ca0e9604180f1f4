package meeting

import "time"

// Record represents the meeting_records table.
type Record struct {
	ID           string `gorm:"primaryKey"`
	MeetingDate  string `gorm:"not null;index"`
	RecorderName string `gorm:"not null"`
	Content      string `gorm:"type:text;not null"`
	CreatedBy    int64  `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Record) TableName() string {
	return "meeting_records"
}
