package link

import "time"

// Link represents the shared_links table.
type Link struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	URL         string `gorm:"not null"`
	Description string
	CreatedBy   int64 `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Link) TableName() string {
	return "shared_links"
}
