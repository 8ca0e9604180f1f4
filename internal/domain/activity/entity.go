package activity

import "time"

const (
	CategoryProposal = "proposal"
	CategoryTimeline = "timeline"
)

// File represents the activity_files table. Category is fixed at upload
// time; StoredFilename is the blob name on disk and is unique per row.
type File struct {
	ID             string `gorm:"primaryKey"`
	StoredFilename string `gorm:"uniqueIndex;not null"`
	OriginalName   string `gorm:"not null"`
	MimeType       string `gorm:"not null"`
	SizeBytes      int64  `gorm:"not null"`
	Category       string `gorm:"not null;index"`
	UploadedBy     int64  `gorm:"index"`
	CreatedAt      time.Time
}

func (File) TableName() string {
	return "activity_files"
}

func ValidCategory(c string) bool {
	return c == CategoryProposal || c == CategoryTimeline
}
