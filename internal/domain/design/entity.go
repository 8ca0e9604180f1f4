package design

import "time"

const (
	TypeUniform     = "uniform"
	TypeDesign      = "design"
	TypePostVariant = "post-variant"
)

// File represents the design_files table.
type File struct {
	ID             string `gorm:"primaryKey"`
	Title          string `gorm:"not null"`
	Description    string
	Category       string `gorm:"not null"`
	Type           string `gorm:"not null;index"`
	StoredFilename string `gorm:"uniqueIndex;not null"`
	OriginalName   string `gorm:"not null"`
	MimeType       string `gorm:"not null"`
	SizeBytes      int64  `gorm:"not null"`
	UploadedBy     int64  `gorm:"index"`
	CreatedAt      time.Time
}

func (File) TableName() string {
	return "design_files"
}

func ValidType(t string) bool {
	return t == TypeUniform || t == TypeDesign || t == TypePostVariant
}
