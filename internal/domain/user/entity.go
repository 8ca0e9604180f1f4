package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents the users table. Unlike the resource tables the id is
// an auto-increment integer, kept for compatibility with the existing
// member records.
type User struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	StudentID    string
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:user"`
	CreatedAt    time.Time
}

// Session represents the user_sessions table. A row exists for every
// live login; revoking the row invalidates the cookie immediately.
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    int64     `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	IsRevoked bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

func (Session) TableName() string {
	return "user_sessions"
}

// Principal is the authenticated actor attached to a request. Role is
// re-read from the users table on every request, never cached in the
// session, so a demotion takes effect on the next call.
type Principal struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
