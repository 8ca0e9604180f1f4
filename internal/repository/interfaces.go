package repository

import (
	"context"

	"clubhub/internal/domain/activity"
	"clubhub/internal/domain/auditlog"
	"clubhub/internal/domain/design"
	"clubhub/internal/domain/finance"
	"clubhub/internal/domain/link"
	"clubhub/internal/domain/meeting"
	"clubhub/internal/domain/user"
	"clubhub/internal/domain/vendor"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByID(ctx context.Context, id int64) (user.User, error)
	GetByUsername(ctx context.Context, username string) (user.User, error)
	List(ctx context.Context) ([]user.User, error)
	Delete(ctx context.Context, id int64) error

	CreateSession(ctx context.Context, s *user.Session) error
	GetSessionByID(ctx context.Context, id uuid.UUID) (user.Session, error)
	RevokeSession(ctx context.Context, id uuid.UUID) error
}

type ActivityRepository interface {
	Create(ctx context.Context, f *activity.File) error
	GetByID(ctx context.Context, id string) (activity.File, error)
	List(ctx context.Context) ([]activity.File, error)
	Delete(ctx context.Context, id string) error
}

type DesignRepository interface {
	Create(ctx context.Context, f *design.File) error
	GetByID(ctx context.Context, id string) (design.File, error)
	List(ctx context.Context, typeFilter string) ([]design.File, error)
	Delete(ctx context.Context, id string) error
}

type VendorRepository interface {
	Create(ctx context.Context, v *vendor.Vendor) error
	GetByID(ctx context.Context, id string) (vendor.Vendor, error)
	List(ctx context.Context, f vendor.Filter) ([]vendor.Vendor, error)
	Update(ctx context.Context, v vendor.Vendor) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type LinkRepository interface {
	Create(ctx context.Context, l *link.Link) error
	GetByID(ctx context.Context, id string) (link.Link, error)
	List(ctx context.Context) ([]link.Link, error)
	Update(ctx context.Context, l link.Link) error
	Delete(ctx context.Context, id string) error
}

type MeetingRepository interface {
	Create(ctx context.Context, r *meeting.Record) error
	GetByID(ctx context.Context, id string) (meeting.Record, error)
	List(ctx context.Context) ([]meeting.Record, error)
	Update(ctx context.Context, r meeting.Record) error
	Delete(ctx context.Context, id string) error
}

type FinanceRepository interface {
	Create(ctx context.Context, r *finance.Record) error
	GetByID(ctx context.Context, id string) (finance.Record, error)
	List(ctx context.Context) ([]finance.Record, error)
	Update(ctx context.Context, r finance.Record) error
	Delete(ctx context.Context, id string) error
	Statistics(ctx context.Context) (finance.Statistics, error)
}

type AuditLogRepository interface {
	Create(ctx context.Context, e *auditlog.Entry) error
	GetByID(ctx context.Context, id string) (auditlog.Entry, error)
	Query(ctx context.Context, f auditlog.Filter, offset, limit int) ([]auditlog.Entry, int64, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}
