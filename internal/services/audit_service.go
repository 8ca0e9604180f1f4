package services

import (
	"context"
	"fmt"
	"time"

	"clubhub/internal/domain/auditlog"
	"clubhub/internal/domain/user"
	"clubhub/internal/repository"
	clubhub_errors "clubhub/pkg/errors"
	"clubhub/pkg/logger"

	"github.com/google/uuid"
)

// RequestMeta carries the transport-level facts recorded with every
// audit entry.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// AuditService appends and queries the operation log. Appends never
// fail the primary operation: a write error is logged and swallowed.
type AuditService struct {
	repo     repository.AuditLogRepository
	logger   *logger.Logger
	pageSize int
}

func NewAuditService(repo repository.AuditLogRepository, l *logger.Logger, defaultPageSize int) *AuditService {
	if defaultPageSize <= 0 {
		defaultPageSize = 20
	}
	return &AuditService{repo: repo, logger: l, pageSize: defaultPageSize}
}

// Record appends one entry for a completed mutation.
func (s *AuditService) Record(ctx context.Context, actor user.Principal, action, description string, details auditlog.Details, meta RequestMeta) {
	entry := &auditlog.Entry{
		ID:          uuid.New().String(),
		UserID:      actor.ID,
		Username:    actor.Username,
		Action:      action,
		Description: description,
		Details:     details.Marshal(),
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Errorf("audit append failed for %s/%s: %v", actor.Username, action, err)
	}
}

type AuditPage struct {
	Entries  []auditlog.Entry `json:"logs"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

func (s *AuditService) Query(ctx context.Context, f auditlog.Filter, page, pageSize int) (AuditPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.pageSize
	}

	entries, total, err := s.repo.Query(ctx, f, (page-1)*pageSize, pageSize)
	if err != nil {
		return AuditPage{}, err
	}
	if entries == nil {
		entries = []auditlog.Entry{}
	}

	return AuditPage{Entries: entries, Total: total, Page: page, PageSize: pageSize}, nil
}

// DeleteEntry removes one entry. Admin only; the deletion is itself
// audited after it completes.
func (s *AuditService) DeleteEntry(ctx context.Context, actor user.Principal, id string, meta RequestMeta) error {
	if !actor.IsAdmin() {
		return clubhub_errors.ErrForbidden
	}

	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.Record(ctx, actor, auditlog.ActionDelete,
		fmt.Sprintf("Deleted operation log: %s's %s action", entry.Username, entry.Action),
		auditlog.Details{
			"deletedLogId":          entry.ID,
			"deletedLogUser":        entry.Username,
			"deletedLogAction":      entry.Action,
			"deletedLogDescription": entry.Description,
			"deletedLogTime":        entry.CreatedAt,
		}, meta)

	return nil
}

// DeleteAll removes every entry in one bulk operation and appends
// exactly one audit entry recording the count. That entry survives
// because it is written after the delete completes.
func (s *AuditService) DeleteAll(ctx context.Context, actor user.Principal, meta RequestMeta) (int64, error) {
	if !actor.IsAdmin() {
		return 0, clubhub_errors.ErrForbidden
	}

	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.Record(ctx, actor, auditlog.ActionDelete,
		fmt.Sprintf("Deleted all operation logs, %d entries removed", deleted),
		auditlog.Details{
			"deletedRecordsCount": deleted,
			"operationType":       "bulk_delete_all",
		}, meta)

	return deleted, nil
}
