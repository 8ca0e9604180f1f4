package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clubhub/internal/blob"
	"clubhub/internal/domain/auditlog"
	"clubhub/internal/domain/finance"
	"clubhub/internal/domain/user"
	"clubhub/internal/repository"
	clubhub_errors "clubhub/pkg/errors"
	"clubhub/pkg/logger"

	"github.com/google/uuid"
)

type FinanceService struct {
	repo   repository.FinanceRepository
	blobs  *blob.Store
	audit  *AuditService
	logger *logger.Logger
}

func NewFinanceService(repo repository.FinanceRepository, blobs *blob.Store, audit *AuditService, l *logger.Logger) *FinanceService {
	return &FinanceService{repo: repo, blobs: blobs, audit: audit, logger: l}
}

type FinanceRecordInfo struct {
	ID          string    `json:"id"`
	Kind        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	HasReceipt  bool      `json:"hasReceipt"`
	ReceiptName string    `json:"receiptName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type FinanceInput struct {
	Kind        string
	Amount      float64
	Date        string
	Description string
}

func (in FinanceInput) validate() error {
	var missing []string
	if !finance.ValidKind(in.Kind) {
		missing = append(missing, "type")
	}
	if in.Amount < 0 {
		missing = append(missing, "amount")
	}
	if strings.TrimSpace(in.Date) == "" {
		missing = append(missing, "date")
	} else if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return clubhub_errors.NewValidation(missing...)
	}
	return nil
}

// Create stores the receipt blob, when present, before the row. A
// failed insert removes the blob again so nothing is left orphaned.
func (s *FinanceService) Create(ctx context.Context, actor user.Principal, in FinanceInput, receipt *Upload, meta RequestMeta) (FinanceRecordInfo, error) {
	if err := in.validate(); err != nil {
		return FinanceRecordInfo{}, err
	}

	var stored, originalName string
	if receipt != nil {
		var err error
		stored, _, err = s.blobs.Save(blob.KindFinance, receipt.OriginalName, receipt.Content)
		if err != nil {
			return FinanceRecordInfo{}, err
		}
		originalName = receipt.OriginalName
	}

	now := time.Now()
	r := finance.Record{
		ID:                  uuid.NewString(),
		Kind:                in.Kind,
		Amount:              in.Amount,
		Date:                in.Date,
		Description:         strings.TrimSpace(in.Description),
		ReceiptFilename:     stored,
		ReceiptOriginalName: originalName,
		CreatedBy:           actor.ID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.repo.Create(ctx, &r); err != nil {
		if stored != "" {
			if rmErr := s.blobs.Remove(blob.KindFinance, stored); rmErr != nil {
				s.logger.Errorf("cleanup of receipt blob %s failed: %v", stored, rmErr)
			}
		}
		return FinanceRecordInfo{}, err
	}

	s.audit.Record(ctx, actor, auditlog.ActionCreate,
		fmt.Sprintf("Created finance record: %s %.2f (%s)", r.Kind, r.Amount, r.Date),
		auditlog.Details{
			"recordId":   r.ID,
			"type":       r.Kind,
			"amount":     r.Amount,
			"date":       r.Date,
			"hasReceipt": stored != "",
		}, meta)

	return toFinanceInfo(r), nil
}

func (s *FinanceService) List(ctx context.Context) ([]FinanceRecordInfo, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]FinanceRecordInfo, 0, len(records))
	for _, r := range records {
		infos = append(infos, toFinanceInfo(r))
	}
	return infos, nil
}

func (s *FinanceService) Get(ctx context.Context, id string) (FinanceRecordInfo, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return FinanceRecordInfo{}, err
	}
	return toFinanceInfo(r), nil
}

func (s *FinanceService) Statistics(ctx context.Context) (finance.Statistics, error) {
	return s.repo.Statistics(ctx)
}

// Update replaces the receipt, when a new one is supplied, in strict
// order: new blob on disk, row updated, only then the old blob removed.
// The old blob is never deleted before the row points at the new one.
func (s *FinanceService) Update(ctx context.Context, actor user.Principal, id string, in FinanceInput, receipt *Upload, meta RequestMeta) (FinanceRecordInfo, error) {
	if err := in.validate(); err != nil {
		return FinanceRecordInfo{}, err
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return FinanceRecordInfo{}, err
	}

	oldReceipt := r.ReceiptFilename
	var newReceipt string
	if receipt != nil {
		newReceipt, _, err = s.blobs.Save(blob.KindFinance, receipt.OriginalName, receipt.Content)
		if err != nil {
			return FinanceRecordInfo{}, err
		}
		r.ReceiptFilename = newReceipt
		r.ReceiptOriginalName = receipt.OriginalName
	}

	r.Kind = in.Kind
	r.Amount = in.Amount
	r.Date = in.Date
	r.Description = strings.TrimSpace(in.Description)
	r.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, r); err != nil {
		if newReceipt != "" {
			if rmErr := s.blobs.Remove(blob.KindFinance, newReceipt); rmErr != nil {
				s.logger.Errorf("cleanup of receipt blob %s failed: %v", newReceipt, rmErr)
			}
		}
		return FinanceRecordInfo{}, err
	}

	if newReceipt != "" && oldReceipt != "" {
		if rmErr := s.blobs.Remove(blob.KindFinance, oldReceipt); rmErr != nil {
			s.logger.Errorf("removing replaced receipt blob %s failed: %v", oldReceipt, rmErr)
		}
	}

	s.audit.Record(ctx, actor, auditlog.ActionUpdate,
		fmt.Sprintf("Updated finance record: %s %.2f (%s)", r.Kind, r.Amount, r.Date),
		auditlog.Details{
			"recordId":        r.ID,
			"type":            r.Kind,
			"amount":          r.Amount,
			"date":            r.Date,
			"receiptReplaced": newReceipt != "",
		}, meta)

	return toFinanceInfo(r), nil
}

// Delete removes the row first. Once that succeeds the receipt blob
// is removed best-effort and the audit entry is written regardless.
func (s *FinanceService) Delete(ctx context.Context, actor user.Principal, id string, meta RequestMeta) error {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.CreatedBy != actor.ID && !actor.IsAdmin() {
		return clubhub_errors.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if r.ReceiptFilename != "" {
		if rmErr := s.blobs.Remove(blob.KindFinance, r.ReceiptFilename); rmErr != nil {
			s.logger.Errorf("removing receipt blob %s failed: %v", r.ReceiptFilename, rmErr)
		}
	}

	s.audit.Record(ctx, actor, auditlog.ActionDelete,
		fmt.Sprintf("Deleted finance record: %s %.2f (%s)", r.Kind, r.Amount, r.Date),
		auditlog.Details{
			"recordId": r.ID,
			"type":     r.Kind,
			"amount":   r.Amount,
			"date":     r.Date,
		}, meta)

	return nil
}

// DownloadReceipt streams the stored receipt for a record.
func (s *FinanceService) DownloadReceipt(ctx context.Context, id string) (DownloadResult, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return DownloadResult{}, err
	}
	if r.ReceiptFilename == "" {
		return DownloadResult{}, clubhub_errors.ErrNotFound
	}

	content, err := s.blobs.Open(blob.KindFinance, r.ReceiptFilename)
	if err != nil {
		if errors.Is(err, clubhub_errors.ErrNotFound) {
			s.logger.Errorf("finance record %s row exists but receipt blob %s is missing", r.ID, r.ReceiptFilename)
		}
		return DownloadResult{}, err
	}

	info, err := content.Stat()
	if err != nil {
		content.Close()
		return DownloadResult{}, fmt.Errorf("%w: %v", clubhub_errors.ErrStorage, err)
	}

	return DownloadResult{
		OriginalName: r.ReceiptOriginalName,
		MimeType:     "application/octet-stream",
		SizeBytes:    info.Size(),
		Content:      content,
	}, nil
}

func toFinanceInfo(r finance.Record) FinanceRecordInfo {
	return FinanceRecordInfo{
		ID:          r.ID,
		Kind:        r.Kind,
		Amount:      r.Amount,
		Date:        r.Date,
		Description: r.Description,
		HasReceipt:  r.ReceiptFilename != "",
		ReceiptName: r.ReceiptOriginalName,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
