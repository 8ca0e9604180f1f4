package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clubhub/internal/domain/auditlog"
	"clubhub/internal/domain/user"
	"clubhub/internal/domain/vendor"
	"clubhub/internal/repository"
	clubhub_errors "clubhub/pkg/errors"
	"clubhub/pkg/logger"

	"github.com/google/uuid"
)

type VendorService struct {
	repo   repository.VendorRepository
	audit  *AuditService
	logger *logger.Logger
}

func NewVendorService(repo repository.VendorRepository, audit *AuditService, l *logger.Logger) *VendorService {
	return &VendorService{repo: repo, audit: audit, logger: l}
}

type VendorInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (in VendorInput) validate() error {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(in.Type) == "" {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return clubhub_errors.NewValidation(missing...)
	}
	return nil
}

func (s *VendorService) Create(ctx context.Context, actor user.Principal, in VendorInput, meta RequestMeta) (vendor.Vendor, error) {
	if err := in.validate(); err != nil {
		return vendor.Vendor{}, err
	}

	now := time.Now()
	v := vendor.Vendor{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Type:        strings.TrimSpace(in.Type),
		Description: in.Description,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, &v); err != nil {
		return vendor.Vendor{}, err
	}

	s.audit.Record(ctx, actor, auditlog.ActionCreate,
		fmt.Sprintf("Created vendor: %s", v.Name),
		auditlog.Details{
			"vendorId":    v.ID,
			"name":        v.Name,
			"email":       v.Email,
			"type":        v.Type,
			"description": v.Description,
		}, meta)

	return v, nil
}

func (s *VendorService) List(ctx context.Context, f vendor.Filter) ([]vendor.Vendor, error) {
	return s.repo.List(ctx, f)
}

func (s *VendorService) Get(ctx context.Context, id string) (vendor.Vendor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VendorService) Update(ctx context.Context, actor user.Principal, id string, in VendorInput, meta RequestMeta) (vendor.Vendor, error) {
	if err := in.validate(); err != nil {
		return vendor.Vendor{}, err
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return vendor.Vendor{}, err
	}

	v.Name = strings.TrimSpace(in.Name)
	v.Email = strings.TrimSpace(in.Email)
	v.Type = strings.TrimSpace(in.Type)
	v.Description = in.Description
	v.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, v); err != nil {
		return vendor.Vendor{}, err
	}

	s.audit.Record(ctx, actor, auditlog.ActionUpdate,
		fmt.Sprintf("Updated vendor: %s", v.Name),
		auditlog.Details{
			"vendorId": v.ID,
			"name":     v.Name,
			"email":    v.Email,
			"type":     v.Type,
		}, meta)

	return v, nil
}

func (s *VendorService) Delete(ctx context.Context, actor user.Principal, id string, meta RequestMeta) error {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if v.CreatedBy != actor.ID && !actor.IsAdmin() {
		return clubhub_errors.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, auditlog.ActionDelete,
		fmt.Sprintf("Deleted vendor: %s", v.Name),
		auditlog.Details{
			"vendorId": v.ID,
			"name":     v.Name,
			"email":    v.Email,
			"type":     v.Type,
		}, meta)

	return nil
}

// DeleteAll wipes every vendor and produces exactly one audit entry
// carrying the count, regardless of how many rows went away.
func (s *VendorService) DeleteAll(ctx context.Context, actor user.Principal, meta RequestMeta) (int64, error) {
	if !actor.IsAdmin() {
		return 0, clubhub_errors.ErrForbidden
	}

	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.audit.Record(ctx, actor, auditlog.ActionDelete,
		fmt.Sprintf("Deleted all vendors: %d record(s)", deleted),
		auditlog.Details{
			"deletedRecordsCount": deleted,
			"operationType":       "bulk_delete_all",
		}, meta)

	return deleted, nil
}
