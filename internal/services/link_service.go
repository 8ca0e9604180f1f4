package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"clubhub/internal/domain/auditlog"
	"clubhub/internal/domain/link"
	"clubhub/internal/domain/user"
	"clubhub/internal/repository"
	clubhub_errors "clubhub/pkg/errors"
	"clubhub/pkg/logger"

	"github.com/google/uuid"
)

type LinkService struct {
	repo   repository.LinkRepository
	audit  *AuditService
	logger *logger.Logger
}

func NewLinkService(repo repository.LinkRepository, audit *AuditService, l *logger.Logger) *LinkService {
	return &LinkService{repo: repo, audit: audit, logger: l}
}

type LinkInput struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

func (in LinkInput) validate() error {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	u := strings.TrimSpace(in.URL)
	if u == "" {
		missing = append(missing, "url")
	} else if parsed, err := url.Parse(u); err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		missing = append(missing, "url")
	}
	if len(missing) > 0 {
		return clubhub_errors.NewValidation(missing...)
	}
	return nil
}

func (s *LinkService) Create(ctx context.Context, actor user.Principal, in LinkInput, meta RequestMeta) (link.Link, error) {
	if err := in.validate(); err != nil {
		return link.Link{}, err
	}

	now := time.Now()
	l := link.Link{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		URL:         strings.TrimSpace(in.URL),
		Description: in.Description,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, &l); err != nil {
		return link.Link{}, err
	}

	s.audit.Record(ctx, actor, auditlog.ActionCreate,
		fmt.Sprintf("Created shared link: %s", l.Name),
		auditlog.Details{
			"linkId": l.ID,
			"name":   l.Name,
			"url":    l.URL,
		}, meta)

	return l, nil
}

func (s *LinkService) List(ctx context.Context) ([]link.Link, error) {
	return s.repo.List(ctx)
}

func (s *LinkService) Update(ctx context.Context, actor user.Principal, id string, in LinkInput, meta RequestMeta) (link.Link, error) {
	if err := in.validate(); err != nil {
		return link.Link{}, err
	}

	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return link.Link{}, err
	}

	l.Name = strings.TrimSpace(in.Name)
	l.URL = strings.TrimSpace(in.URL)
	l.Description = in.Description
	l.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, l); err != nil {
		return link.Link{}, err
	}

	s.audit.Record(ctx, actor, auditlog.ActionUpdate,
		fmt.Sprintf("Updated shared link: %s", l.Name),
		auditlog.Details{
			"linkId": l.ID,
			"name":   l.Name,
			"url":    l.URL,
		}, meta)

	return l, nil
}

func (s *LinkService) Delete(ctx context.Context, actor user.Principal, id string, meta RequestMeta) error {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l.CreatedBy != actor.ID && !actor.IsAdmin() {
		return clubhub_errors.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, auditlog.ActionDelete,
		fmt.Sprintf("Deleted shared link: %s", l.Name),
		auditlog.Details{
			"linkId": l.ID,
			"name":   l.Name,
			"url":    l.URL,
		}, meta)

	return nil
}
