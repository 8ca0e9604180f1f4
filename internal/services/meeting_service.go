package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clubhub/internal/domain/auditlog"
	"clubhub/internal/domain/meeting"
	"clubhub/internal/domain/user"
	"clubhub/internal/repository"
	clubhub_errors "clubhub/pkg/errors"
	"clubhub/pkg/logger"

	"github.com/google/uuid"
)

type MeetingService struct {
	repo   repository.MeetingRepository
	audit  *AuditService
	logger *logger.Logger
}

func NewMeetingService(repo repository.MeetingRepository, audit *AuditService, l *logger.Logger) *MeetingService {
	return &MeetingService{repo: repo, audit: audit, logger: l}
}

type MeetingInput struct {
	MeetingDate  string `json:"meetingDate"`
	RecorderName string `json:"recorderName"`
	Content      string `json:"content"`
}

func (in MeetingInput) validate() error {
	var missing []string
	if strings.TrimSpace(in.MeetingDate) == "" {
		missing = append(missing, "meetingDate")
	} else if _, err := time.Parse("2006-01-02", in.MeetingDate); err != nil {
		missing = append(missing, "meetingDate")
	}
	if strings.TrimSpace(in.RecorderName) == "" {
		missing = append(missing, "recorderName")
	}
	if strings.TrimSpace(in.Content) == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return clubhub_errors.NewValidation(missing...)
	}
	return nil
}

func (s *MeetingService) Create(ctx context.Context, actor user.Principal, in MeetingInput, meta RequestMeta) (meeting.Record, error) {
	if err := in.validate(); err != nil {
		return meeting.Record{}, err
	}

	now := time.Now()
	r := meeting.Record{
		ID:           uuid.NewString(),
		MeetingDate:  in.MeetingDate,
		RecorderName: strings.TrimSpace(in.RecorderName),
		Content:      in.Content,
		CreatedBy:    actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, &r); err != nil {
		return meeting.Record{}, err
	}

	s.audit.Record(ctx, actor, auditlog.ActionCreate,
		fmt.Sprintf("Created meeting record: %s (%s)", r.MeetingDate, r.RecorderName),
		auditlog.Details{
			"recordId":     r.ID,
			"meetingDate":  r.MeetingDate,
			"recorderName": r.RecorderName,
		}, meta)

	return r, nil
}

func (s *MeetingService) List(ctx context.Context) ([]meeting.Record, error) {
	return s.repo.List(ctx)
}

func (s *MeetingService) Get(ctx context.Context, id string) (meeting.Record, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MeetingService) Update(ctx context.Context, actor user.Principal, id string, in MeetingInput, meta RequestMeta) (meeting.Record, error) {
	if err := in.validate(); err != nil {
		return meeting.Record{}, err
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return meeting.Record{}, err
	}

	prevDate := r.MeetingDate
	r.MeetingDate = in.MeetingDate
	r.RecorderName = strings.TrimSpace(in.RecorderName)
	r.Content = in.Content
	r.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, r); err != nil {
		return meeting.Record{}, err
	}

	s.audit.Record(ctx, actor, auditlog.ActionUpdate,
		fmt.Sprintf("Updated meeting record: %s", r.MeetingDate),
		auditlog.Details{
			"recordId":     r.ID,
			"meetingDate":  r.MeetingDate,
			"previousDate": prevDate,
			"recorderName": r.RecorderName,
		}, meta)

	return r, nil
}

func (s *MeetingService) Delete(ctx context.Context, actor user.Principal, id string, meta RequestMeta) error {
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

	s.audit.Record(ctx, actor, auditlog.ActionDelete,
		fmt.Sprintf("Deleted meeting record: %s (%s)", r.MeetingDate, r.RecorderName),
		auditlog.Details{
			"recordId":     r.ID,
			"meetingDate":  r.MeetingDate,
			"recorderName": r.RecorderName,
		}, meta)

	return nil
}
