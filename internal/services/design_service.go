package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"clubhub/internal/blob"
	"clubhub/internal/domain/auditlog"
	"clubhub/internal/domain/design"
	"clubhub/internal/domain/user"
	"clubhub/internal/repository"
	clubhub_errors "clubhub/pkg/errors"
	"clubhub/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type DesignService struct {
	repo   repository.DesignRepository
	blobs  *blob.Store
	audit  *AuditService
	logger *logger.Logger
}

func NewDesignService(repo repository.DesignRepository, blobs *blob.Store, audit *AuditService, l *logger.Logger) *DesignService {
	return &DesignService{repo: repo, blobs: blobs, audit: audit, logger: l}
}

type DesignFileInfo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	MimeType    string    `json:"mimeType"`
	UploadDate  time.Time `json:"uploadDate"`
}

type DesignUploadInput struct {
	Title       string
	Description string
	Category    string
	Type        string
}

// Upload shares one title across every file in the batch. Blobs hit disk
// first; if any row insert fails all written blobs are removed best-effort
// and the whole batch fails.
func (s *DesignService) Upload(ctx context.Context, actor user.Principal, in DesignUploadInput, files []Upload, meta RequestMeta) ([]DesignFileInfo, error) {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if !design.ValidType(in.Type) {
		missing = append(missing, "type")
	}
	if in.Type == design.TypeUniform && strings.TrimSpace(in.Category) == "" {
		missing = append(missing, "category")
	}
	if len(files) == 0 || len(files) > maxUploadBatch {
		missing = append(missing, "files")
	}
	if len(missing) > 0 {
		return nil, clubhub_errors.NewValidation(missing...)
	}

	rows := make([]*design.File, 0, len(files))
	cleanup := func() {
		for _, row := range rows {
			if err := s.blobs.Remove(blob.KindDesign, row.StoredFilename); err != nil {
				s.logger.Errorf("cleanup of design blob %s failed: %v", row.StoredFilename, err)
			}
		}
	}

	for _, f := range files {
		stored, size, err := s.blobs.Save(blob.KindDesign, f.OriginalName, f.Content)
		if err != nil {
			cleanup()
			return nil, err
		}
		rows = append(rows, &design.File{
			ID:             strings.TrimSuffix(stored, filepath.Ext(stored)),
			StoredFilename: stored,
			OriginalName:   f.OriginalName,
			MimeType:       f.MimeType,
			SizeBytes:      size,
			Title:          strings.TrimSpace(in.Title),
			Description:    in.Description,
			Category:       in.Category,
			Type:           in.Type,
			UploadedBy:     actor.ID,
			CreatedAt:      time.Now(),
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, row := range rows {
		g.Go(func() error {
			return s.repo.Create(gctx, row)
		})
	}
	if err := g.Wait(); err != nil {
		cleanup()
		return nil, fmt.Errorf("%w: %v", clubhub_errors.ErrStorage, err)
	}

	results := make([]DesignFileInfo, 0, len(rows))
	detailFiles := make([]auditlog.Details, 0, len(rows))
	for _, row := range rows {
		results = append(results, toDesignInfo(*row))
		detailFiles = append(detailFiles, auditlog.Details{"name": row.OriginalName, "size": row.SizeBytes})
	}

	s.audit.Record(ctx, actor, auditlog.ActionUpload,
		fmt.Sprintf("Uploaded design files: %s (%s) - %d file(s)", strings.TrimSpace(in.Title), in.Type, len(rows)),
		auditlog.Details{
			"title":     strings.TrimSpace(in.Title),
			"type":      in.Type,
			"category":  in.Category,
			"fileCount": len(rows),
			"files":     detailFiles,
		}, meta)

	return results, nil
}

func (s *DesignService) List(ctx context.Context, typeFilter string) ([]DesignFileInfo, error) {
	if typeFilter != "" && !design.ValidType(typeFilter) {
		return nil, clubhub_errors.NewValidation("type")
	}
	files, err := s.repo.List(ctx, typeFilter)
	if err != nil {
		return nil, err
	}
	infos := make([]DesignFileInfo, 0, len(files))
	for _, f := range files {
		infos = append(infos, toDesignInfo(f))
	}
	return infos, nil
}

func (s *DesignService) Download(ctx context.Context, id string) (DownloadResult, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return DownloadResult{}, err
	}

	content, err := s.blobs.Open(blob.KindDesign, f.StoredFilename)
	if err != nil {
		if errors.Is(err, clubhub_errors.ErrNotFound) {
			s.logger.Errorf("design file %s row exists but blob %s is missing", f.ID, f.StoredFilename)
		}
		return DownloadResult{}, err
	}

	return DownloadResult{
		OriginalName: f.OriginalName,
		MimeType:     f.MimeType,
		SizeBytes:    f.SizeBytes,
		Content:      content,
	}, nil
}

func (s *DesignService) Delete(ctx context.Context, actor user.Principal, id string, meta RequestMeta) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f.UploadedBy != actor.ID && !actor.IsAdmin() {
		return clubhub_errors.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.blobs.Remove(blob.KindDesign, f.StoredFilename); err != nil {
		s.logger.Errorf("removing design blob %s failed: %v", f.StoredFilename, err)
	}

	s.audit.Record(ctx, actor, auditlog.ActionDelete,
		fmt.Sprintf("Deleted design file: %s (%s)", f.Title, f.Type),
		auditlog.Details{
			"fileId":   f.ID,
			"title":    f.Title,
			"type":     f.Type,
			"fileName": f.OriginalName,
		}, meta)

	return nil
}

func toDesignInfo(f design.File) DesignFileInfo {
	return DesignFileInfo{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Category:    f.Category,
		Type:        f.Type,
		Name:        f.OriginalName,
		Size:        f.SizeBytes,
		MimeType:    f.MimeType,
		UploadDate:  f.CreatedAt,
	}
}
