package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"clubhub/internal/blob"
	"clubhub/internal/domain/activity"
	"clubhub/internal/domain/auditlog"
	"clubhub/internal/domain/user"
	"clubhub/internal/repository"
	clubhub_errors "clubhub/pkg/errors"
	"clubhub/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// maxUploadBatch caps how many files a single upload request may carry.
const maxUploadBatch = 10

// Upload is one inbound attachment, decoupled from multipart parsing.
type Upload struct {
	OriginalName string
	MimeType     string
	Content      io.Reader
}

type ActivityService struct {
	repo   repository.ActivityRepository
	blobs  *blob.Store
	audit  *AuditService
	logger *logger.Logger
}

func NewActivityService(repo repository.ActivityRepository, blobs *blob.Store, audit *AuditService, l *logger.Logger) *ActivityService {
	return &ActivityService{repo: repo, blobs: blobs, audit: audit, logger: l}
}

type ActivityFileInfo struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Category   string    `json:"category"`
	UploadDate time.Time `json:"uploadDate"`
}

// Upload stores every attachment blob first, then inserts the rows
// concurrently. If any insert fails all written blobs are removed
// best-effort and the whole operation fails.
func (s *ActivityService) Upload(ctx context.Context, actor user.Principal, category string, files []Upload, meta RequestMeta) ([]ActivityFileInfo, error) {
	if len(files) == 0 || len(files) > maxUploadBatch {
		return nil, clubhub_errors.NewValidation("files")
	}
	if !activity.ValidCategory(category) {
		return nil, clubhub_errors.NewValidation("category")
	}

	// Blobs go to disk before any row exists.
	rows := make([]*activity.File, 0, len(files))
	cleanup := func() {
		for _, row := range rows {
			if err := s.blobs.Remove(blob.KindActivity, row.StoredFilename); err != nil {
				s.logger.Errorf("cleanup of activity blob %s failed: %v", row.StoredFilename, err)
			}
		}
	}

	for _, f := range files {
		stored, size, err := s.blobs.Save(blob.KindActivity, f.OriginalName, f.Content)
		if err != nil {
			cleanup()
			return nil, err
		}
		rows = append(rows, &activity.File{
			ID:             strings.TrimSuffix(stored, filepath.Ext(stored)),
			StoredFilename: stored,
			OriginalName:   f.OriginalName,
			MimeType:       f.MimeType,
			SizeBytes:      size,
			Category:       category,
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

	results := make([]ActivityFileInfo, 0, len(rows))
	detailFiles := make([]auditlog.Details, 0, len(rows))
	for _, row := range rows {
		results = append(results, toActivityInfo(*row))
		detailFiles = append(detailFiles, auditlog.Details{"name": row.OriginalName, "size": row.SizeBytes})
	}

	s.audit.Record(ctx, actor, auditlog.ActionUpload,
		fmt.Sprintf("Uploaded activity files: %s - %d file(s)", category, len(rows)),
		auditlog.Details{
			"category":  category,
			"fileCount": len(rows),
			"files":     detailFiles,
		}, meta)

	return results, nil
}

type ActivityListing struct {
	Proposals []ActivityFileInfo `json:"proposals"`
	Timelines []ActivityFileInfo `json:"timelines"`
}

func (s *ActivityService) List(ctx context.Context) (ActivityListing, error) {
	files, err := s.repo.List(ctx)
	if err != nil {
		return ActivityListing{}, err
	}

	listing := ActivityListing{
		Proposals: []ActivityFileInfo{},
		Timelines: []ActivityFileInfo{},
	}
	for _, f := range files {
		info := toActivityInfo(f)
		if f.Category == activity.CategoryTimeline {
			listing.Timelines = append(listing.Timelines, info)
		} else {
			listing.Proposals = append(listing.Proposals, info)
		}
	}
	return listing, nil
}

// DownloadResult streams one stored blob. Callers must close Content.
type DownloadResult struct {
	OriginalName string
	MimeType     string
	SizeBytes    int64
	Content      *os.File
}

func (s *ActivityService) Download(ctx context.Context, id string) (DownloadResult, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return DownloadResult{}, err
	}

	content, err := s.blobs.Open(blob.KindActivity, f.StoredFilename)
	if err != nil {
		if errors.Is(err, clubhub_errors.ErrNotFound) {
			// Row exists but the blob is gone: storage drift, worth
			// telling apart from a plain missing id in the logs.
			s.logger.Errorf("activity file %s row exists but blob %s is missing", f.ID, f.StoredFilename)
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

// Delete removes the row first, then the blob. A failed blob removal
// is logged, never surfaced: once the row is gone the file is deleted.
func (s *ActivityService) Delete(ctx context.Context, actor user.Principal, id string, meta RequestMeta) error {
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

	if err := s.blobs.Remove(blob.KindActivity, f.StoredFilename); err != nil {
		s.logger.Errorf("removing activity blob %s failed: %v", f.StoredFilename, err)
	}

	s.audit.Record(ctx, actor, auditlog.ActionDelete,
		fmt.Sprintf("Deleted activity file: %s - %s", f.Category, f.OriginalName),
		auditlog.Details{
			"fileId":   f.ID,
			"fileName": f.OriginalName,
			"category": f.Category,
			"fileSize": f.SizeBytes,
		}, meta)

	return nil
}

func toActivityInfo(f activity.File) ActivityFileInfo {
	return ActivityFileInfo{
		ID:         f.ID,
		Name:       f.OriginalName,
		Size:       f.SizeBytes,
		Category:   f.Category,
		UploadDate: f.CreatedAt,
	}
}
