package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"clubhub/internal/blob"
	"clubhub/internal/domain/auditlog"
	"clubhub/internal/repository"
	clubhub_errors "clubhub/pkg/errors"
	"clubhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActivityService(t *testing.T) (*ActivityService, *testEnv) {
	env := newTestEnv(t)
	svc := NewActivityService(repository.NewActivityRepository(env.db), env.blobs, env.audit, logger.Nop())
	return svc, env
}

func pdfUpload(name, content string) Upload {
	return Upload{
		OriginalName: name,
		MimeType:     "application/pdf",
		Content:      bytes.NewReader([]byte(content)),
	}
}

func TestActivityUploadAndDownload(t *testing.T) {
	svc, _ := newActivityService(t)
	ctx := context.Background()

	content := "%PDF-1.4 spring festival proposal"
	files, err := svc.Upload(ctx, memberPrincipal(), "proposal",
		[]Upload{pdfUpload("proposal.pdf", content)}, testMeta())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "proposal.pdf", files[0].Name)
	assert.Equal(t, int64(len(content)), files[0].Size)

	res, err := svc.Download(ctx, files[0].ID)
	require.NoError(t, err)
	defer res.Content.Close()

	got, err := io.ReadAll(res.Content)
	require.NoError(t, err)
	assert.Equal(t, content, string(got), "downloaded bytes must match the upload")
	assert.Equal(t, "proposal.pdf", res.OriginalName)
}

func TestActivityMultiFileUpload(t *testing.T) {
	svc, env := newActivityService(t)
	ctx := context.Background()

	files, err := svc.Upload(ctx, memberPrincipal(), "timeline", nil, testMeta())
	require.Error(t, err)
	assert.Nil(t, files)

	tooMany := make([]Upload, 11)
	for i := range tooMany {
		tooMany[i] = pdfUpload(fmt.Sprintf("f%d.pdf", i), "x")
	}
	_, err = svc.Upload(ctx, memberPrincipal(), "timeline", tooMany, testMeta())
	assert.ErrorIs(t, err, clubhub_errors.ErrInvalidInput)

	files, err = svc.Upload(ctx, memberPrincipal(), "timeline", []Upload{
		pdfUpload("q1.pdf", "q1 plan"),
		pdfUpload("q2.pdf", "q2 plan"),
		pdfUpload("q3.pdf", "q3 plan"),
	}, testMeta())
	require.NoError(t, err)
	assert.Len(t, files, 3)

	// One upload call, one audit entry.
	entries, _, err := env.auditRepo.Query(ctx, auditlog.Filter{Action: auditlog.ActionUpload}, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, string(entries[0].Details), `"fileCount":3`)
}

func TestActivityUploadRejectsAllOnBadFile(t *testing.T) {
	svc, _ := newActivityService(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, memberPrincipal(), "proposal", []Upload{
		pdfUpload("fine.pdf", "ok"),
		{OriginalName: "photo.png", MimeType: "image/png", Content: bytes.NewReader([]byte("png"))},
	}, testMeta())
	require.Error(t, err)

	// Nothing from the batch may survive.
	listing, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listing.Proposals)
	assert.Empty(t, listing.Timelines)
}

func TestActivityListGroupsByCategory(t *testing.T) {
	svc, _ := newActivityService(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, memberPrincipal(), "proposal",
		[]Upload{pdfUpload("p.pdf", "p")}, testMeta())
	require.NoError(t, err)
	_, err = svc.Upload(ctx, memberPrincipal(), "timeline",
		[]Upload{pdfUpload("t.pdf", "t")}, testMeta())
	require.NoError(t, err)

	listing, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listing.Proposals, 1)
	require.Len(t, listing.Timelines, 1)
	assert.Equal(t, "p.pdf", listing.Proposals[0].Name)
	assert.Equal(t, "t.pdf", listing.Timelines[0].Name)
}

func TestActivityDeleteOwnership(t *testing.T) {
	svc, env := newActivityService(t)
	ctx := context.Background()

	files, err := svc.Upload(ctx, memberPrincipal(), "proposal",
		[]Upload{pdfUpload("mine.pdf", "content")}, testMeta())
	require.NoError(t, err)
	id := files[0].ID

	other := memberPrincipal()
	other.ID = 55

	err = svc.Delete(ctx, other, id, testMeta())
	assert.ErrorIs(t, err, clubhub_errors.ErrForbidden)

	require.NoError(t, svc.Delete(ctx, memberPrincipal(), id, testMeta()))

	_, err = svc.Download(ctx, id)
	assert.ErrorIs(t, err, clubhub_errors.ErrNotFound)

	// The blob went away with the row.
	var stored string
	env.db.Table("activity_files").Where("id = ?", id).Pluck("stored_filename", &stored)
	assert.Empty(t, stored)
}

func TestActivityDownloadBlobDrift(t *testing.T) {
	svc, env := newActivityService(t)
	ctx := context.Background()

	files, err := svc.Upload(ctx, memberPrincipal(), "proposal",
		[]Upload{pdfUpload("drift.pdf", "content")}, testMeta())
	require.NoError(t, err)

	// Remove the blob behind the row's back.
	var stored []string
	require.NoError(t, env.db.Table("activity_files").Where("id = ?", files[0].ID).Pluck("stored_filename", &stored).Error)
	require.Len(t, stored, 1)
	require.NoError(t, env.blobs.Remove(blob.KindActivity, stored[0]))

	_, err = svc.Download(ctx, files[0].ID)
	assert.ErrorIs(t, err, clubhub_errors.ErrNotFound)
}

func TestActivityUploadInvalidCategory(t *testing.T) {
	svc, _ := newActivityService(t)

	_, err := svc.Upload(context.Background(), memberPrincipal(), "minutes",
		[]Upload{pdfUpload("m.pdf", "m")}, testMeta())
	assert.ErrorIs(t, err, clubhub_errors.ErrInvalidInput)
}
