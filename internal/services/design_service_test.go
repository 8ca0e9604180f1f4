package services

import (
	"bytes"
	"context"
	"io"
	"testing"

	"clubhub/internal/domain/auditlog"
	"clubhub/internal/repository"
	clubhub_errors "clubhub/pkg/errors"
	"clubhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDesignService(t *testing.T) (*DesignService, *testEnv) {
	env := newTestEnv(t)
	svc := NewDesignService(repository.NewDesignRepository(env.db), env.blobs, env.audit, logger.Nop())
	return svc, env
}

func imageUpload(name, content string) Upload {
	return Upload{
		OriginalName: name,
		MimeType:     "image/png",
		Content:      bytes.NewReader([]byte(content)),
	}
}

func TestDesignUploadAndDownload(t *testing.T) {
	svc, _ := newDesignService(t)
	ctx := context.Background()

	infos, err := svc.Upload(ctx, memberPrincipal(), DesignUploadInput{
		Title: "Club Hoodie", Description: "2025 edition", Category: "apparel", Type: "uniform",
	}, []Upload{imageUpload("hoodie.png", "png bytes")}, testMeta())
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "Club Hoodie", infos[0].Title)
	assert.Equal(t, "uniform", infos[0].Type)

	res, err := svc.Download(ctx, infos[0].ID)
	require.NoError(t, err)
	defer res.Content.Close()

	got, err := io.ReadAll(res.Content)
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(got))
}

func TestDesignMultiFileUpload(t *testing.T) {
	svc, env := newDesignService(t)
	ctx := context.Background()

	// One shared title, one row per file, one audit entry for the batch.
	infos, err := svc.Upload(ctx, memberPrincipal(), DesignUploadInput{
		Title: "Spring Posters", Category: "design", Type: "design",
	}, []Upload{
		imageUpload("a.png", "a"),
		imageUpload("b.png", "b"),
		imageUpload("c.png", "c"),
	}, testMeta())
	require.NoError(t, err)
	require.Len(t, infos, 3)
	for _, info := range infos {
		assert.Equal(t, "Spring Posters", info.Title)
	}

	entries, _, err := env.auditRepo.Query(ctx, auditlog.Filter{Action: auditlog.ActionUpload}, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, string(entries[0].Details), `"fileCount":3`)
}

func TestDesignUploadRejectsAllOnBadFile(t *testing.T) {
	svc, _ := newDesignService(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, memberPrincipal(), DesignUploadInput{
		Title: "Mixed", Category: "design", Type: "design",
	}, []Upload{
		imageUpload("ok.png", "ok"),
		{OriginalName: "nope.exe", MimeType: "application/octet-stream", Content: bytes.NewReader([]byte("x"))},
	}, testMeta())
	require.Error(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDesignUploadValidation(t *testing.T) {
	svc, _ := newDesignService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		in    DesignUploadInput
		files []Upload
	}{
		{"missing title", DesignUploadInput{Type: "design"}, []Upload{imageUpload("x.png", "x")}},
		{"bad type", DesignUploadInput{Title: "T", Type: "logo"}, []Upload{imageUpload("x.png", "x")}},
		{"no files", DesignUploadInput{Title: "T", Type: "design"}, nil},
		{"uniform without category", DesignUploadInput{Title: "T", Type: "uniform"}, []Upload{imageUpload("x.png", "x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(ctx, memberPrincipal(), tt.in, tt.files, testMeta())
			assert.ErrorIs(t, err, clubhub_errors.ErrInvalidInput)
		})
	}
}

func TestDesignListByType(t *testing.T) {
	svc, _ := newDesignService(t)
	ctx := context.Background()

	for _, typ := range []string{"uniform", "design", "post-variant"} {
		_, err := svc.Upload(ctx, memberPrincipal(), DesignUploadInput{
			Title: typ, Category: typ, Type: typ,
		}, []Upload{imageUpload(typ+".png", typ)}, testMeta())
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	uniforms, err := svc.List(ctx, "uniform")
	require.NoError(t, err)
	require.Len(t, uniforms, 1)
	assert.Equal(t, "uniform", uniforms[0].Type)

	_, err = svc.List(ctx, "banner")
	assert.ErrorIs(t, err, clubhub_errors.ErrInvalidInput)
}

func TestDesignDeleteOwnership(t *testing.T) {
	svc, _ := newDesignService(t)
	ctx := context.Background()

	infos, err := svc.Upload(ctx, memberPrincipal(), DesignUploadInput{
		Title: "Poster", Type: "design",
	}, []Upload{imageUpload("poster.png", "poster")}, testMeta())
	require.NoError(t, err)
	require.Len(t, infos, 1)

	other := memberPrincipal()
	other.ID = 42

	err = svc.Delete(ctx, other, infos[0].ID, testMeta())
	assert.ErrorIs(t, err, clubhub_errors.ErrForbidden)

	require.NoError(t, svc.Delete(ctx, adminPrincipal(), infos[0].ID, testMeta()))

	_, err = svc.Download(ctx, infos[0].ID)
	assert.ErrorIs(t, err, clubhub_errors.ErrNotFound)
}
