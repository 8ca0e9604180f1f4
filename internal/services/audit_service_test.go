package services

import (
	"context"
	"testing"
	"time"

	"clubhub/internal/domain/auditlog"
	clubhub_errors "clubhub/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditQueryFiltersAndPaging(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := adminPrincipal()
	member := memberPrincipal()

	env.audit.Record(ctx, admin, auditlog.ActionCreate, "Created vendor: Print Shop", auditlog.Details{"name": "Print Shop", "email": "print@shop.example"}, testMeta())
	env.audit.Record(ctx, member, auditlog.ActionUpload, "Uploaded activity files: proposal - 1 file(s)", nil, testMeta())
	env.audit.Record(ctx, member, auditlog.ActionDelete, "Deleted vendor: Old Vendor", nil, testMeta())

	all, err := env.audit.Query(ctx, auditlog.Filter{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)
	assert.Len(t, all.Entries, 3)

	byUser, err := env.audit.Query(ctx, auditlog.Filter{Username: "member"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byUser.Total)

	byAction, err := env.audit.Query(ctx, auditlog.Filter{Action: auditlog.ActionCreate}, 1, 10)
	require.NoError(t, err)
	require.Len(t, byAction.Entries, 1)
	assert.Equal(t, "admin", byAction.Entries[0].Username)

	byKeyword, err := env.audit.Query(ctx, auditlog.Filter{Keyword: "Old Vendor"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byKeyword.Total)

	// Keyword must also match inside the details JSON. Note sqlite stores
	// the details column as plain text, so this cannot catch a predicate
	// that is invalid against postgres JSONB; the repository casts the
	// column to text for that reason.
	byDetail, err := env.audit.Query(ctx, auditlog.Filter{Keyword: "print@shop.example"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byDetail.Total)

	// Page ranges hold total count while trimming the slice.
	paged, err := env.audit.Query(ctx, auditlog.Filter{}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), paged.Total)
	assert.Len(t, paged.Entries, 2)

	second, err := env.audit.Query(ctx, auditlog.Filter{}, 2, 2)
	require.NoError(t, err)
	assert.Len(t, second.Entries, 1)
}

func TestAuditQueryDateBounds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.audit.Record(ctx, adminPrincipal(), auditlog.ActionLogin, "User admin logged in", nil, testMeta())

	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	within, err := env.audit.Query(ctx, auditlog.Filter{StartDate: today, EndDate: today}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), within.Total, "entry created today matches an inclusive today..today range")

	outside, err := env.audit.Query(ctx, auditlog.Filter{StartDate: tomorrow}, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, outside.Total)
}

func TestAuditQueryDefaultsPage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.audit.Record(ctx, adminPrincipal(), auditlog.ActionLogin, "User admin logged in", nil, testMeta())

	page, err := env.audit.Query(ctx, auditlog.Filter{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
}

func TestAuditQueryNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := &auditlog.Entry{
		ID: "older", UserID: 1, Username: "admin",
		Action: auditlog.ActionCreate, Description: "older entry",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, env.auditRepo.Create(ctx, first))
	env.audit.Record(ctx, adminPrincipal(), auditlog.ActionCreate, "newer entry", nil, testMeta())

	page, err := env.audit.Query(ctx, auditlog.Filter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, "newer entry", page.Entries[0].Description)
}

func TestAuditDeleteEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.audit.Record(ctx, memberPrincipal(), auditlog.ActionUpload, "Uploaded something", nil, testMeta())
	page, err := env.audit.Query(ctx, auditlog.Filter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	target := page.Entries[0].ID

	err = env.audit.DeleteEntry(ctx, memberPrincipal(), target, testMeta())
	assert.ErrorIs(t, err, clubhub_errors.ErrForbidden, "only admins delete log entries")

	require.NoError(t, env.audit.DeleteEntry(ctx, adminPrincipal(), target, testMeta()))

	// The deletion itself is audited, naming the removed entry.
	after, err := env.audit.Query(ctx, auditlog.Filter{Action: auditlog.ActionDelete}, 1, 10)
	require.NoError(t, err)
	require.Len(t, after.Entries, 1)
	assert.Contains(t, string(after.Entries[0].Details), target)
}

func TestAuditDeleteAllSurvivorEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		env.audit.Record(ctx, memberPrincipal(), auditlog.ActionCreate, "entry", nil, testMeta())
	}

	deleted, err := env.audit.DeleteAll(ctx, adminPrincipal(), testMeta())
	require.NoError(t, err)
	assert.Equal(t, int64(5), deleted)

	// Exactly one entry survives: the record of the wipe itself,
	// written after the deletion so it is not swept away.
	page, err := env.audit.Query(ctx, auditlog.Filter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, auditlog.ActionDelete, page.Entries[0].Action)
	assert.Contains(t, string(page.Entries[0].Details), "bulk_delete_all")
	assert.Contains(t, string(page.Entries[0].Details), `"deletedRecordsCount":5`)
}

func TestAuditDeleteAllEmpty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	deleted, err := env.audit.DeleteAll(ctx, adminPrincipal(), testMeta())
	require.NoError(t, err)
	assert.Zero(t, deleted)

	// A zero-count wipe still leaves one entry recording the bulk action.
	entries, _, err := env.auditRepo.Query(ctx, auditlog.Filter{Action: auditlog.ActionDelete}, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, string(entries[0].Details), `"deletedRecordsCount":0`)
}
