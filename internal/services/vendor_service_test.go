package services

import (
	"context"
	"testing"

	"clubhub/internal/domain/auditlog"
	"clubhub/internal/domain/vendor"
	"clubhub/internal/repository"
	clubhub_errors "clubhub/pkg/errors"
	"clubhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVendorService(t *testing.T) (*VendorService, *testEnv) {
	env := newTestEnv(t)
	svc := NewVendorService(repository.NewVendorRepository(env.db), env.audit, logger.Nop())
	return svc, env
}

func TestVendorCreateAndGet(t *testing.T) {
	svc, _ := newVendorService(t)
	ctx := context.Background()

	v, err := svc.Create(ctx, memberPrincipal(), VendorInput{
		Name:  "Print Shop",
		Email: "contact@printshop.example",
		Type:  "printing",
	}, testMeta())
	require.NoError(t, err)
	require.NotEmpty(t, v.ID)

	got, err := svc.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Print Shop", got.Name)
	assert.Equal(t, memberPrincipal().ID, got.CreatedBy)
}

func TestVendorCreateValidation(t *testing.T) {
	svc, _ := newVendorService(t)

	_, err := svc.Create(context.Background(), memberPrincipal(), VendorInput{Name: "  "}, testMeta())
	require.Error(t, err)
	assert.ErrorIs(t, err, clubhub_errors.ErrInvalidInput)
}

func TestVendorUpdateOpenDeleteOwned(t *testing.T) {
	svc, _ := newVendorService(t)
	ctx := context.Background()

	v, err := svc.Create(ctx, memberPrincipal(), VendorInput{
		Name: "Catering Co", Email: "food@example.com", Type: "catering",
	}, testMeta())
	require.NoError(t, err)

	other := memberPrincipal()
	other.ID = 99
	other.Username = "other"

	// Any authenticated user may update; only delete is owner-gated.
	updated, err := svc.Update(ctx, other, v.ID, VendorInput{
		Name: "Catering Co Ltd", Email: "food@example.com", Type: "catering",
	}, testMeta())
	require.NoError(t, err)
	assert.Equal(t, "Catering Co Ltd", updated.Name)

	err = svc.Delete(ctx, other, v.ID, testMeta())
	assert.ErrorIs(t, err, clubhub_errors.ErrForbidden)

	require.NoError(t, svc.Delete(ctx, adminPrincipal(), v.ID, testMeta()))
}

func TestVendorDeleteNotFound(t *testing.T) {
	svc, _ := newVendorService(t)

	err := svc.Delete(context.Background(), adminPrincipal(), "missing-id", testMeta())
	assert.ErrorIs(t, err, clubhub_errors.ErrNotFound)
}

func TestVendorListFilters(t *testing.T) {
	svc, _ := newVendorService(t)
	ctx := context.Background()

	seed := []VendorInput{
		{Name: "Print Shop", Email: "a@example.com", Type: "printing"},
		{Name: "Snack Stand", Email: "b@example.com", Type: "catering"},
		{Name: "Banner Prints", Email: "c@example.com", Type: "printing"},
	}
	for _, in := range seed {
		_, err := svc.Create(ctx, memberPrincipal(), in, testMeta())
		require.NoError(t, err)
	}

	byType, err := svc.List(ctx, vendor.Filter{Type: "printing"})
	require.NoError(t, err)
	assert.Len(t, byType, 2)

	bySearch, err := svc.List(ctx, vendor.Filter{Search: "snack"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Snack Stand", bySearch[0].Name)
}

func TestVendorDeleteAll(t *testing.T) {
	svc, env := newVendorService(t)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, adminPrincipal(), VendorInput{
			Name: name, Email: name + "@example.com", Type: "misc",
		}, testMeta())
		require.NoError(t, err)
	}

	// Non-admins may not wipe the table.
	_, err := svc.DeleteAll(ctx, memberPrincipal(), testMeta())
	assert.ErrorIs(t, err, clubhub_errors.ErrForbidden)

	deleted, err := svc.DeleteAll(ctx, adminPrincipal(), testMeta())
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	remaining, err := svc.List(ctx, vendor.Filter{})
	require.NoError(t, err)
	assert.Empty(t, remaining)

	// Exactly one delete entry for the whole wipe, carrying the count.
	entries, _, err := env.auditRepo.Query(ctx, auditlog.Filter{Action: auditlog.ActionDelete}, 0, 50)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, string(entries[0].Details), "bulk_delete_all")
	assert.Contains(t, string(entries[0].Details), "3")
}

func TestVendorDeleteAllEmptyTableStillAudited(t *testing.T) {
	svc, env := newVendorService(t)
	ctx := context.Background()

	deleted, err := svc.DeleteAll(ctx, adminPrincipal(), testMeta())
	require.NoError(t, err)
	assert.Zero(t, deleted)

	// The bulk action is logged even when nothing was there to remove.
	entries, _, err := env.auditRepo.Query(ctx, auditlog.Filter{Action: auditlog.ActionDelete}, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, string(entries[0].Details), `"deletedRecordsCount":0`)
}
