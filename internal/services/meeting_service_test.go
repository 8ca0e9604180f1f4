package services

import (
	"context"
	"testing"

	"clubhub/internal/domain/auditlog"
	"clubhub/internal/repository"
	clubhub_errors "clubhub/pkg/errors"
	"clubhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMeetingService(t *testing.T) (*MeetingService, *testEnv) {
	env := newTestEnv(t)
	svc := NewMeetingService(repository.NewMeetingRepository(env.db), env.audit, logger.Nop())
	return svc, env
}

func TestMeetingLifecycle(t *testing.T) {
	svc, env := newMeetingService(t)
	ctx := context.Background()
	actor := memberPrincipal()

	r, err := svc.Create(ctx, actor, MeetingInput{
		MeetingDate: "2025-04-02", RecorderName: "Alice", Content: "Planning the spring event.",
	}, testMeta())
	require.NoError(t, err)

	got, err := svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.RecorderName)

	updated, err := svc.Update(ctx, actor, r.ID, MeetingInput{
		MeetingDate: "2025-04-03", RecorderName: "Alice", Content: "Moved to Thursday.",
	}, testMeta())
	require.NoError(t, err)
	assert.Equal(t, "2025-04-03", updated.MeetingDate)

	// The update audit entry names both dates.
	page, err := env.audit.Query(ctx, auditlog.Filter{Action: auditlog.ActionUpdate}, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Contains(t, string(page.Entries[0].Details), "2025-04-02")
	assert.Contains(t, string(page.Entries[0].Details), "2025-04-03")

	require.NoError(t, svc.Delete(ctx, actor, r.ID, testMeta()))

	_, err = svc.Get(ctx, r.ID)
	assert.ErrorIs(t, err, clubhub_errors.ErrNotFound)
}

func TestMeetingListNewestMeetingFirst(t *testing.T) {
	svc, _ := newMeetingService(t)
	ctx := context.Background()

	dates := []string{"2025-01-10", "2025-03-05", "2025-02-20"}
	for _, d := range dates {
		_, err := svc.Create(ctx, memberPrincipal(), MeetingInput{
			MeetingDate: d, RecorderName: "Bob", Content: "minutes",
		}, testMeta())
		require.NoError(t, err)
	}

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2025-03-05", records[0].MeetingDate)
	assert.Equal(t, "2025-02-20", records[1].MeetingDate)
	assert.Equal(t, "2025-01-10", records[2].MeetingDate)
}

func TestMeetingValidation(t *testing.T) {
	svc, _ := newMeetingService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   MeetingInput
	}{
		{"missing date", MeetingInput{RecorderName: "A", Content: "c"}},
		{"bad date", MeetingInput{MeetingDate: "April 2", RecorderName: "A", Content: "c"}},
		{"missing recorder", MeetingInput{MeetingDate: "2025-04-02", Content: "c"}},
		{"missing content", MeetingInput{MeetingDate: "2025-04-02", RecorderName: "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, memberPrincipal(), tt.in, testMeta())
			assert.ErrorIs(t, err, clubhub_errors.ErrInvalidInput)
		})
	}
}

func TestMeetingOwnership(t *testing.T) {
	svc, _ := newMeetingService(t)
	ctx := context.Background()

	r, err := svc.Create(ctx, memberPrincipal(), MeetingInput{
		MeetingDate: "2025-05-01", RecorderName: "Carol", Content: "minutes",
	}, testMeta())
	require.NoError(t, err)

	other := memberPrincipal()
	other.ID = 66

	// Non-owners may edit but not remove.
	_, err = svc.Update(ctx, other, r.ID, MeetingInput{
		MeetingDate: "2025-05-02", RecorderName: "Dave", Content: "amended minutes",
	}, testMeta())
	require.NoError(t, err)

	err = svc.Delete(ctx, other, r.ID, testMeta())
	assert.ErrorIs(t, err, clubhub_errors.ErrForbidden)

	require.NoError(t, svc.Delete(ctx, adminPrincipal(), r.ID, testMeta()))
}
