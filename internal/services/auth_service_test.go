package services

import (
	"context"
	"testing"
	"time"

	"clubhub/config"
	"clubhub/internal/domain/auditlog"
	"clubhub/internal/domain/user"
	clubhub_errors "clubhub/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (*AuthService, *testEnv) {
	env := newTestEnv(t)
	svc := NewAuthService(env.userRepo, env.audit, &config.Config{
		SessionSecret:   "test-secret",
		SessionTTLHours: 1,
	})
	return svc, env
}

func seedUser(t *testing.T, env *testEnv, username, password, role string) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u := user.User{
		Name:         username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, env.userRepo.Create(context.Background(), &u))
	return u
}

func TestLoginSuccess(t *testing.T) {
	svc, env := newAuthService(t)
	ctx := context.Background()
	seedUser(t, env, "alice", "secret123", user.RoleUser)

	res, err := svc.Login(ctx, "alice", "secret123", testMeta())
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "alice", res.User.Username)
	assert.Equal(t, user.RoleUser, res.User.Role)

	// Login is audited with the caller's network facts.
	page, err := env.audit.Query(ctx, auditlog.Filter{Action: auditlog.ActionLogin}, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "127.0.0.1", page.Entries[0].IPAddress)
}

func TestLoginFailures(t *testing.T) {
	svc, env := newAuthService(t)
	ctx := context.Background()
	seedUser(t, env, "alice", "secret123", user.RoleUser)

	tests := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{"wrong password", "alice", "wrong", clubhub_errors.ErrUnauthorized},
		{"unknown user", "nobody", "secret123", clubhub_errors.ErrUnauthorized},
		{"empty credentials", "", "", clubhub_errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.username, tt.password, testMeta())
			assert.ErrorIs(t, err, tt.want)
		})
	}

	// No audit entries for failed logins.
	page, err := env.audit.Query(ctx, auditlog.Filter{Action: auditlog.ActionLogin}, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	svc, env := newAuthService(t)
	ctx := context.Background()
	seedUser(t, env, "bob", "pw123456", user.RoleUser)

	res, err := svc.Login(ctx, "bob", "pw123456", testMeta())
	require.NoError(t, err)

	p, sessionID, err := svc.ValidateToken(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "bob", p.Username)
	assert.NotEqual(t, sessionID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _ := newAuthService(t)

	for _, token := range []string{"", "not-a-token", "aaaa.bbbb.cccc"} {
		_, _, err := svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, clubhub_errors.ErrUnauthorized, "token %q", token)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, env := newAuthService(t)
	ctx := context.Background()
	seedUser(t, env, "carol", "pw123456", user.RoleUser)

	res, err := svc.Login(ctx, "carol", "pw123456", testMeta())
	require.NoError(t, err)

	p, sessionID, err := svc.ValidateToken(ctx, res.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, p, sessionID, testMeta()))

	_, _, err = svc.ValidateToken(ctx, res.Token)
	assert.ErrorIs(t, err, clubhub_errors.ErrUnauthorized, "a revoked session is dead immediately")
}

func TestRoleChangeTakesEffectOnNextValidation(t *testing.T) {
	svc, env := newAuthService(t)
	ctx := context.Background()
	u := seedUser(t, env, "dave", "pw123456", user.RoleAdmin)

	res, err := svc.Login(ctx, "dave", "pw123456", testMeta())
	require.NoError(t, err)
	require.True(t, res.User.IsAdmin())

	// Demote while the session is live.
	require.NoError(t, env.db.Table("users").Where("id = ?", u.ID).Update("role", user.RoleUser).Error)

	p, _, err := svc.ValidateToken(ctx, res.Token)
	require.NoError(t, err)
	assert.False(t, p.IsAdmin(), "role is re-read on every request, never cached")
}

func TestDeletedUserSessionDies(t *testing.T) {
	svc, env := newAuthService(t)
	ctx := context.Background()
	u := seedUser(t, env, "eve", "pw123456", user.RoleUser)

	res, err := svc.Login(ctx, "eve", "pw123456", testMeta())
	require.NoError(t, err)

	require.NoError(t, env.userRepo.Delete(ctx, u.ID))

	_, _, err = svc.ValidateToken(ctx, res.Token)
	assert.ErrorIs(t, err, clubhub_errors.ErrUnauthorized)
}
