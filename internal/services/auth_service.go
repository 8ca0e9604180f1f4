package services

import (
	"context"
	"fmt"
	"time"

	"clubhub/config"
	"clubhub/internal/domain/auditlog"
	"clubhub/internal/domain/user"
	"clubhub/internal/repository"
	clubhub_errors "clubhub/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SessionCookie is the httpOnly cookie carrying the session token.
const SessionCookie = "clubhub_session"

// AuthService issues and validates cookie sessions. The cookie holds a
// signed token naming the user and a session row; the row is the source
// of truth, so revoking it kills the cookie immediately.
type AuthService struct {
	userRepo   repository.UserRepository
	audit      *AuditService
	secret     []byte
	sessionTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, audit *AuditService, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		audit:      audit,
		secret:     []byte(cfg.SessionSecret),
		sessionTTL: time.Duration(cfg.SessionTTLHours) * time.Hour,
	}
}

type SessionClaims struct {
	UserID    int64  `json:"uid"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type LoginResult struct {
	Token     string
	ExpiresIn int64
	User      user.Principal
}

func (s *AuthService) Login(ctx context.Context, username, password string, meta RequestMeta) (LoginResult, error) {
	if username == "" || password == "" {
		return LoginResult{}, clubhub_errors.NewValidation("username", "password")
	}

	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		// Same answer for unknown user and wrong password.
		return LoginResult{}, clubhub_errors.ErrUnauthorized
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return LoginResult{}, clubhub_errors.ErrUnauthorized
	}

	now := time.Now()
	session := &user.Session{
		ID:        uuid.New(),
		UserID:    u.ID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if err := s.userRepo.CreateSession(ctx, session); err != nil {
		return LoginResult{}, err
	}

	token, err := s.signToken(u.ID, session.ID, session.ExpiresAt, now)
	if err != nil {
		return LoginResult{}, err
	}

	principal := toPrincipal(u)
	s.audit.Record(ctx, principal, auditlog.ActionLogin,
		fmt.Sprintf("User %s logged in", u.Username),
		auditlog.Details{"role": u.Role}, meta)

	return LoginResult{
		Token:     token,
		ExpiresIn: int64(s.sessionTTL.Seconds()),
		User:      principal,
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, actor user.Principal, sessionID uuid.UUID, meta RequestMeta) error {
	if err := s.userRepo.RevokeSession(ctx, sessionID); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, auditlog.ActionLogout,
		fmt.Sprintf("User %s logged out", actor.Username), nil, meta)

	return nil
}

// ValidateToken checks the signed cookie against the session row and
// re-reads the user row, so the returned principal always carries the
// current role.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (user.Principal, uuid.UUID, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return user.Principal{}, uuid.Nil, err
	}

	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return user.Principal{}, uuid.Nil, clubhub_errors.ErrUnauthorized
	}

	session, err := s.userRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return user.Principal{}, uuid.Nil, clubhub_errors.ErrUnauthorized
	}
	if session.IsRevoked || time.Now().After(session.ExpiresAt) || session.UserID != claims.UserID {
		return user.Principal{}, uuid.Nil, clubhub_errors.ErrUnauthorized
	}

	u, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return user.Principal{}, uuid.Nil, clubhub_errors.ErrUnauthorized
	}

	return toPrincipal(u), sessionID, nil
}

func (s *AuthService) signToken(userID int64, sessionID uuid.UUID, expiresAt, now time.Time) (string, error) {
	claims := SessionClaims{
		UserID:    userID,
		SessionID: sessionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *AuthService) parseToken(token string) (SessionClaims, error) {
	if token == "" {
		return SessionClaims{}, clubhub_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, clubhub_errors.ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil {
		return SessionClaims{}, clubhub_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return SessionClaims{}, clubhub_errors.ErrUnauthorized
	}
	return *claims, nil
}

func toPrincipal(u user.User) user.Principal {
	return user.Principal{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Role:     u.Role,
	}
}

type ctxKey string

var principalKey ctxKey = "principal"
var sessionIDKey ctxKey = "session_id"

func WithPrincipal(ctx context.Context, p user.Principal, sessionID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, principalKey, p)
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

func PrincipalFromContext(ctx context.Context) (user.Principal, bool) {
	value := ctx.Value(principalKey)
	if value == nil {
		return user.Principal{}, false
	}
	p, ok := value.(user.Principal)
	return p, ok
}

func SessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	value := ctx.Value(sessionIDKey)
	if value == nil {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
