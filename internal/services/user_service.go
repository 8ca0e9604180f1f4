package services

import (
	"context"
	"fmt"
	"time"

	"clubhub/internal/domain/auditlog"
	"clubhub/internal/domain/user"
	"clubhub/internal/repository"
	clubhub_errors "clubhub/pkg/errors"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo  repository.UserRepository
	audit *AuditService
}

func NewUserService(repo repository.UserRepository, audit *AuditService) *UserService {
	return &UserService{repo: repo, audit: audit}
}

type UserInfo struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StudentID string `json:"student_id,omitempty"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

func (s *UserService) List(ctx context.Context) ([]UserInfo, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]UserInfo, 0, len(users))
	for _, u := range users {
		result = append(result, toUserInfo(u))
	}
	return result, nil
}

type CreateUserInput struct {
	Name      string
	StudentID string
	Username  string
	Password  string
	Role      string
}

// Create adds a member account. Admin only. Username uniqueness is
// enforced by the database constraint and surfaces as a conflict.
func (s *UserService) Create(ctx context.Context, actor user.Principal, in CreateUserInput, meta RequestMeta) (UserInfo, error) {
	if !actor.IsAdmin() {
		return UserInfo{}, clubhub_errors.ErrForbidden
	}

	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.StudentID == "" {
		missing = append(missing, "student_id")
	}
	if in.Username == "" {
		missing = append(missing, "username")
	}
	if in.Password == "" || len(in.Password) < 6 {
		missing = append(missing, "password")
	}
	if in.Role != user.RoleUser && in.Role != user.RoleAdmin {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return UserInfo{}, clubhub_errors.NewValidation(missing...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserInfo{}, err
	}

	newUser := &user.User{
		Name:         in.Name,
		StudentID:    in.StudentID,
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		return UserInfo{}, err
	}

	s.audit.Record(ctx, actor, auditlog.ActionCreateUser,
		fmt.Sprintf("Created user: %s", in.Username),
		auditlog.Details{
			"newUserId":   newUser.ID,
			"newUsername": in.Username,
			"newUserRole": in.Role,
		}, meta)

	return toUserInfo(*newUser), nil
}

// Delete removes a member account. Admin only; deleting your own
// account is rejected so an installation cannot lock itself out.
func (s *UserService) Delete(ctx context.Context, actor user.Principal, id int64, meta RequestMeta) error {
	if !actor.IsAdmin() {
		return clubhub_errors.ErrForbidden
	}
	if id == actor.ID {
		return fmt.Errorf("%w: cannot delete your own account", clubhub_errors.ErrInvalidInput)
	}

	target, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, auditlog.ActionDeleteUser,
		fmt.Sprintf("Deleted user: %s", target.Username),
		auditlog.Details{
			"deletedUserId":   target.ID,
			"deletedUsername": target.Username,
			"deletedUserRole": target.Role,
		}, meta)

	return nil
}

func toUserInfo(u user.User) UserInfo {
	return UserInfo{
		ID:        u.ID,
		Name:      u.Name,
		StudentID: u.StudentID,
		Username:  u.Username,
		Role:      u.Role,
	}
}
