package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/repository"
	"github.com/abdullah-masud/Doctors-Portal-Server/pkg/auth"
)

var ErrUserNotFound = errors.New("user not found")

// Service manages accounts and roles: the upsert-then-token login path,
// admin promotion, and admin checks.
type Service struct {
	repo   repository.UserRepository
	jwtSvc auth.JWTService
}

func NewService(repo repository.UserRepository, jwtSvc auth.JWTService) *Service {
	return &Service{
		repo:   repo,
		jwtSvc: jwtSvc,
	}
}

// UpsertUser inserts or refreshes the account keyed by email and issues a
// fresh token bound to it. This is the account-creation/login path, so it is
// the one identity mutation that requires no prior authorization.
func (s *Service) UpsertUser(ctx context.Context, email string, req *model.UpsertUserRequest) (*model.User, string, error) {
	user := &model.User{
		Email: email,
		Name:  req.Name,
	}

	if err := s.repo.Upsert(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to upsert user: %w", err)
	}

	token, err := s.jwtSvc.GenerateToken(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// PromoteToAdmin sets the user's role to admin. Promoting an existing admin
// is a no-op success; an unknown email is ErrUserNotFound.
func (s *Service) PromoteToAdmin(ctx context.Context, email string) error {
	if err := s.repo.SetRole(ctx, email, model.RoleAdmin); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to promote user: %w", err)
	}
	return nil
}

// IsAdmin reports whether the email belongs to an admin. A missing user is
// simply not an admin, never an error.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get user: %w", err)
	}
	return user.IsAdmin(), nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
