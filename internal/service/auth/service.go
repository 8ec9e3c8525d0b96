package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/internal/repository"
	"github.com/clinicware/dental-admin/pkg/apperror"
	"github.com/clinicware/dental-admin/pkg/auth"
	"github.com/clinicware/dental-admin/pkg/security"
)

// Service is the identity provider boundary: it issues sessions for
// credentials and answers role-membership queries for the access gate.
type Service struct {
	users  repository.UserRepository
	jwtSvc auth.JWTService
	hasher security.PasswordHasher
	expiry time.Duration
}

func NewService(users repository.UserRepository, jwtSvc auth.JWTService, hasher security.PasswordHasher, expiry time.Duration) *Service {
	return &Service{users: users, jwtSvc: jwtSvc, hasher: hasher, expiry: expiry}
}

func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	roles, err := s.users.RolesFor(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}

	token, err := s.jwtSvc.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.TokenResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.expiry.Seconds()),
		Roles:       roles,
	}, nil
}

func (s *Service) Validate(token string) (*auth.Claims, error) {
	return s.jwtSvc.Validate(token)
}

// RolesFor answers the access gate's role-membership query.
func (s *Service) RolesFor(ctx context.Context, userID int64) ([]string, error) {
	return s.users.RolesFor(ctx, userID)
}
