package services

import (
	"context"

	"github.com/ssfi-digital/federation-portal/models"
	"github.com/ssfi-digital/federation-portal/store"
)

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*models.User, error)
	Logout(ctx context.Context)
	Session(ctx context.Context) (*models.User, bool)
}

type LoginInput struct {
	Role models.UserRole `json:"role"`
}

type authService struct {
	store *store.Store
}

func NewAuthService(st *store.Store) AuthService {
	return &authService{store: st}
}

// Login starts a session for the asserted role. Roles are self-asserted in
// this system: there is no credential to check, only the role has to be one
// of the six known variants. A second login overwrites the first.
func (s *authService) Login(ctx context.Context, input LoginInput) (*models.User, error) {
	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}
	user := s.store.Login(ctx, input.Role)
	return &user, nil
}

// Logout is idempotent; signing out twice leaves the same signed-out state.
func (s *authService) Logout(ctx context.Context) {
	s.store.Logout(ctx)
}

func (s *authService) Session(ctx context.Context) (*models.User, bool) {
	user := s.store.CurrentUser()
	if user == nil {
		return nil, false
	}
	return user, true
}
