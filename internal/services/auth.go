package services

import (
	"context"
	"fmt"

	"github.com/avelkovs/fleetdesk/internal/common"
	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/repositories/session"
	"github.com/avelkovs/fleetdesk/internal/repositories/users"
)

// AuthService is the session/role gate.
//
// Contract:
//   - Login: exact, case-sensitive match on email and password; stores the
//     session on success. On failure the prior session is left untouched and
//     common.ErrorUnauthorized is returned.
//   - Logout: clears the session unconditionally.
//   - Current: returns the session user, or nil when logged out.
//   - Can: checks the current user against the static role-action table.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.User, error)
	Can(ctx context.Context, action models.Action) (bool, error)
}

type authService struct {
	users   users.Repository
	session session.Repository
}

func NewAuthService(users users.Repository, session session.Repository) AuthService {
	return &authService{users: users, session: session}
}

func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	accounts, err := a.users.List(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to load users: %w", err)
	}

	for _, u := range accounts {
		if u.Email == email && u.Password == password {
			if err := a.session.Set(ctx, u); err != nil {
				return models.User{}, fmt.Errorf("failed to store session: %w", err)
			}
			return u, nil
		}
	}

	return models.User{}, common.ErrorUnauthorized
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

func (a *authService) Current(ctx context.Context) (*models.User, error) {
	return a.session.Get(ctx)
}

func (a *authService) Can(ctx context.Context, action models.Action) (bool, error) {
	user, err := a.session.Get(ctx)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return user.Role.Can(action), nil
}
