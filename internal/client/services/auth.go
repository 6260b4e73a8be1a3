// Package services contains the client's application services. They combine
// API calls with the local session so the CLI stays thin.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskdeck/internal/client/client"
	"github.com/dmitrijs2005/taskdeck/internal/client/models"
	"github.com/dmitrijs2005/taskdeck/internal/client/session"
)

// AuthService drives sign-in, sign-up and profile changes.
//
// Login and Register persist the token and reset flag, then load the current
// user into the session. ChangePassword clears the reset flag on success.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Register(ctx context.Context, data models.RegisterData) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, name string) (*models.User, error)
	ChangePassword(ctx context.Context, current, next string) error
}

type authService struct {
	client client.Client
	store  *session.Store
}

func NewAuthService(c client.Client, store *session.Store) AuthService {
	return &authService{client: c, store: store}
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", client.ErrInvalidArgument)
	}
	resp, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	return a.establish(ctx, resp)
}

func (a *authService) Register(ctx context.Context, data models.RegisterData) (*models.User, error) {
	data.Username = strings.TrimSpace(data.Username)
	if data.Username == "" || data.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", client.ErrInvalidArgument)
	}
	resp, err := a.client.Register(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return a.establish(ctx, resp)
}

func (a *authService) establish(ctx context.Context, resp *models.AuthResponse) (*models.User, error) {
	if err := a.store.SaveLogin(ctx, resp); err != nil {
		return nil, err
	}
	u, err := a.client.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("load current user: %w", err)
	}
	if resp.PasswordResetRequired && !u.PasswordResetRequired {
		u.PasswordResetRequired = true
	}
	a.store.SetUser(u)
	return u, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

// CurrentUser reloads the user from the server. A rejected token ends the
// session.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	u, err := a.client.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			if clearErr := a.store.Clear(ctx); clearErr != nil {
				return nil, errors.Join(err, clearErr)
			}
		}
		return nil, err
	}
	a.store.SetUser(u)
	return u, nil
}

func (a *authService) UpdateProfile(ctx context.Context, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	u, err := a.client.UpdateCurrentUser(ctx, models.UserUpdate{Name: &name})
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	a.store.SetUser(u)
	return u, nil
}

func (a *authService) ChangePassword(ctx context.Context, current, next string) error {
	if current == "" || next == "" {
		return fmt.Errorf("%w: current and new password are required", client.ErrInvalidArgument)
	}
	if current == next {
		return fmt.Errorf("%w: new password must differ from the current one", client.ErrInvalidArgument)
	}
	u, err := a.client.UpdateCurrentUser(ctx, models.UserUpdate{CurrentPassword: &current, NewPassword: &next})
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	if err := a.store.SetPasswordResetRequired(ctx, false); err != nil {
		return err
	}
	u.PasswordResetRequired = false
	a.store.SetUser(u)
	return nil
}
