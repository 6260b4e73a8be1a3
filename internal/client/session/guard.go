package session

import "context"

// Redirect is the navigation target a guard sends the user to. The empty
// Redirect means access is allowed.
type Redirect string

const (
	Allow         Redirect = ""
	LoginPage     Redirect = "/login"
	DashboardPage Redirect = "/dashboard"
)

func (r Redirect) Allowed() bool { return r == Allow }

// RequireLogin sends the user to the login page when no token is stored.
func RequireLogin(ctx context.Context, s *Store) Redirect {
	if !s.IsAuthenticated(ctx) {
		return LoginPage
	}
	return Allow
}

// RequireAdmin sends non-administrators to the dashboard. It looks only at
// the user already loaded into s.
func RequireAdmin(s *Store) Redirect {
	if u := s.User(); u == nil || !u.IsAdmin() {
		return DashboardPage
	}
	return Allow
}
