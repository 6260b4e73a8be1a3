package models

// User is an account as returned by /api/v1/userinfo/ and /api/v1/users/.
type User struct {
	ID                    string  `json:"id"`
	Username              string  `json:"username"`
	Name                  *string `json:"name"`
	Role                  Role    `json:"role"`
	IsActive              bool    `json:"is_active"`
	CreatedAt             Time    `json:"created_at"`
	PasswordResetRequired bool    `json:"password_reset_required"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// DisplayName returns the name when set and the username otherwise.
func (u User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Username
}

// AuthResponse is returned by /token and /signup.
type AuthResponse struct {
	AccessToken           string `json:"access_token"`
	TokenType             string `json:"token_type"`
	PasswordResetRequired bool   `json:"password_reset_required,omitempty"`
}

// RegisterData is the /signup payload.
type RegisterData struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Name     *string `json:"name,omitempty"`
}

// UserCreate is the admin payload for POST /api/v1/users/.
type UserCreate struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role,omitempty"`
}

// UserUpdate is a partial update; nil fields are not sent.
type UserUpdate struct {
	Name            *string `json:"name,omitempty"`
	Password        *string `json:"password,omitempty"`
	CurrentPassword *string `json:"current_password,omitempty"`
	NewPassword     *string `json:"new_password,omitempty"`
	Role            *Role   `json:"role,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}
