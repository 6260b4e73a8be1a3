// Package common holds constants shared by the client packages.
package common

// Keys of the local metadata store.
const (
	TokenStorageKey         = "token"
	PasswordResetStorageKey = "password_reset_required"
)

// HTTP header names set on outbound requests.
const (
	AuthorizationHeader = "Authorization"
	RequestIDHeader     = "X-Request-ID"
	BearerScheme        = "Bearer"
)
