package services

import "errors"

// Sentinel errors the controllers map onto HTTP statuses.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrNotOwner           = errors.New("not authorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("role must be 'user' or 'admin'")
	ErrSelfDelete         = errors.New("cannot delete your own account")
	ErrInvalidOTP         = errors.New("invalid or expired reset code")
)
