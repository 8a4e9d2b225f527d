package user

import "errors"

var (
	ErrEmailExists        = errors.New("an account with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOTP         = errors.New("invalid verification code")
	ErrMissingFields      = errors.New("username, email and password are required")
	ErrEmptyPassword      = errors.New("password is required")
	ErrEmptyUsername      = errors.New("username cannot be empty")
)
