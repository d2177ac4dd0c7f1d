// Package usecase implements the business logic for the user feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when the email is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on a failed login. It deliberately
	// does not distinguish between an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserBanned is returned when a banned user attempts to log in.
	ErrUserBanned = errors.New("user is banned")

	// ErrPasswordTooShort is returned when a password is shorter than the minimum.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")

	// ErrMissingFields is returned when a required registration field is empty.
	ErrMissingFields = errors.New("name, email or password is missing")

	// ErrInvalidToken is returned when an activation or reset token fails verification.
	ErrInvalidToken = errors.New("invalid or expired token")
)
