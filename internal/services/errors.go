package services

import "errors"

var (
	// ErrUserNotFound is returned when the target user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrMovieNotFound is returned when the target movie does not exist.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrEmailTaken is returned when an update or registration would
	// duplicate another user's email.
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidCredentials is returned on failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidID is returned when an identifier is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid id")
)
