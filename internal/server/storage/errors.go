package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that the user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken indicates that the username is already registered
	ErrUsernameTaken = errors.New("username already in use")

	// ErrEmailTaken indicates that the email is already registered
	ErrEmailTaken = errors.New("email already in use")

	// ErrNotFound indicates that a resource record was not found
	ErrNotFound = errors.New("record not found")
)
