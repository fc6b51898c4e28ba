package storage

import (
	"context"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
)

// UserStorage defines the user persistence interface consumed by the
// authentication core and the user resource handlers.
// All lookups are read-only and propagate failures as-is: no caching,
// no retry policy at this layer.
type UserStorage interface {
	// CreateUser persists a new user and fills in the generated ID.
	// Returns ErrUsernameTaken or ErrEmailTaken on uniqueness violations.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves a user by ID.
	// Returns ErrUserNotFound if no such user exists.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	// GetUserByCredential retrieves a user whose username or email equals
	// the given credential string (case-sensitive).
	// Returns ErrUserNotFound if no such user exists.
	GetUserByCredential(ctx context.Context, usernameOrEmail string) (*models.User, error)

	// ExistsByUsername reports whether a user with the username exists
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether a user with the email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ListUsers returns a page of users and the total count
	ListUsers(ctx context.Context, opts ListOptions) ([]*models.User, int64, error)

	// UpdateUser replaces the stored fields of an existing user.
	// Returns ErrUserNotFound if no such user exists.
	UpdateUser(ctx context.Context, user *models.User) error

	// DeleteUser removes a user by ID.
	// Returns ErrUserNotFound if no such user exists.
	DeleteUser(ctx context.Context, id int64) error
}
