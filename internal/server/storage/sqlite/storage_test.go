package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
)

// newTestStorage creates an in-memory database with migrations applied
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	storage, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, storage.Close())
	})

	return storage
}

func createTestUser(t *testing.T, s *Storage, username, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Test User",
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$04$fakehashfortests",
	}
	require.NoError(t, s.CreateUser(context.Background(), user))
	require.NotZero(t, user.ID)

	return user
}

func createTestPost(t *testing.T, s *Storage, userID int64, title string) *models.Post {
	t.Helper()

	post := &models.Post{UserID: userID, Title: title, Body: "body of " + title}
	require.NoError(t, s.CreatePost(context.Background(), post))
	require.NotZero(t, post.ID)

	return post
}

func TestStorage_Ping(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{"id": "id", "userId": "user_id"}

	tests := []struct {
		name    string
		sortBy  string
		sortDir string
		want    string
	}{
		{"known column asc", "userId", "asc", "ORDER BY user_id ASC"},
		{"known column desc", "id", "desc", "ORDER BY id DESC"},
		{"unknown column falls back", "password_hash", "asc", "ORDER BY id ASC"},
		{"injection attempt falls back", "id; DROP TABLE users", "desc", "ORDER BY id DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, orderClause(allowed, tt.sortBy, tt.sortDir))
		})
	}
}
