package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
	"github.com/iudanet/jsonplaceholder-api/internal/server/storage"
)

func TestStorage_CreateUser_And_Get(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "alice", "alice@example.com")

	byID, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.Equal(t, "alice@example.com", byID.Email)

	byUsername, err := s.GetUserByCredential(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	byEmail, err := s.GetUserByCredential(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestStorage_GetUser_NotFound(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.GetUserByID(ctx, 9999)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	_, err = s.GetUserByCredential(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestStorage_CreateUser_UniqueViolations(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	createTestUser(t, s, "alice", "alice@example.com")

	dup := &models.User{
		Name:         "Dup",
		Username:     "alice",
		Email:        "other@example.com",
		PasswordHash: "hash",
	}
	assert.ErrorIs(t, s.CreateUser(ctx, dup), storage.ErrUsernameTaken)

	dup = &models.User{
		Name:         "Dup",
		Username:     "other",
		Email:        "alice@example.com",
		PasswordHash: "hash",
	}
	assert.ErrorIs(t, s.CreateUser(ctx, dup), storage.ErrEmailTaken)
}

func TestStorage_Exists(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	createTestUser(t, s, "alice", "alice@example.com")

	exists, err := s.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.ExistsByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = s.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.ExistsByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStorage_UpdateUser(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "alice", "alice@example.com")

	user.Name = "Alice Updated"
	user.Phone = "555-0100"
	require.NoError(t, s.UpdateUser(ctx, user))

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Updated", got.Name)
	assert.Equal(t, "555-0100", got.Phone)
}

func TestStorage_UpdateUser_NotFound(t *testing.T) {
	s := newTestStorage(t)

	missing := &models.User{ID: 9999, Name: "Ghost", Username: "ghost", Email: "ghost@example.com"}
	assert.ErrorIs(t, s.UpdateUser(context.Background(), missing), storage.ErrUserNotFound)
}

func TestStorage_UpdateUser_UniqueViolation(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	createTestUser(t, s, "alice", "alice@example.com")
	bob := createTestUser(t, s, "bob", "bob@example.com")

	bob.Username = "alice"
	assert.ErrorIs(t, s.UpdateUser(ctx, bob), storage.ErrUsernameTaken)
}

func TestStorage_DeleteUser(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "alice", "alice@example.com")

	require.NoError(t, s.DeleteUser(ctx, user.ID))

	_, err := s.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	assert.ErrorIs(t, s.DeleteUser(ctx, user.ID), storage.ErrUserNotFound)
}

func TestStorage_DeleteUser_CascadesOwnedRows(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s, "alice", "alice@example.com")
	post := createTestPost(t, s, user.ID, "first post")

	comment := &models.Comment{PostID: post.ID, Name: "Bob", Email: "bob@example.com", Body: "nice"}
	require.NoError(t, s.CreateComment(ctx, comment))

	album := &models.Album{UserID: user.ID, Title: "holiday"}
	require.NoError(t, s.CreateAlbum(ctx, album))

	photo := &models.Photo{AlbumID: album.ID, Title: "beach", URL: "https://example.com/1.jpg"}
	require.NoError(t, s.CreatePhoto(ctx, photo))

	todo := &models.Todo{UserID: user.ID, Title: "pack bags"}
	require.NoError(t, s.CreateTodo(ctx, todo))

	require.NoError(t, s.DeleteUser(ctx, user.ID))

	_, err := s.GetPostByID(ctx, post.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.GetCommentByID(ctx, comment.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.GetAlbumByID(ctx, album.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.GetPhotoByID(ctx, photo.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.GetTodoByID(ctx, todo.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_ListUsers_Pagination(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createTestUser(t, s,
			fmt.Sprintf("user%d", i),
			fmt.Sprintf("user%d@example.com", i))
	}

	opts := storage.NewListOptions(0, 2, "username", "asc")
	users, total, err := s.ListUsers(ctx, opts)
	require.NoError(t, err)

	assert.Equal(t, int64(5), total)
	require.Len(t, users, 2)
	assert.Equal(t, "user0", users[0].Username)
	assert.Equal(t, "user1", users[1].Username)

	opts = storage.NewListOptions(2, 2, "username", "asc")
	users, total, err = s.ListUsers(ctx, opts)
	require.NoError(t, err)

	assert.Equal(t, int64(5), total)
	require.Len(t, users, 1)
	assert.Equal(t, "user4", users[0].Username)
}
