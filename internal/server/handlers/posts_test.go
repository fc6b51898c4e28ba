package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
	"github.com/iudanet/jsonplaceholder-api/internal/server/storage"
	"github.com/iudanet/jsonplaceholder-api/pkg/api"
)

// mockPostStorage is a map-backed PostStorage for testing
type mockPostStorage struct {
	posts  map[int64]*models.Post
	nextID int64
}

func newMockPostStorage() *mockPostStorage {
	return &mockPostStorage{posts: make(map[int64]*models.Post)}
}

func (m *mockPostStorage) CreatePost(ctx context.Context, post *models.Post) error {
	m.nextID++
	post.ID = m.nextID
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostStorage) GetPostByID(ctx context.Context, id int64) (*models.Post, error) {
	post, ok := m.posts[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return post, nil
}

func (m *mockPostStorage) ListPosts(ctx context.Context, opts storage.ListOptions) ([]*models.Post, int64, error) {
	var result []*models.Post
	for _, p := range m.posts {
		result = append(result, p)
	}
	return result, int64(len(result)), nil
}

func (m *mockPostStorage) ListPostsByUser(ctx context.Context, userID int64, opts storage.ListOptions) ([]*models.Post, int64, error) {
	var result []*models.Post
	for _, p := range m.posts {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockPostStorage) UpdatePost(ctx context.Context, post *models.Post) error {
	if _, ok := m.posts[post.ID]; !ok {
		return storage.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostStorage) DeletePost(ctx context.Context, id int64) error {
	if _, ok := m.posts[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func newTestPostHandler(t *testing.T) (*PostHandler, *mockPostStorage, *models.User) {
	t.Helper()

	users := newMockUserStorage()
	user := &models.User{Name: "Alice", Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, users.CreateUser(context.Background(), user))

	posts := newMockPostStorage()
	return NewPostHandler(setupTestLogger(), posts, users), posts, user
}

func requestWithID(method, target, id string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.SetPathValue("id", id)
	return req
}

func TestPostHandler_Create(t *testing.T) {
	handler, posts, user := newTestPostHandler(t)

	body, err := json.Marshal(api.PostRequest{UserID: user.ID, Title: "hello", Body: "world"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Post
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "hello", created.Title)

	stored, err := posts.GetPostByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", stored.Title)
}

func TestPostHandler_Create_UnknownAuthor(t *testing.T) {
	handler, _, _ := newTestPostHandler(t)

	body, err := json.Marshal(api.PostRequest{UserID: 9999, Title: "hello", Body: "world"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Create(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostHandler_Create_Validation(t *testing.T) {
	handler, _, user := newTestPostHandler(t)

	tests := []struct {
		name string
		req  api.PostRequest
	}{
		{"missing title", api.PostRequest{UserID: user.ID, Body: "world"}},
		{"missing body", api.PostRequest{UserID: user.ID, Title: "hello"}},
		{"missing user", api.PostRequest{Title: "hello", Body: "world"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(tt.req)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
			w := httptest.NewRecorder()
			handler.Create(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestPostHandler_Get(t *testing.T) {
	handler, posts, user := newTestPostHandler(t)

	post := &models.Post{UserID: user.ID, Title: "hello", Body: "world"}
	require.NoError(t, posts.CreatePost(context.Background(), post))

	w := httptest.NewRecorder()
	handler.Get(w, requestWithID(http.MethodGet, "/posts/1", "1", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Post
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, post.ID, got.ID)
}

func TestPostHandler_Get_Errors(t *testing.T) {
	handler, _, _ := newTestPostHandler(t)

	tests := []struct {
		name     string
		id       string
		wantCode int
	}{
		{"not found", "42", http.StatusNotFound},
		{"not a number", "abc", http.StatusBadRequest},
		{"non-positive", "0", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Get(w, requestWithID(http.MethodGet, "/posts/"+tt.id, tt.id, nil))
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestPostHandler_Update(t *testing.T) {
	handler, posts, user := newTestPostHandler(t)

	post := &models.Post{UserID: user.ID, Title: "hello", Body: "world"}
	require.NoError(t, posts.CreatePost(context.Background(), post))

	body, err := json.Marshal(api.PostRequest{UserID: user.ID, Title: "edited", Body: "new body"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.Update(w, requestWithID(http.MethodPut, "/posts/1", "1", body))

	assert.Equal(t, http.StatusOK, w.Code)

	stored, err := posts.GetPostByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", stored.Title)
	assert.Equal(t, "new body", stored.Body)
}

func TestPostHandler_Delete(t *testing.T) {
	handler, posts, user := newTestPostHandler(t)

	post := &models.Post{UserID: user.ID, Title: "hello", Body: "world"}
	require.NoError(t, posts.CreatePost(context.Background(), post))

	w := httptest.NewRecorder()
	handler.Delete(w, requestWithID(http.MethodDelete, "/posts/1", "1", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	_, err := posts.GetPostByID(context.Background(), post.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	w = httptest.NewRecorder()
	handler.Delete(w, requestWithID(http.MethodDelete, "/posts/1", "1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostHandler_List(t *testing.T) {
	handler, posts, user := newTestPostHandler(t)

	for i := 0; i < 3; i++ {
		post := &models.Post{UserID: user.ID, Title: "post", Body: "body"}
		require.NoError(t, posts.CreatePost(context.Background(), post))
	}

	req := httptest.NewRequest(http.MethodGet, "/posts?page=0&size=10", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var page api.Page[models.Post]
	require.NoError(t, json.NewDecoder(w.Body).Decode(&page))
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 1, page.TotalPages)
}

func TestPostHandler_ListByUser(t *testing.T) {
	handler, posts, user := newTestPostHandler(t)

	post := &models.Post{UserID: user.ID, Title: "mine", Body: "body"}
	require.NoError(t, posts.CreatePost(context.Background(), post))

	req := httptest.NewRequest(http.MethodGet, "/posts/user/1", nil)
	req.SetPathValue("userId", "1")

	w := httptest.NewRecorder()
	handler.ListByUser(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var page api.Page[models.Post]
	require.NoError(t, json.NewDecoder(w.Body).Decode(&page))
	assert.Equal(t, int64(1), page.Total)
}

func TestPostHandler_ListByUser_UnknownUser(t *testing.T) {
	handler, _, _ := newTestPostHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/posts/user/9999", nil)
	req.SetPathValue("userId", "9999")

	w := httptest.NewRecorder()
	handler.ListByUser(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
