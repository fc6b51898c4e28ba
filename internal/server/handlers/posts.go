package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
	"github.com/iudanet/jsonplaceholder-api/internal/server/storage"
	"github.com/iudanet/jsonplaceholder-api/pkg/api"
)

// PostHandler serves CRUD on the post resource
type PostHandler struct {
	logger *slog.Logger
	posts  storage.PostStorage
	users  storage.UserStorage
}

func NewPostHandler(logger *slog.Logger, posts storage.PostStorage, users storage.UserStorage) *PostHandler {
	return &PostHandler{logger: logger, posts: posts, users: users}
}

// List returns a page of posts.
// GET /posts
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := listOptions(r, "id")

	posts, total, err := h.posts.ListPosts(r.Context(), opts)
	if err != nil {
		h.logger.Error("Failed to list posts", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, pageOf(posts, total, opts), http.StatusOK)
}

// ListByUser returns a page of posts authored by one user.
// GET /posts/user/{userId}
func (h *PostHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.userExists(w, r, userID) {
		return
	}

	opts := listOptions(r, "id")

	posts, total, err := h.posts.ListPostsByUser(r.Context(), userID, opts)
	if err != nil {
		h.logger.Error("Failed to list posts", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, pageOf(posts, total, opts), http.StatusOK)
}

// Create stores a new post after checking the author exists.
// POST /posts
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.PostRequest
	if err := decodeValid(r, &req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.userExists(w, r, req.UserID) {
		return
	}

	post := &models.Post{
		UserID: req.UserID,
		Title:  req.Title,
		Body:   req.Body,
	}

	if err := h.posts.CreatePost(r.Context(), post); err != nil {
		h.logger.Error("Failed to create post", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, post, http.StatusCreated)
}

// Get returns one post.
// GET /posts/{id}
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.posts.GetPostByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "post not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get post", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, post, http.StatusOK)
}

// Update replaces a post's fields.
// PUT /posts/{id}
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.PostRequest
	if err := decodeValid(r, &req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.posts.GetPostByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "post not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get post", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if req.UserID != post.UserID && !h.userExists(w, r, req.UserID) {
		return
	}

	post.UserID = req.UserID
	post.Title = req.Title
	post.Body = req.Body

	if err := h.posts.UpdatePost(r.Context(), post); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "post not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to update post", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, post, http.StatusOK)
}

// Delete removes a post and its comments.
// DELETE /posts/{id}
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.posts.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "post not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to delete post", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.MessageResponse{Message: "post deleted"}, http.StatusOK)
}

// userExists verifies the referenced author and writes the error reply
// itself when the check fails
func (h *PostHandler) userExists(w http.ResponseWriter, r *http.Request, userID int64) bool {
	_, err := h.users.GetUserByID(r.Context(), userID)
	if err == nil {
		return true
	}

	if errors.Is(err, storage.ErrUserNotFound) {
		sendError(h.logger, w, "user not found", http.StatusNotFound)
	} else {
		h.logger.Error("Failed to get user", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
	}

	return false
}
