package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
	"github.com/iudanet/jsonplaceholder-api/internal/server/storage"
	"github.com/iudanet/jsonplaceholder-api/pkg/api"
)

// CommentHandler serves CRUD on the comment resource
type CommentHandler struct {
	logger   *slog.Logger
	comments storage.CommentStorage
	posts    storage.PostStorage
}

func NewCommentHandler(logger *slog.Logger, comments storage.CommentStorage, posts storage.PostStorage) *CommentHandler {
	return &CommentHandler{logger: logger, comments: comments, posts: posts}
}

// List returns a page of comments.
// GET /comments
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := listOptions(r, "id")

	comments, total, err := h.comments.ListComments(r.Context(), opts)
	if err != nil {
		h.logger.Error("Failed to list comments", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, pageOf(comments, total, opts), http.StatusOK)
}

// ListByPost returns a page of comments on one post.
// GET /comments/post/{postId}
func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.postExists(w, r, postID) {
		return
	}

	opts := listOptions(r, "id")

	comments, total, err := h.comments.ListCommentsByPost(r.Context(), postID, opts)
	if err != nil {
		h.logger.Error("Failed to list comments", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, pageOf(comments, total, opts), http.StatusOK)
}

// Create stores a new comment after checking the post exists.
// POST /comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.CommentRequest
	if err := decodeValid(r, &req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.postExists(w, r, req.PostID) {
		return
	}

	comment := &models.Comment{
		PostID: req.PostID,
		Name:   req.Name,
		Email:  req.Email,
		Body:   req.Body,
	}

	if err := h.comments.CreateComment(r.Context(), comment); err != nil {
		h.logger.Error("Failed to create comment", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, comment, http.StatusCreated)
}

// Get returns one comment.
// GET /comments/{id}
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.comments.GetCommentByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "comment not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get comment", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, comment, http.StatusOK)
}

// Update replaces a comment's fields.
// PUT /comments/{id}
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.CommentRequest
	if err := decodeValid(r, &req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.comments.GetCommentByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "comment not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get comment", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if req.PostID != comment.PostID && !h.postExists(w, r, req.PostID) {
		return
	}

	comment.PostID = req.PostID
	comment.Name = req.Name
	comment.Email = req.Email
	comment.Body = req.Body

	if err := h.comments.UpdateComment(r.Context(), comment); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "comment not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to update comment", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, comment, http.StatusOK)
}

// Delete removes a comment.
// DELETE /comments/{id}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.comments.DeleteComment(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "comment not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to delete comment", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.MessageResponse{Message: "comment deleted"}, http.StatusOK)
}

func (h *CommentHandler) postExists(w http.ResponseWriter, r *http.Request, postID int64) bool {
	_, err := h.posts.GetPostByID(r.Context(), postID)
	if err == nil {
		return true
	}

	if errors.Is(err, storage.ErrNotFound) {
		sendError(h.logger, w, "post not found", http.StatusNotFound)
	} else {
		h.logger.Error("Failed to get post", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
	}

	return false
}
