package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
	"github.com/iudanet/jsonplaceholder-api/internal/server/password"
	"github.com/iudanet/jsonplaceholder-api/internal/server/storage"
	"github.com/iudanet/jsonplaceholder-api/pkg/api"
)

// UserHandler serves CRUD on the user resource
type UserHandler struct {
	logger *slog.Logger
	users  storage.UserStorage
	hasher password.Hasher
}

func NewUserHandler(logger *slog.Logger, users storage.UserStorage, hasher password.Hasher) *UserHandler {
	return &UserHandler{logger: logger, users: users, hasher: hasher}
}

// List returns a page of users.
// GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := listOptions(r, "id")

	users, total, err := h.users.ListUsers(r.Context(), opts)
	if err != nil {
		h.logger.Error("Failed to list users", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, pageOf(users, total, opts), http.StatusOK)
}

// Create registers a user on behalf of an authenticated caller.
// POST /users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.UserRequest
	if err := decodeValid(r, &req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		sendError(h.logger, w, "password: is required", http.StatusBadRequest)
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		h.logger.Error("Failed to hash password", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	user := &models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Website:      req.Website,
	}

	if err := h.users.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, storage.ErrUsernameTaken) || errors.Is(err, storage.ErrEmailTaken) {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("Failed to create user", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, user, http.StatusCreated)
}

// Get returns one user.
// GET /users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(h.logger, w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get user", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, user, http.StatusOK)
}

// Update replaces a user's fields. An empty password keeps the stored hash.
// PUT /users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.UserRequest
	if err := decodeValid(r, &req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(h.logger, w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get user", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	user.Name = req.Name
	user.Username = req.Username
	user.Email = req.Email
	user.Phone = req.Phone
	user.Website = req.Website

	if req.Password != "" {
		hash, err := h.hasher.Hash(req.Password)
		if err != nil {
			h.logger.Error("Failed to hash password", "error", err)
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}
		user.PasswordHash = hash
	}

	if err := h.users.UpdateUser(r.Context(), user); err != nil {
		switch {
		case errors.Is(err, storage.ErrUserNotFound):
			sendError(h.logger, w, "user not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrUsernameTaken), errors.Is(err, storage.ErrEmailTaken):
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error("Failed to update user", "error", err)
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	sendJSON(h.logger, w, user, http.StatusOK)
}

// Delete removes a user and, via cascading foreign keys, everything
// the user owns.
// DELETE /users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(h.logger, w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to delete user", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.MessageResponse{Message: "user deleted"}, http.StatusOK)
}
