package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
	"github.com/iudanet/jsonplaceholder-api/internal/server/storage"
	"github.com/iudanet/jsonplaceholder-api/pkg/api"
)

// AlbumHandler serves CRUD on the album resource
type AlbumHandler struct {
	logger *slog.Logger
	albums storage.AlbumStorage
	users  storage.UserStorage
}

func NewAlbumHandler(logger *slog.Logger, albums storage.AlbumStorage, users storage.UserStorage) *AlbumHandler {
	return &AlbumHandler{logger: logger, albums: albums, users: users}
}

// List returns a page of albums.
// GET /albums
func (h *AlbumHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := listOptions(r, "id")

	albums, total, err := h.albums.ListAlbums(r.Context(), opts)
	if err != nil {
		h.logger.Error("Failed to list albums", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, pageOf(albums, total, opts), http.StatusOK)
}

// ListByUser returns a page of albums owned by one user.
// GET /albums/user/{userId}
func (h *AlbumHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.userExists(w, r, userID) {
		return
	}

	opts := listOptions(r, "id")

	albums, total, err := h.albums.ListAlbumsByUser(r.Context(), userID, opts)
	if err != nil {
		h.logger.Error("Failed to list albums", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, pageOf(albums, total, opts), http.StatusOK)
}

// Create stores a new album after checking the owner exists.
// POST /albums
func (h *AlbumHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.AlbumRequest
	if err := decodeValid(r, &req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.userExists(w, r, req.UserID) {
		return
	}

	album := &models.Album{
		UserID: req.UserID,
		Title:  req.Title,
	}

	if err := h.albums.CreateAlbum(r.Context(), album); err != nil {
		h.logger.Error("Failed to create album", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, album, http.StatusCreated)
}

// Get returns one album.
// GET /albums/{id}
func (h *AlbumHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	album, err := h.albums.GetAlbumByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "album not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get album", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, album, http.StatusOK)
}

// Update replaces an album's fields.
// PUT /albums/{id}
func (h *AlbumHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.AlbumRequest
	if err := decodeValid(r, &req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	album, err := h.albums.GetAlbumByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "album not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get album", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if req.UserID != album.UserID && !h.userExists(w, r, req.UserID) {
		return
	}

	album.UserID = req.UserID
	album.Title = req.Title

	if err := h.albums.UpdateAlbum(r.Context(), album); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "album not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to update album", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, album, http.StatusOK)
}

// Delete removes an album and its photos.
// DELETE /albums/{id}
func (h *AlbumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.albums.DeleteAlbum(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "album not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to delete album", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.MessageResponse{Message: "album deleted"}, http.StatusOK)
}

func (h *AlbumHandler) userExists(w http.ResponseWriter, r *http.Request, userID int64) bool {
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
