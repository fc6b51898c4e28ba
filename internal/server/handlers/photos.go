package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
	"github.com/iudanet/jsonplaceholder-api/internal/server/storage"
	"github.com/iudanet/jsonplaceholder-api/pkg/api"
)

// PhotoHandler serves CRUD on the photo resource
type PhotoHandler struct {
	logger *slog.Logger
	photos storage.PhotoStorage
	albums storage.AlbumStorage
}

func NewPhotoHandler(logger *slog.Logger, photos storage.PhotoStorage, albums storage.AlbumStorage) *PhotoHandler {
	return &PhotoHandler{logger: logger, photos: photos, albums: albums}
}

// List returns a page of photos.
// GET /photos
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := listOptions(r, "id")

	photos, total, err := h.photos.ListPhotos(r.Context(), opts)
	if err != nil {
		h.logger.Error("Failed to list photos", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, pageOf(photos, total, opts), http.StatusOK)
}

// ListByAlbum returns a page of photos in one album.
// GET /photos/album/{albumId}
func (h *PhotoHandler) ListByAlbum(w http.ResponseWriter, r *http.Request) {
	albumID, err := pathID(r, "albumId")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.albumExists(w, r, albumID) {
		return
	}

	opts := listOptions(r, "id")

	photos, total, err := h.photos.ListPhotosByAlbum(r.Context(), albumID, opts)
	if err != nil {
		h.logger.Error("Failed to list photos", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, pageOf(photos, total, opts), http.StatusOK)
}

// Create stores a new photo after checking the album exists.
// POST /photos
func (h *PhotoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.PhotoRequest
	if err := decodeValid(r, &req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.albumExists(w, r, req.AlbumID) {
		return
	}

	photo := &models.Photo{
		AlbumID:      req.AlbumID,
		Title:        req.Title,
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
	}

	if err := h.photos.CreatePhoto(r.Context(), photo); err != nil {
		h.logger.Error("Failed to create photo", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, photo, http.StatusCreated)
}

// Get returns one photo.
// GET /photos/{id}
func (h *PhotoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	photo, err := h.photos.GetPhotoByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "photo not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get photo", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, photo, http.StatusOK)
}

// Update replaces a photo's fields.
// PUT /photos/{id}
func (h *PhotoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.PhotoRequest
	if err := decodeValid(r, &req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	photo, err := h.photos.GetPhotoByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "photo not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get photo", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if req.AlbumID != photo.AlbumID && !h.albumExists(w, r, req.AlbumID) {
		return
	}

	photo.AlbumID = req.AlbumID
	photo.Title = req.Title
	photo.URL = req.URL
	photo.ThumbnailURL = req.ThumbnailURL

	if err := h.photos.UpdatePhoto(r.Context(), photo); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "photo not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to update photo", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, photo, http.StatusOK)
}

// Delete removes a photo.
// DELETE /photos/{id}
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.photos.DeletePhoto(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "photo not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to delete photo", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.MessageResponse{Message: "photo deleted"}, http.StatusOK)
}

func (h *PhotoHandler) albumExists(w http.ResponseWriter, r *http.Request, albumID int64) bool {
	_, err := h.albums.GetAlbumByID(r.Context(), albumID)
	if err == nil {
		return true
	}

	if errors.Is(err, storage.ErrNotFound) {
		sendError(h.logger, w, "album not found", http.StatusNotFound)
	} else {
		h.logger.Error("Failed to get album", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
	}

	return false
}
