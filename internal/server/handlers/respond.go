// Package handlers implements the HTTP handlers for the API.
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/jsonplaceholder-api/internal/server/storage"
	"github.com/iudanet/jsonplaceholder-api/internal/validation"
	"github.com/iudanet/jsonplaceholder-api/pkg/api"
)

// sendJSON writes a JSON response
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError writes a JSON error response
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}

// decodeValid decodes a JSON request body into dst and validates it
// against its struct tags
func decodeValid(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body")
	}
	return validation.Validate(dst)
}

// pathID parses the named integer path parameter
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// listOptions builds pagination options from query parameters:
// page (0-indexed), size, sortBy, sortDir
func listOptions(r *http.Request, defaultSortBy string) storage.ListOptions {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))

	sortBy := q.Get("sortBy")
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	return storage.NewListOptions(page, size, sortBy, q.Get("sortDir"))
}

// pageOf assembles a paginated response
func pageOf[T any](items []T, total int64, opts storage.ListOptions) api.Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := int((total + int64(opts.Size) - 1) / int64(opts.Size))
	return api.Page[T]{
		Items:      items,
		Page:       opts.Page,
		Size:       opts.Size,
		Total:      total,
		TotalPages: totalPages,
	}
}
