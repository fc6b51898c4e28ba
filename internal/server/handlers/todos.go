package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
	"github.com/iudanet/jsonplaceholder-api/internal/server/storage"
	"github.com/iudanet/jsonplaceholder-api/pkg/api"
)

// TodoHandler serves CRUD on the todo resource
type TodoHandler struct {
	logger *slog.Logger
	todos  storage.TodoStorage
	users  storage.UserStorage
}

func NewTodoHandler(logger *slog.Logger, todos storage.TodoStorage, users storage.UserStorage) *TodoHandler {
	return &TodoHandler{logger: logger, todos: todos, users: users}
}

// List returns a page of todos.
// GET /todos
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := listOptions(r, "id")

	todos, total, err := h.todos.ListTodos(r.Context(), opts)
	if err != nil {
		h.logger.Error("Failed to list todos", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, pageOf(todos, total, opts), http.StatusOK)
}

// ListByUser returns a page of todos owned by one user, optionally
// filtered by the completed query parameter.
// GET /todos/user/{userId}
func (h *TodoHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.userExists(w, r, userID) {
		return
	}

	var completed *bool
	if raw := r.URL.Query().Get("completed"); raw != "" {
		val, err := strconv.ParseBool(raw)
		if err != nil {
			sendError(h.logger, w, "invalid completed filter", http.StatusBadRequest)
			return
		}
		completed = &val
	}

	opts := listOptions(r, "id")

	todos, total, err := h.todos.ListTodosByUser(r.Context(), userID, completed, opts)
	if err != nil {
		h.logger.Error("Failed to list todos", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, pageOf(todos, total, opts), http.StatusOK)
}

// Create stores a new todo after checking the owner exists.
// POST /todos
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.TodoRequest
	if err := decodeValid(r, &req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.userExists(w, r, req.UserID) {
		return
	}

	todo := &models.Todo{
		UserID:    req.UserID,
		Title:     req.Title,
		Completed: req.Completed,
	}

	if err := h.todos.CreateTodo(r.Context(), todo); err != nil {
		h.logger.Error("Failed to create todo", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, todo, http.StatusCreated)
}

// Get returns one todo.
// GET /todos/{id}
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	todo, err := h.todos.GetTodoByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "todo not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get todo", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, todo, http.StatusOK)
}

// Update replaces a todo's fields.
// PUT /todos/{id}
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.TodoRequest
	if err := decodeValid(r, &req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	todo, err := h.todos.GetTodoByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "todo not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get todo", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if req.UserID != todo.UserID && !h.userExists(w, r, req.UserID) {
		return
	}

	todo.UserID = req.UserID
	todo.Title = req.Title
	todo.Completed = req.Completed

	if err := h.todos.UpdateTodo(r.Context(), todo); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "todo not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to update todo", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, todo, http.StatusOK)
}

// Delete removes a todo.
// DELETE /todos/{id}
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.todos.DeleteTodo(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(h.logger, w, "todo not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to delete todo", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.MessageResponse{Message: "todo deleted"}, http.StatusOK)
}

func (h *TodoHandler) userExists(w http.ResponseWriter, r *http.Request, userID int64) bool {
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
