package handlers

import (
	"log/slog"
	"net/http"
)

// DocsHandler serves a machine-readable inventory of the API routes
type DocsHandler struct {
	logger *slog.Logger
}

func NewDocsHandler(logger *slog.Logger) *DocsHandler {
	return &DocsHandler{logger: logger}
}

type routeDoc struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Auth   bool   `json:"auth"`
	Doc    string `json:"doc"`
}

type apiDocs struct {
	Name   string     `json:"name"`
	Routes []routeDoc `json:"routes"`
}

var routes = []routeDoc{
	{Method: "POST", Path: "/auth/signup", Auth: false, Doc: "register a new account"},
	{Method: "POST", Path: "/auth/login", Auth: false, Doc: "authenticate by username or email"},
	{Method: "POST", Path: "/auth/validate", Auth: false, Doc: "validate a bearer token"},
	{Method: "GET", Path: "/auth/me", Auth: true, Doc: "account behind the bearer token"},
	{Method: "GET", Path: "/health", Auth: false, Doc: "service and database status"},
	{Method: "GET", Path: "/api-docs", Auth: false, Doc: "this route inventory"},

	{Method: "GET", Path: "/users", Auth: true, Doc: "list users"},
	{Method: "POST", Path: "/users", Auth: true, Doc: "create a user"},
	{Method: "GET", Path: "/users/{id}", Auth: true, Doc: "get a user"},
	{Method: "PUT", Path: "/users/{id}", Auth: true, Doc: "update a user"},
	{Method: "DELETE", Path: "/users/{id}", Auth: true, Doc: "delete a user"},

	{Method: "GET", Path: "/posts", Auth: true, Doc: "list posts"},
	{Method: "POST", Path: "/posts", Auth: true, Doc: "create a post"},
	{Method: "GET", Path: "/posts/{id}", Auth: true, Doc: "get a post"},
	{Method: "PUT", Path: "/posts/{id}", Auth: true, Doc: "update a post"},
	{Method: "DELETE", Path: "/posts/{id}", Auth: true, Doc: "delete a post"},
	{Method: "GET", Path: "/posts/user/{userId}", Auth: true, Doc: "posts by a user"},

	{Method: "GET", Path: "/comments", Auth: true, Doc: "list comments"},
	{Method: "POST", Path: "/comments", Auth: true, Doc: "create a comment"},
	{Method: "GET", Path: "/comments/{id}", Auth: true, Doc: "get a comment"},
	{Method: "PUT", Path: "/comments/{id}", Auth: true, Doc: "update a comment"},
	{Method: "DELETE", Path: "/comments/{id}", Auth: true, Doc: "delete a comment"},
	{Method: "GET", Path: "/comments/post/{postId}", Auth: true, Doc: "comments on a post"},

	{Method: "GET", Path: "/albums", Auth: true, Doc: "list albums"},
	{Method: "POST", Path: "/albums", Auth: true, Doc: "create an album"},
	{Method: "GET", Path: "/albums/{id}", Auth: true, Doc: "get an album"},
	{Method: "PUT", Path: "/albums/{id}", Auth: true, Doc: "update an album"},
	{Method: "DELETE", Path: "/albums/{id}", Auth: true, Doc: "delete an album"},
	{Method: "GET", Path: "/albums/user/{userId}", Auth: true, Doc: "albums by a user"},

	{Method: "GET", Path: "/photos", Auth: true, Doc: "list photos"},
	{Method: "POST", Path: "/photos", Auth: true, Doc: "create a photo"},
	{Method: "GET", Path: "/photos/{id}", Auth: true, Doc: "get a photo"},
	{Method: "PUT", Path: "/photos/{id}", Auth: true, Doc: "update a photo"},
	{Method: "DELETE", Path: "/photos/{id}", Auth: true, Doc: "delete a photo"},
	{Method: "GET", Path: "/photos/album/{albumId}", Auth: true, Doc: "photos in an album"},

	{Method: "GET", Path: "/todos", Auth: true, Doc: "list todos"},
	{Method: "POST", Path: "/todos", Auth: true, Doc: "create a todo"},
	{Method: "GET", Path: "/todos/{id}", Auth: true, Doc: "get a todo"},
	{Method: "PUT", Path: "/todos/{id}", Auth: true, Doc: "update a todo"},
	{Method: "DELETE", Path: "/todos/{id}", Auth: true, Doc: "delete a todo"},
	{Method: "GET", Path: "/todos/user/{userId}", Auth: true, Doc: "todos by a user"},
}

// Docs lists every route with its method and auth requirement.
// GET /api-docs
func (h *DocsHandler) Docs(w http.ResponseWriter, r *http.Request) {
	sendJSON(h.logger, w, apiDocs{Name: "jsonplaceholder-api", Routes: routes}, http.StatusOK)
}
