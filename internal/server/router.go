package server

import (
	"net/http"
	"net/http/pprof"

	"github.com/iudanet/jsonplaceholder-api/internal/server/handlers"
	"github.com/iudanet/jsonplaceholder-api/internal/server/middleware"
)

// routes builds the full handler tree.
//
// Middleware order, outermost first: Recovery, RequestID, Logging, CORS,
// the authentication gate, then the mux. The gate only binds a principal
// to the context; RequireAuth on each protected route turns a missing
// principal into 401. The credential endpoints additionally sit behind
// the per-IP rate limiter.
func (s *Server) routes() http.Handler {
	authH := handlers.NewAuthHandler(s.logger, s.store, s.hasher, s.tokens)
	healthH := handlers.NewHealthHandler(s.logger, s.store)
	docsH := handlers.NewDocsHandler(s.logger)

	userH := handlers.NewUserHandler(s.logger, s.store, s.hasher)
	postH := handlers.NewPostHandler(s.logger, s.store, s.store)
	commentH := handlers.NewCommentHandler(s.logger, s.store, s.store)
	albumH := handlers.NewAlbumHandler(s.logger, s.store, s.store)
	photoH := handlers.NewPhotoHandler(s.logger, s.store, s.store)
	todoH := handlers.NewTodoHandler(s.logger, s.store, s.store)

	requireAuth := middleware.RequireAuth(s.logger)
	protected := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	mux := http.NewServeMux()

	// Public surface
	mux.Handle("POST /auth/signup", s.limiter.Limit(http.HandlerFunc(authH.Signup)))
	mux.Handle("POST /auth/login", s.limiter.Limit(http.HandlerFunc(authH.Login)))
	mux.HandleFunc("POST /auth/validate", authH.Validate)
	mux.HandleFunc("GET /auth/me", authH.Me)
	mux.HandleFunc("GET /health", healthH.Health)
	mux.HandleFunc("GET /api-docs", docsH.Docs)
	mux.HandleFunc("GET /{$}", root)

	// Operator console
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)

	// Users
	mux.Handle("GET /users", protected(userH.List))
	mux.Handle("POST /users", protected(userH.Create))
	mux.Handle("GET /users/{id}", protected(userH.Get))
	mux.Handle("PUT /users/{id}", protected(userH.Update))
	mux.Handle("DELETE /users/{id}", protected(userH.Delete))

	// Posts
	mux.Handle("GET /posts", protected(postH.List))
	mux.Handle("POST /posts", protected(postH.Create))
	mux.Handle("GET /posts/{id}", protected(postH.Get))
	mux.Handle("PUT /posts/{id}", protected(postH.Update))
	mux.Handle("DELETE /posts/{id}", protected(postH.Delete))
	mux.Handle("GET /posts/user/{userId}", protected(postH.ListByUser))

	// Comments
	mux.Handle("GET /comments", protected(commentH.List))
	mux.Handle("POST /comments", protected(commentH.Create))
	mux.Handle("GET /comments/{id}", protected(commentH.Get))
	mux.Handle("PUT /comments/{id}", protected(commentH.Update))
	mux.Handle("DELETE /comments/{id}", protected(commentH.Delete))
	mux.Handle("GET /comments/post/{postId}", protected(commentH.ListByPost))

	// Albums
	mux.Handle("GET /albums", protected(albumH.List))
	mux.Handle("POST /albums", protected(albumH.Create))
	mux.Handle("GET /albums/{id}", protected(albumH.Get))
	mux.Handle("PUT /albums/{id}", protected(albumH.Update))
	mux.Handle("DELETE /albums/{id}", protected(albumH.Delete))
	mux.Handle("GET /albums/user/{userId}", protected(albumH.ListByUser))

	// Photos
	mux.Handle("GET /photos", protected(photoH.List))
	mux.Handle("POST /photos", protected(photoH.Create))
	mux.Handle("GET /photos/{id}", protected(photoH.Get))
	mux.Handle("PUT /photos/{id}", protected(photoH.Update))
	mux.Handle("DELETE /photos/{id}", protected(photoH.Delete))
	mux.Handle("GET /photos/album/{albumId}", protected(photoH.ListByAlbum))

	// Todos
	mux.Handle("GET /todos", protected(todoH.List))
	mux.Handle("POST /todos", protected(todoH.Create))
	mux.Handle("GET /todos/{id}", protected(todoH.Get))
	mux.Handle("PUT /todos/{id}", protected(todoH.Update))
	mux.Handle("DELETE /todos/{id}", protected(todoH.Delete))
	mux.Handle("GET /todos/user/{userId}", protected(todoH.ListByUser))

	gate := middleware.NewGate(s.logger, s.tokens, s.store, middleware.DefaultBypassRules())

	var handler http.Handler = mux
	handler = gate.Authenticate(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(s.logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

func root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"name":"jsonplaceholder-api","docs":"/api-docs"}` + "\n"))
}
