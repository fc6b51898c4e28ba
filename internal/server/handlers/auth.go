package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
	"github.com/iudanet/jsonplaceholder-api/internal/server/authctx"
	"github.com/iudanet/jsonplaceholder-api/internal/server/jwt"
	"github.com/iudanet/jsonplaceholder-api/internal/server/password"
	"github.com/iudanet/jsonplaceholder-api/internal/server/storage"
	"github.com/iudanet/jsonplaceholder-api/pkg/api"
)

const bearerPrefix = "Bearer "

// invalidCredentials is returned for both unknown users and wrong
// passwords so login failures do not reveal which accounts exist
const invalidCredentials = "invalid credentials"

// AuthHandler serves registration, login and token introspection
type AuthHandler struct {
	logger *slog.Logger
	users  storage.UserStorage
	hasher password.Hasher
	tokens *jwt.Service
}

func NewAuthHandler(
	logger *slog.Logger,
	users storage.UserStorage,
	hasher password.Hasher,
	tokens *jwt.Service,
) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Login authenticates by username or email and issues a token.
// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := decodeValid(r, &req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUserByCredential(r.Context(), req.UsernameOrEmail)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(h.logger, w, invalidCredentials, http.StatusUnauthorized)
			return
		}
		h.logger.Error("Failed to look up user", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if !h.hasher.Verify(req.Password, user.PasswordHash) {
		sendError(h.logger, w, invalidCredentials, http.StatusUnauthorized)
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Username)
	if err != nil {
		h.logger.Error("Failed to generate token", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("User logged in", "username", user.Username)
	sendJSON(h.logger, w, authResponse(user, &token), http.StatusOK)
}

// Signup registers a new account and issues a token.
// POST /auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req api.SignupRequest
	if err := decodeValid(r, &req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	// Username is checked before email so a request clashing on both
	// reports the username conflict
	taken, err := h.users.ExistsByUsername(r.Context(), req.Username)
	if err != nil {
		h.logger.Error("Failed to check username", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if taken {
		sendError(h.logger, w, storage.ErrUsernameTaken.Error(), http.StatusBadRequest)
		return
	}

	taken, err = h.users.ExistsByEmail(r.Context(), req.Email)
	if err != nil {
		h.logger.Error("Failed to check email", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if taken {
		sendError(h.logger, w, storage.ErrEmailTaken.Error(), http.StatusBadRequest)
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
		// A concurrent signup can still win the race past the
		// existence checks
		if errors.Is(err, storage.ErrUsernameTaken) || errors.Is(err, storage.ErrEmailTaken) {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("Failed to create user", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Username)
	if err != nil {
		h.logger.Error("Failed to generate token", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("User registered", "username", user.Username)
	sendJSON(h.logger, w, authResponse(user, &token), http.StatusCreated)
}

// Validate checks the bearer token supplied in the Authorization header.
// POST /auth/validate
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		sendError(h.logger, w, "missing bearer token", http.StatusBadRequest)
		return
	}

	claims, err := h.tokens.Parse(token)
	if err != nil {
		sendError(h.logger, w, "invalid or expired token", http.StatusUnauthorized)
		return
	}

	user, err := h.users.GetUserByCredential(r.Context(), claims.Subject)
	if err != nil {
		sendError(h.logger, w, "invalid or expired token", http.StatusUnauthorized)
		return
	}

	sendJSON(h.logger, w, authResponse(user, &token), http.StatusOK)
}

// Me returns the account behind the bearer token. The auth paths bypass
// the gate, so the token is resolved here. Any failure is a plain 401:
// introspection must not reveal why a token was rejected.
// GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if auth, ok := authctx.FromContext(r.Context()); ok {
		sendJSON(h.logger, w, authResponse(auth.User, nil), http.StatusOK)
		return
	}

	token, ok := bearerToken(r)
	if !ok {
		sendError(h.logger, w, "invalid or expired token", http.StatusUnauthorized)
		return
	}

	claims, err := h.tokens.Parse(token)
	if err != nil {
		sendError(h.logger, w, "invalid or expired token", http.StatusUnauthorized)
		return
	}

	user, err := h.users.GetUserByCredential(r.Context(), claims.Subject)
	if err != nil {
		sendError(h.logger, w, "invalid or expired token", http.StatusUnauthorized)
		return
	}

	sendJSON(h.logger, w, authResponse(user, nil), http.StatusOK)
}

// bearerToken extracts the token from the Authorization header
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", false
	}

	return token, true
}

func authResponse(user *models.User, token *string) api.AuthResponse {
	return api.AuthResponse{
		Token:    token,
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
	}
}
