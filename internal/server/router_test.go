package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/jsonplaceholder-api/internal/config"
	"github.com/iudanet/jsonplaceholder-api/internal/server/storage/sqlite"
	"github.com/iudanet/jsonplaceholder-api/pkg/api"
)

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cfg := &config.Config{
		ListenAddr:     ":0",
		JWTSecret:      "test-secret",
		AccessTokenTTL: time.Hour,
		BcryptCost:     bcrypt.MinCost,
		AuthRateLimit:  1000,
		AuthRateWindow: time.Minute,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(logger, cfg, store)
	t.Cleanup(srv.limiter.Stop)

	return srv, srv.routes()
}

// Every route outside the bypass table must reject an unauthenticated
// request. This is the structural guarantee behind the fail-open gate:
// the gate never blocks, so RequireAuth on each protected route has to.
func TestRoutes_ProtectedRoutesRejectUnauthenticated(t *testing.T) {
	_, handler := newTestServer(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodPost, "/users"},
		{http.MethodGet, "/users/1"},
		{http.MethodPut, "/users/1"},
		{http.MethodDelete, "/users/1"},
		{http.MethodGet, "/posts"},
		{http.MethodPost, "/posts"},
		{http.MethodGet, "/posts/1"},
		{http.MethodGet, "/posts/user/1"},
		{http.MethodGet, "/comments"},
		{http.MethodGet, "/comments/post/1"},
		{http.MethodGet, "/albums"},
		{http.MethodGet, "/albums/user/1"},
		{http.MethodGet, "/photos"},
		{http.MethodGet, "/photos/album/1"},
		{http.MethodGet, "/todos"},
		{http.MethodGet, "/todos/user/1"},
	}

	for _, tt := range protected {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRoutes_PublicRoutesNeedNoToken(t *testing.T) {
	_, handler := newTestServer(t)

	public := []struct {
		method   string
		path     string
		wantCode int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api-docs", http.StatusOK},
		{http.MethodGet, "/", http.StatusOK},
	}

	for _, tt := range public {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

// Full flow over the real router: signup, then use the issued token on a
// protected route and on the introspection endpoints.
func TestRoutes_SignupTokenOpensProtectedRoutes(t *testing.T) {
	_, handler := newTestServer(t)

	signup := `{"name":"Alice","username":"alice","email":"alice@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(signup))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created api.AuthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	require.NotNil(t, created.Token)

	authed := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("Authorization", "Bearer "+*created.Token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, authed(http.MethodGet, "/users").Code)
	assert.Equal(t, http.StatusOK, authed(http.MethodPost, "/auth/validate").Code)

	me := authed(http.MethodGet, "/auth/me")
	require.Equal(t, http.StatusOK, me.Code)

	var identity api.AuthResponse
	require.NoError(t, json.NewDecoder(me.Body).Decode(&identity))
	assert.Nil(t, identity.Token)
	assert.Equal(t, "alice", identity.Username)
}
