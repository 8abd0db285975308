package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"calendo/internal/common/security"
	"calendo/internal/domain/model"
	"calendo/internal/platform/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(t *testing.T) chi.Router {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey:      []byte("middleware-test-key"),
		JWTIssuer:   "calendo-test",
		JWTAudience: "calendo-test-clients",
		JWTExp:      time.Hour,
	}
	security.InitJWT()

	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(security.TokenAuth))
	r.Use(Authenticator)

	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
		username, _ := GetUsernameFromContext(r.Context())
		role, _ := GetUserRoleFromContext(r.Context())
		w.Write([]byte(username + ":" + role))
	})
	r.With(AdminOnly).Get("/admin", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.With(RequireRoles(model.RoleAdmin, model.RoleStaff)).Get("/staff", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	return r
}

func get(r chi.Router, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticator_RequiresToken(t *testing.T) {
	r := newGuardedRouter(t)

	rec := get(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = get(r, "/me", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticator_ExposesClaims(t *testing.T) {
	r := newGuardedRouter(t)
	token, err := security.GenerateToken("alice", model.RoleUser)
	require.NoError(t, err)

	rec := get(r, "/me", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice:User", rec.Body.String())
}

func TestRoleGuards(t *testing.T) {
	r := newGuardedRouter(t)

	userToken, err := security.GenerateToken("alice", model.RoleUser)
	require.NoError(t, err)
	staffToken, err := security.GenerateToken("bob", model.RoleStaff)
	require.NoError(t, err)
	adminToken, err := security.GenerateToken("root", model.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, get(r, "/admin", userToken).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/admin", staffToken).Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin", adminToken).Code)

	assert.Equal(t, http.StatusForbidden, get(r, "/staff", userToken).Code)
	assert.Equal(t, http.StatusOK, get(r, "/staff", staffToken).Code)
	assert.Equal(t, http.StatusOK, get(r, "/staff", adminToken).Code)
}

func TestAuthenticator_RejectsExpiredToken(t *testing.T) {
	r := newGuardedRouter(t)

	config.AppConfig.JWTExp = -time.Minute
	token, err := security.GenerateToken("alice", model.RoleUser)
	require.NoError(t, err)
	config.AppConfig.JWTExp = time.Hour

	rec := get(r, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
