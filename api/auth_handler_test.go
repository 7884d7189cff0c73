package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/studio-cms-backend/auth"
	"github.com/rpupo63/studio-cms-backend/config"
)

const testSeedSecret = "let-me-seed"

func withSeedSecret(c *config.App) { c.SeedSecretKey = testSeedSecret }

func TestSeedDisabledWithoutSecret(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]any{"secret": "", "email": "new@example.com", "password": "correct-horse"}
	rec := env.request(http.MethodPost, "/api/admin/seed", body, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSeedRejectsWrongSecret(t *testing.T) {
	env := newTestEnv(t, withSeedSecret)

	body := map[string]any{"secret": "guess", "email": "new@example.com", "password": "correct-horse"}
	rec := env.request(http.MethodPost, "/api/admin/seed", body, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Field errors are only reported once the secret matches.
	rec = env.request(http.MethodPost, "/api/admin/seed", map[string]any{"secret": "guess"}, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.request(http.MethodPost, "/api/admin/seed", map[string]any{"secret": testSeedSecret, "email": "nope"}, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[ErrorResponse](t, rec)
	assert.Contains(t, resp.Fields, "email")
	assert.Contains(t, resp.Fields, "password")
}

func TestSeedThenLogin(t *testing.T) {
	env := newTestEnv(t, withSeedSecret)

	seed := map[string]any{"secret": testSeedSecret, "email": "Editor@Example.com", "password": "correct-horse"}
	rec := env.request(http.MethodPost, "/api/admin/seed", seed, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	seeded := decodeBody[SeedResponse](t, rec)
	assert.True(t, seeded.Success)
	assert.Equal(t, "editor@example.com", seeded.Email)
	assert.Equal(t, "Admin user seeded successfully", seeded.Message)

	rec = env.request(http.MethodPost, "/api/auth/login", map[string]any{"email": "editor@example.com", "password": "wrong-horse"}, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.request(http.MethodPost, "/api/auth/login", map[string]any{"email": "editor@example.com", "password": "correct-horse"}, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	session := decodeBody[auth.Session](t, rec)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, defaultAdminName, session.User.Name)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.False(t, cookie.Secure)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(cookie)
	rec = env.serve(req)
	require.Equal(t, http.StatusOK, rec.Code)
	current := decodeBody[SessionResponse](t, rec)
	assert.Equal(t, "editor@example.com", current.User.Email)
	assert.Equal(t, session.User.ID.String(), current.User.ID)

	// Seeding again resets the password.
	seed["password"] = "battery-staple"
	require.Equal(t, http.StatusOK, env.request(http.MethodPost, "/api/admin/seed", seed, false).Code)
	rec = env.request(http.MethodPost, "/api/auth/login", map[string]any{"email": "editor@example.com", "password": "correct-horse"}, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodPost, "/api/auth/logout", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestAdminPagesRedirectToLogin(t *testing.T) {
	env := newTestEnv(t, func(c *config.App) { c.AdminUIDir = t.TempDir() })

	rec := env.request(http.MethodGet, "/admin/projects", nil, false)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?callbackUrl=%2Fadmin%2Fprojects", rec.Header().Get("Location"))
}
