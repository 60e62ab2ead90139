package api_test

import (
	"net/http"
	"testing"

	"github.com/choukseaaryan/seed-store/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterReturnsProfileWithoutPassword(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"email": "alice@seedstore.com", "password": "secret123", "name": "Alice",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var profile map[string]any
	decode(t, w, &profile)
	assert.Equal(t, "alice@seedstore.com", profile["email"])
	assert.Equal(t, "Alice", profile["name"])
	assert.Equal(t, domain.RoleUser, profile["role"])
	assert.NotContains(t, profile, "password")
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	r, conn := setupRouter(t)

	body := gin.H{"email": "dup@seedstore.com", "password": "secret123", "name": "First"}
	w := doJSON(t, r, http.MethodPost, "/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code)

	// Second registration must be rejected before any row is written
	w = doJSON(t, r, http.MethodPost, "/auth/register", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var count int64
	require.NoError(t, conn.Model(&domain.User{}).Where("email = ?", "dup@seedstore.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoginSetsCookieAndOmitsToken(t *testing.T) {
	r, _ := setupRouter(t)
	doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"email": "bob@seedstore.com", "password": "secret123", "name": "Bob",
	})

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email": "bob@seedstore.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "access_token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "login must set the access_token cookie")
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.NotEmpty(t, cookie.Value)

	// The token lives purely in the cookie, never in the body
	var body map[string]any
	decode(t, w, &body)
	assert.Contains(t, body, "user")
	assert.NotContains(t, body, "token")
	assert.NotContains(t, w.Body.String(), cookie.Value)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r, _ := setupRouter(t)
	doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"email": "carol@seedstore.com", "password": "secret123", "name": "Carol",
	})

	unknown := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email": "nobody@seedstore.com", "password": "secret123",
	})
	wrongPass := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email": "carol@seedstore.com", "password": "wrongpass",
	})

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	// No user-enumeration signal in the error message
	assert.Equal(t, unknown.Body.String(), wrongPass.Body.String())
}

func TestMeRequiresValidSession(t *testing.T) {
	r, conn := setupRouter(t)

	// No cookie at all
	w := doJSON(t, r, http.MethodGet, "/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage cookie
	w = doJSON(t, r, http.MethodGet, "/auth/me", nil, &http.Cookie{Name: "access_token", Value: "not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid session
	cookie := sessionCookie(t, r, "dave@seedstore.com")
	w = doJSON(t, r, http.MethodGet, "/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var profile map[string]any
	decode(t, w, &profile)
	assert.Equal(t, "dave@seedstore.com", profile["email"])

	// A deleted user fails even while holding a valid token
	require.NoError(t, conn.Where("email = ?", "dave@seedstore.com").Delete(&domain.User{}).Error)
	w = doJSON(t, r, http.MethodGet, "/auth/me", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _ := setupRouter(t)
	cookie := sessionCookie(t, r, "eve@seedstore.com")

	w := doJSON(t, r, http.MethodPost, "/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var cleared *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "access_token" {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}
