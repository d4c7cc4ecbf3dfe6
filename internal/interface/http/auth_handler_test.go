package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerBody(email string) map[string]any {
	return map[string]any{
		"name":     "alice",
		"email":    email,
		"password": "secret123",
	}
}

func TestRegister(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodPost, "/api/auth/register", "", registerBody("alice@example.com"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user registered", decodeMessage(t, w))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodPost, "/api/auth/register", "", registerBody("alice@example.com"))
	require.Equal(t, http.StatusOK, w.Code)

	w = app.request(t, http.MethodPost, "/api/auth/register", "", registerBody("alice@example.com"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email already registered", decodeMessage(t, w))

	// First record unaffected: original credentials still log in
	w = app.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "alice@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegister_InvalidPayload(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing email", map[string]any{"name": "x", "password": "secret123"}},
		{"bad email", map[string]any{"name": "x", "email": "nope", "password": "secret123"}},
		{"short password", map[string]any{"name": "x", "email": "x@example.com", "password": "short"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := app.request(t, http.MethodPost, "/api/auth/register", "", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusOK,
		app.request(t, http.MethodPost, "/api/auth/register", "", registerBody("alice@example.com")).Code)

	w := app.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "alice@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, false, data["is_admin"])

	claims, err := app.jwt.Parse(token)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin)
}

func TestLogin_UniformInvalidCredentials(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusOK,
		app.request(t, http.MethodPost, "/api/auth/register", "", registerBody("alice@example.com")).Code)

	wrongPwd := app.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "alice@example.com", "password": "wrongpassword",
	})
	unknown := app.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "ghost@example.com", "password": "secret123",
	})

	// Same status and same message for both failure modes
	assert.Equal(t, http.StatusBadRequest, wrongPwd.Code)
	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, decodeMessage(t, wrongPwd), decodeMessage(t, unknown))
}

func TestMe(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusOK,
		app.request(t, http.MethodPost, "/api/auth/register", "", registerBody("alice@example.com")).Code)

	login := app.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "alice@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, login.Code)
	token, _ := decodeData(t, login)["token"].(string)

	w := app.request(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "alice@example.com", data["email"])
	// Password hash never serialized
	assert.NotContains(t, w.Body.String(), "password")
}
