package handlers_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, env *testEnv, path, body string) *testResponse {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	return &testResponse{resp.StatusCode, decodeBody(t, resp)}
}

type testResponse struct {
	status int
	body   map[string]interface{}
}

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv(t)

	res := postJSON(t, env, "/register", `{"name":"Al","email":"a@x.com","password":"p"}`)
	require.Equal(t, fiber.StatusCreated, res.status)
	require.Contains(t, res.body, "token")
	require.Contains(t, res.body, "user")

	// the returned token must decode back to the registered identity
	token := res.body["token"].(string)
	_, email, err := env.jwtService.GetUserDetailByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestRegisterMissingFields(t *testing.T) {
	env := newTestEnv(t)

	res := postJSON(t, env, "/register", `{"name":"Al","email":"a@x.com"}`)
	assert.Equal(t, fiber.StatusBadRequest, res.status)
}

func TestRegisterDuplicateEmailEndpoint(t *testing.T) {
	env := newTestEnv(t)

	first := postJSON(t, env, "/register", `{"name":"Al","email":"a@x.com","password":"p"}`)
	require.Equal(t, fiber.StatusCreated, first.status)

	second := postJSON(t, env, "/register", `{"name":"Bo","email":"a@x.com","password":"q"}`)
	assert.Equal(t, fiber.StatusBadRequest, second.status)
	assert.Equal(t, "email already exists", second.body["error"])
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)

	postJSON(t, env, "/register", `{"name":"Al","email":"a@x.com","password":"secret"}`)

	res := postJSON(t, env, "/login", `{"email":"a@x.com","password":"secret"}`)
	require.Equal(t, fiber.StatusOK, res.status)
	assert.Contains(t, res.body, "token")
}

func TestLoginSetsCookie(t *testing.T) {
	env := newTestEnv(t)

	postJSON(t, env, "/register", `{"name":"Al","email":"a@x.com","password":"secret"}`)

	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"a@x.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var found bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "token" && cookie.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "login must set the token cookie")
}

// Wrong password and unknown email must yield byte-identical error bodies.
func TestLoginGenericFailureMessage(t *testing.T) {
	env := newTestEnv(t)

	postJSON(t, env, "/register", `{"name":"Al","email":"a@x.com","password":"secret"}`)

	wrongPassword := postJSON(t, env, "/login", `{"email":"a@x.com","password":"nope"}`)
	unknownEmail := postJSON(t, env, "/login", `{"email":"nobody@x.com","password":"secret"}`)

	assert.Equal(t, fiber.StatusBadRequest, wrongPassword.status)
	assert.Equal(t, fiber.StatusBadRequest, unknownEmail.status)
	assert.Equal(t, wrongPassword.body, unknownEmail.body)
}

func TestGetUsersRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("GET", "/users", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetUsersWithToken(t *testing.T) {
	env := newTestEnv(t)

	res := postJSON(t, env, "/register", `{"name":"Al","email":"a@x.com","password":"p"}`)
	token := res.body["token"].(string)

	req := httptest.NewRequest("GET", "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	users := body["users"].([]interface{})
	require.Len(t, users, 1)

	// the password hash must never be serialized
	entry := users[0].(map[string]interface{})
	assert.NotContains(t, entry, "password")
}
