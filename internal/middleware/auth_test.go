package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bollybuzz-backend/internal/models"
	"bollybuzz-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuth accepts exactly one token string.
type fakeAuth struct {
	token  string
	claims *services.Claims
}

func (a *fakeAuth) ParseToken(token string) (*services.Claims, error) {
	if token == a.token {
		return a.claims, nil
	}
	return nil, errors.New("unauthorized")
}

func (a *fakeAuth) Signup(context.Context, string, string, string) (*models.User, error) {
	return nil, nil
}

func (a *fakeAuth) Signin(context.Context, string, string) (*models.User, string, error) {
	return nil, "", nil
}

func (a *fakeAuth) RequestPasswordReset(context.Context, string) error { return nil }

func (a *fakeAuth) ConfirmPasswordReset(context.Context, string, string) error { return nil }

func newTestApp(auth services.AuthService) *fiber.App {
	app := fiber.New()
	app.Get("/protected", RequireAuth(auth), func(c *fiber.Ctx) error {
		return c.SendString(CurrentUser(c).Email)
	})
	app.Get("/open", OptionalAuth(auth), func(c *fiber.Ctx) error {
		if claims := CurrentUser(c); claims != nil {
			return c.SendString(claims.Email)
		}
		return c.SendString("anonymous")
	})
	return app
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	app := newTestApp(&fakeAuth{token: "good"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	app := newTestApp(&fakeAuth{token: "good"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthAcceptsBearerHeader(t *testing.T) {
	auth := &fakeAuth{token: "good", claims: &services.Claims{UserID: 1, Email: "asha@example.com"}}
	app := newTestApp(auth)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAuthAcceptsCookie(t *testing.T) {
	auth := &fakeAuth{token: "good", claims: &services.Claims{UserID: 1, Email: "asha@example.com"}}
	app := newTestApp(auth)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "good"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOptionalAuthPassesAnonymous(t *testing.T) {
	app := newTestApp(&fakeAuth{token: "good"})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOptionalAuthIgnoresBadToken(t *testing.T) {
	app := newTestApp(&fakeAuth{token: "good"})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer bad")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
