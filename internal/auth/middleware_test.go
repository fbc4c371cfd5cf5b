package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/pantheon-service/internal/domain"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

func newTestApp(tm *TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"message": domainErr.Message,
				"code":    domainErr.Code,
			})
		},
	})

	middleware := NewMiddleware(tm)
	app.Get("/me", middleware.RequireAuth, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewInternalError(nil)
		}
		return c.JSON(fiber.Map{"id": principal.UserID, "role": principal.Role})
	})
	app.Get("/admin", middleware.RequireAuth, RequireAdmin(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	// Deliberately misconfigured: the role gate runs without RequireAuth.
	app.Get("/orphan", RequireAdmin(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, cookieHeader string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookieHeader != "" {
		req.Header.Set(fiber.HeaderCookie, cookieHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp, body
}

func TestRequireAuthMissingCookieHeader(t *testing.T) {
	app := newTestApp(NewTokenManager(testSecret, time.Hour))

	resp, body := doRequest(t, app, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Access denied. Cookie missing.", body["message"])
}

func TestRequireAuthMissingToken(t *testing.T) {
	app := newTestApp(NewTokenManager(testSecret, time.Hour))

	resp, body := doRequest(t, app, "/me", "theme=dark; lang=fr")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Access denied. Token missing.", body["message"])
}

func TestRequireAuthInvalidToken(t *testing.T) {
	app := newTestApp(NewTokenManager(testSecret, time.Hour))

	resp, body := doRequest(t, app, "/me", "jwt=not-a-token")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Token invalide ou expiré", body["message"])
	assert.Equal(t, "TOKEN_INVALID", body["code"])
}

func TestRequireAuthExpiredToken(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	app := newTestApp(tm)

	expired := signClaims(t, testSecret, &Claims{
		UserID: 9,
		Role:   domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	resp, body := doRequest(t, app, "/me", "jwt="+expired)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Token invalide ou expiré", body["message"])
	assert.Equal(t, "TOKEN_EXPIRED", body["code"])
}

func TestRequireAuthValidToken(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	app := newTestApp(tm)

	token, _, err := tm.Issue(9, domain.RoleUser)
	require.NoError(t, err)

	resp, body := doRequest(t, app, "/me", "theme=dark; jwt="+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(9), body["id"])
	assert.Equal(t, string(domain.RoleUser), body["role"])
}

func TestRequireAdminForbidsRegularUser(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	app := newTestApp(tm)

	token, _, err := tm.Issue(9, domain.RoleUser)
	require.NoError(t, err)

	resp, body := doRequest(t, app, "/admin", "jwt="+token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Accès interdit, vous devez être admin pour accéder à cette ressource", body["message"])
}

func TestRequireAdminForbidsModerator(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	app := newTestApp(tm)

	token, _, err := tm.Issue(9, domain.RoleModerator)
	require.NoError(t, err)

	resp, _ := doRequest(t, app, "/admin", "jwt="+token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	app := newTestApp(tm)

	token, _, err := tm.Issue(1, domain.RoleAdmin)
	require.NoError(t, err)

	resp, body := doRequest(t, app, "/admin", "jwt="+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
}

// A role gate with no principal in context fails closed as unauthenticated.
func TestRequireRoleWithoutPrincipal(t *testing.T) {
	app := newTestApp(NewTokenManager(testSecret, time.Hour))

	resp, _ := doRequest(t, app, "/orphan", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
