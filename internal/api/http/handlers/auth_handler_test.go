package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/pantheon-service/internal/auth"
	"github.com/spec-kit/pantheon-service/internal/config"
	"github.com/spec-kit/pantheon-service/internal/domain"
	"github.com/spec-kit/pantheon-service/internal/repository"
	"github.com/spec-kit/pantheon-service/internal/service"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

type memoryUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memoryUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memoryUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryUserRepo) GetByPseudo(_ context.Context, pseudo string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Pseudo == pseudo {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *memoryUserRepo) Search(_ context.Context, _ repository.UserSearchFilter) ([]domain.User, error) {
	return r.List(context.Background())
}

func (r *memoryUserRepo) UpdateRole(_ context.Context, id int64, role domain.Role) error {
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Role = role
	return nil
}

func (r *memoryUserRepo) UpdateStatus(_ context.Context, id int64, status domain.AccountStatus, bannedUntil *time.Time) error {
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Status = status
	user.BannedUntil = bannedUntil
	return nil
}

type memoryGodRepo struct {
	gods map[int64]*domain.God
}

func (r *memoryGodRepo) Create(_ context.Context, god *domain.God) error {
	r.gods[god.ID] = god
	return nil
}

func (r *memoryGodRepo) Update(_ context.Context, god *domain.God) error {
	if _, ok := r.gods[god.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.gods[god.ID] = god
	return nil
}

func (r *memoryGodRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.gods[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.gods, id)
	return nil
}

func (r *memoryGodRepo) GetByID(_ context.Context, id int64) (*domain.God, error) {
	god, ok := r.gods[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return god, nil
}

func (r *memoryGodRepo) GetByName(_ context.Context, nom string) (*domain.God, error) {
	for _, god := range r.gods {
		if god.Nom == nom {
			return god, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryGodRepo) List(_ context.Context) ([]domain.God, error) {
	out := make([]domain.God, 0, len(r.gods))
	for _, god := range r.gods {
		out = append(out, *god)
	}
	return out, nil
}

func newAuthTestApp(t *testing.T) (*fiber.App, *service.AuthService) {
	t.Helper()
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "handler-test-secret",
			TokenTTLMinutes: 60,
			BcryptCost:      bcrypt.MinCost,
		},
	}
	authService := service.NewAuthService(cfg, service.AuthDependencies{
		UserRepo: &memoryUserRepo{users: map[int64]*domain.User{}, nextID: 1},
		GodRepo:  &memoryGodRepo{gods: map[int64]*domain.God{1: {ID: 1, Nom: "Zeus"}}},
		Presence: service.NewPresenceService(nil, zap.NewNop()),
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			response := fiber.Map{"message": domainErr.Message, "code": domainErr.Code}
			if len(domainErr.Details) > 0 {
				response["details"] = domainErr.Details
			}
			return c.Status(domainErr.HTTPStatus).JSON(response)
		},
	})

	handler := NewAuthHandler(authService, false)
	middleware := auth.NewMiddleware(authService.TokenManager())
	app.Post("/auth/register", handler.Register)
	app.Post("/auth/login", handler.Login)
	app.Post("/auth/logout", middleware.RequireAuth, handler.Logout)
	return app, authService
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any, cookie string) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if cookie != "" {
		req.Header.Set(fiber.HeaderCookie, cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(bodyBytes, &body))
	return resp, body
}

func registerPayload() map[string]any {
	return map[string]any{
		"god_id":   1,
		"pseudo":   "Alito",
		"email":    "alito@example.com",
		"password": "pass1234!",
	}
}

func TestRegisterEndpoint(t *testing.T) {
	app, _ := newAuthTestApp(t)

	resp, body := postJSON(t, app, "/auth/register", registerPayload(), "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Utilisateur créé avec succès", body["message"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alito", user["pseudo"])
	assert.Equal(t, string(domain.RoleUser), user["role"])
	assert.NotContains(t, user, "password_hash")
}

func TestRegisterEndpointValidation(t *testing.T) {
	app, _ := newAuthTestApp(t)

	payload := registerPayload()
	payload["password"] = "short"
	resp, body := postJSON(t, app, "/auth/register", payload, "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Données invalides", body["message"])
	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "password")
}

func TestLoginEndpoint(t *testing.T) {
	app, _ := newAuthTestApp(t)
	postJSON(t, app, "/auth/register", registerPayload(), "")

	resp, body := postJSON(t, app, "/auth/login", map[string]any{
		"pseudo":   "Alito",
		"password": "pass1234!",
	}, "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Connexion réussie", body["message"])
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, float64(1), body["user"])

	setCookie := resp.Header.Get(fiber.HeaderSetCookie)
	assert.True(t, strings.HasPrefix(setCookie, "jwt="))
	assert.Contains(t, setCookie, "HttpOnly")
}

func TestLoginEndpointUnknownUser(t *testing.T) {
	app, _ := newAuthTestApp(t)

	resp, body := postJSON(t, app, "/auth/login", map[string]any{
		"pseudo":   "Inconnu",
		"password": "pass1234!",
	}, "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Utilisateur non trouvé", body["message"])
}

func TestLoginEndpointWrongPassword(t *testing.T) {
	app, _ := newAuthTestApp(t)
	postJSON(t, app, "/auth/register", registerPayload(), "")

	resp, body := postJSON(t, app, "/auth/login", map[string]any{
		"pseudo":   "Alito",
		"password": "wrong-pass1!",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Mot de passe incorrect", body["message"])
}

func TestLogoutEndpoint(t *testing.T) {
	app, _ := newAuthTestApp(t)
	postJSON(t, app, "/auth/register", registerPayload(), "")
	_, loginBody := postJSON(t, app, "/auth/login", map[string]any{
		"pseudo":   "Alito",
		"password": "pass1234!",
	}, "")
	token, _ := loginBody["token"].(string)
	require.NotEmpty(t, token)

	resp, body := postJSON(t, app, "/auth/logout", map[string]any{}, "jwt="+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Déconnexion réussie", body["message"])
	assert.Contains(t, resp.Header.Get(fiber.HeaderSetCookie), "jwt=")

	// Without a cookie the logout route is rejected.
	resp, body = postJSON(t, app, "/auth/logout", map[string]any{}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Access denied. Cookie missing.", body["message"])
}
