package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/pantheon-service/internal/domain"
)

func newTestUserService(users *fakeUserRepo) *UserService {
	return NewUserService(users, NewPresenceService(nil, zap.NewNop()))
}

func seedUser(t *testing.T, users *fakeUserRepo, pseudo string) *domain.User {
	t.Helper()
	user := &domain.User{
		GodID:        1,
		Pseudo:       pseudo,
		Email:        pseudo + "@example.com",
		Role:         domain.RoleUser,
		Status:       domain.AccountActive,
		Subscription: domain.NotSubscribed,
		PasswordHash: "x",
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestUserGetByIDNotFound(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo())

	_, err := svc.GetByID(context.Background(), 99)
	domainErr := asDomainError(t, err)
	assert.Equal(t, 404, domainErr.HTTPStatus)
	assert.Equal(t, "Utilisateur non trouvé", domainErr.Message)
}

func TestUserUpdateProfilePartial(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestUserService(users)
	seeded := seedUser(t, users, "Alito")

	pseudo := "Alito2"
	updated, err := svc.UpdateProfile(context.Background(), seeded.ID, UserUpdateInput{Pseudo: &pseudo})
	require.NoError(t, err)

	assert.Equal(t, "Alito2", updated.Pseudo)
	assert.Equal(t, seeded.Email, updated.Email)
}

func TestUserChangeRole(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestUserService(users)
	seeded := seedUser(t, users, "Alito")

	updated, err := svc.ChangeRole(context.Background(), seeded.ID, domain.RoleModerator)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleModerator, updated.Role)
}

func TestUserChangeRoleInvalid(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestUserService(users)
	seeded := seedUser(t, users, "Alito")

	_, err := svc.ChangeRole(context.Background(), seeded.ID, domain.Role("Empereur"))
	domainErr := asDomainError(t, err)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Equal(t, "Rôle invalide", domainErr.Message)
}

func TestUserChangeRoleUnknownUser(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo())

	_, err := svc.ChangeRole(context.Background(), 99, domain.RoleAdmin)
	domainErr := asDomainError(t, err)
	assert.Equal(t, 404, domainErr.HTTPStatus)
}

func TestUserToggleStatusBanAndUnban(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestUserService(users)
	seeded := seedUser(t, users, "Alito")

	until := time.Now().Add(72 * time.Hour)
	banned, err := svc.ToggleStatus(context.Background(), seeded.ID, &until)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountBanned, banned.Status)
	require.NotNil(t, banned.BannedUntil)
	assert.Equal(t, until, *banned.BannedUntil)

	unbanned, err := svc.ToggleStatus(context.Background(), seeded.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountActive, unbanned.Status)
	assert.Nil(t, unbanned.BannedUntil)
}
