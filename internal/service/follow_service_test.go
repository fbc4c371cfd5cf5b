package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/pantheon-service/internal/domain"
)

type followKey struct {
	userID     int64
	followeeID int64
}

type fakeFollowRepo struct {
	follows map[followKey]*domain.Follow
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{follows: map[followKey]*domain.Follow{}}
}

func (r *fakeFollowRepo) Create(_ context.Context, follow *domain.Follow) error {
	clone := *follow
	r.follows[followKey{follow.UserID, follow.FolloweeID}] = &clone
	return nil
}

func (r *fakeFollowRepo) Delete(_ context.Context, userID, followeeID int64) error {
	key := followKey{userID, followeeID}
	if _, ok := r.follows[key]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.follows, key)
	return nil
}

func (r *fakeFollowRepo) Get(_ context.Context, userID, followeeID int64) (*domain.Follow, error) {
	follow, ok := r.follows[followKey{userID, followeeID}]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return follow, nil
}

func (r *fakeFollowRepo) ListFollowing(_ context.Context, userID int64) ([]domain.Follow, error) {
	out := []domain.Follow{}
	for _, follow := range r.follows {
		if follow.UserID == userID {
			out = append(out, *follow)
		}
	}
	return out, nil
}

func (r *fakeFollowRepo) ListFollowers(_ context.Context, userID int64) ([]domain.Follow, error) {
	out := []domain.Follow{}
	for _, follow := range r.follows {
		if follow.FolloweeID == userID {
			out = append(out, *follow)
		}
	}
	return out, nil
}

func newTestFollowService(t *testing.T) (*FollowService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	seedUser(t, users, "Alito")
	seedUser(t, users, "Beren")
	return NewFollowService(newFakeFollowRepo(), users, nil), users
}

func TestFollowSelf(t *testing.T) {
	svc, _ := newTestFollowService(t)

	_, err := svc.Follow(context.Background(), 1, 1)
	domainErr := asDomainError(t, err)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Equal(t, "Vous ne pouvez pas vous abonner à vous-même.", domainErr.Message)
}

func TestFollowUnknownTarget(t *testing.T) {
	svc, _ := newTestFollowService(t)

	_, err := svc.Follow(context.Background(), 1, 99)
	domainErr := asDomainError(t, err)
	assert.Equal(t, "L'utilisateur spécifié n'existe pas.", domainErr.Message)
}

func TestFollowDuplicate(t *testing.T) {
	svc, _ := newTestFollowService(t)

	_, err := svc.Follow(context.Background(), 1, 2)
	require.NoError(t, err)

	_, err = svc.Follow(context.Background(), 1, 2)
	domainErr := asDomainError(t, err)
	assert.Equal(t, "Déjà abonné", domainErr.Message)
}

func TestFollowAndUnfollow(t *testing.T) {
	svc, _ := newTestFollowService(t)

	follow, err := svc.Follow(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), follow.UserID)
	assert.Equal(t, int64(2), follow.FolloweeID)

	following, err := svc.IsFollowing(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, following)

	// The relation is directional.
	reverse, err := svc.IsFollowing(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.False(t, reverse)

	require.NoError(t, svc.Unfollow(context.Background(), 1, 2))

	following, err = svc.IsFollowing(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestUnfollowMissingRelation(t *testing.T) {
	svc, _ := newTestFollowService(t)

	err := svc.Unfollow(context.Background(), 1, 2)
	domainErr := asDomainError(t, err)
	assert.Equal(t, 404, domainErr.HTTPStatus)
	assert.Equal(t, "Pas d'abonnement trouvé.", domainErr.Message)
}
