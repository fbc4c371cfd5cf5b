package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/pantheon-service/internal/domain"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

func TestCheckAccountStatusActive(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.NoError(t, CheckAccountStatus(domain.AccountActive, nil, now))

	// An active account keeps access even with a leftover ban date.
	past := now.Add(-time.Hour)
	assert.NoError(t, CheckAccountStatus(domain.AccountActive, &past, now))
}

func TestCheckAccountStatusBannedUntilFuture(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	until := now.Add(48 * time.Hour)

	err := CheckAccountStatus(domain.AccountBanned, &until, now)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, 403, domainErr.HTTPStatus)
	assert.Contains(t, domainErr.Message, "Compte temporairement suspendu")
	assert.Contains(t, domainErr.Message, until.Format(time.RFC3339))
}

func TestCheckAccountStatusBannedIndefinitely(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	err := CheckAccountStatus(domain.AccountBanned, nil, now)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, 403, domainErr.HTTPStatus)
}

func TestCheckAccountStatusBanElapsed(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	until := now.Add(-time.Minute)

	assert.NoError(t, CheckAccountStatus(domain.AccountBanned, &until, now))

	// The exact boundary instant is no longer suspended.
	assert.NoError(t, CheckAccountStatus(domain.AccountBanned, &now, now))
}
