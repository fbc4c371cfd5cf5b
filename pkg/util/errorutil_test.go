package util

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewForbidden("Accès interdit")
	mapped := ToDomainError(original)

	assert.Equal(t, http.StatusForbidden, mapped.HTTPStatus)
	assert.Equal(t, "Accès interdit", mapped.Message)
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)

	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
	assert.Equal(t, "Ressource non trouvée", mapped.Message)
}

// Arbitrary errors become an opaque 500 so internals never reach clients.
func TestToDomainErrorOpaque(t *testing.T) {
	mapped := ToDomainError(errors.New("pq: connection refused on 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.Equal(t, "Erreur interne", mapped.Message)
	assert.NotContains(t, mapped.Message, "10.0.0.3")
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestNewAccountSuspendedMessages(t *testing.T) {
	until := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	err := ToDomainError(NewAccountSuspended(&until))

	require.Equal(t, http.StatusForbidden, err.HTTPStatus)
	assert.Equal(t, "ACCOUNT_SUSPENDED", err.Code)
	assert.Equal(t, "Compte temporairement suspendu jusqu'à 2025-07-01T10:00:00Z", err.Message)

	open := ToDomainError(NewAccountSuspended(nil))
	assert.Equal(t, "Compte temporairement suspendu", open.Message)
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewInternalError(cause)

	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.ErrorIs(t, err, cause)
}
