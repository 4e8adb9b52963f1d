package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewConflict("email already registered")

	mapped := ToDomainError(original)
	require.NotNil(t, mapped)
	assert.Equal(t, http.StatusConflict, mapped.HTTPStatus)
	assert.Equal(t, "email already registered", mapped.Message)
}

func TestToDomainErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewNotFound("product"))

	mapped := ToDomainError(wrapped)
	require.NotNil(t, mapped)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
	assert.Equal(t, "product not found", mapped.Message)
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, mapped)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorUnknownBecomesInternal(t *testing.T) {
	mapped := ToDomainError(errors.New("connection reset"))
	require.NotNil(t, mapped)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.Equal(t, "internal server error", mapped.Message)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}
