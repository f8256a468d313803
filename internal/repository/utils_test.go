package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CardHeist_Go/internal/domain"
)

func TestStorageError(t *testing.T) {
	raw := errors.New("connection reset by peer")
	err := StorageError("begin transaction", raw)
	assert.True(t, errors.Is(err, domain.ErrStorageUnavailable))
	assert.True(t, errors.Is(err, raw))
	assert.Contains(t, err.Error(), "begin transaction")

	err = StorageError("insert user", domain.ErrUsernameTaken)
	assert.True(t, errors.Is(err, domain.ErrUsernameTaken))
	assert.False(t, errors.Is(err, domain.ErrStorageUnavailable))
}
