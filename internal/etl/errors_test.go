package etl

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	err := NewError(KindQuery, errors.New("invalid object name 'Item'"))

	assert.EqualError(t, err, "error extracting data from database: invalid object name 'Item'")
	assert.True(t, IsKind(err, KindQuery))
	assert.False(t, IsKind(err, KindSchema))
	assert.False(t, IsKind(errors.New("plain"), KindQuery))
}

func TestErrorUnwrapsToCause(t *testing.T) {
	wrapped := errors.Wrap(os.ErrNotExist, "stat items-2024-01-01.csv")
	err := errors.Wrap(NewError(KindWrite, wrapped), "run")

	assert.True(t, IsKind(err, KindWrite))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, os.ErrNotExist, errors.Cause(err))
}

func TestNewErrorNil(t *testing.T) {
	assert.NoError(t, NewError(KindWrite, nil))
	assert.Equal(t, "unknown error kind 42", Kind(42).String())
}
