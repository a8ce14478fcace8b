package limits

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityErrorMatchesOutOfMemory(t *testing.T) {
	err := Exhausted("events", 50, 51)
	assert.True(t, errors.Is(err, ErrOutOfMemory))
	assert.False(t, errors.Is(err, ErrInvalidArgument))

	var ce *CapacityError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "events", ce.Table)
	assert.Equal(t, 50, ce.Capacity)
	assert.Contains(t, err.Error(), "events")
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	l := Default()
	l.Extents = 0
	err := l.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "limit extents must be positive, got 0: limits: invalid argument", err.Error())
}
