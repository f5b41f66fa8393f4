package shared

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseEntity(t *testing.T) {
	e := NewBaseEntity()

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", e.ID.String())
	assert.Equal(t, time.UTC, e.CreatedAt.Location())
	assert.Nil(t, e.UpdatedAt)
}

func TestBaseEntity_Touch(t *testing.T) {
	e := NewBaseEntity()
	e.CreatedAt = Now().Add(time.Hour)

	e.Touch()

	require.NotNil(t, e.UpdatedAt)
	assert.True(t, e.UpdatedAt.After(e.CreatedAt))
}

func TestNow(t *testing.T) {
	now := Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
}

func TestDomainError(t *testing.T) {
	wrapped := fmt.Errorf("load customer: %w", ErrNotFound)

	assert.Equal(t, "Resource not found", ErrNotFound.Error())
	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.NotErrorIs(t, wrapped, ErrAlreadyExists)

	var de *DomainError
	require.True(t, errors.As(wrapped, &de))
	assert.Equal(t, "NOT_FOUND", de.Code)
}

func TestValidationError(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var verr ValidationError
		assert.False(t, verr.HasErrors())
		assert.NoError(t, verr.Err())
		assert.Equal(t, "validation failed", verr.Error())
	})

	t.Run("nil receiver", func(t *testing.T) {
		var verr *ValidationError
		assert.NoError(t, verr.Err())
	})

	t.Run("keeps order", func(t *testing.T) {
		verr := &ValidationError{}
		verr.Add("firstName", "First name is required.")
		verr.Add("address.postalCode", "Invalid postal code format.")

		require.Error(t, verr.Err())
		assert.Equal(t, []FieldError{
			{Field: "firstName", Message: "First name is required."},
			{Field: "address.postalCode", Message: "Invalid postal code format."},
		}, verr.Errors)
		assert.Equal(t,
			"validation failed: firstName: First name is required.; address.postalCode: Invalid postal code format.",
			verr.Error())
	})
}
