package errs_test

import (
	"errors"
	"testing"

	"deliverus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("address")

		assert.Equal(t, "address", err.ParamName)
		assert.Equal(t, "value is invalid: address", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("too long")
		err := errs.NewValueIsInvalidErrorWithCause("address", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: address (cause: too long)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("restaurantId")

	assert.Equal(t, "restaurantId", err.ParamName)
	assert.Equal(t, "value is required: restaurantId", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("this entity does not belong to you")

	assert.Equal(t, "forbidden: this entity does not belong to you", err.Error())
	assert.Equal(t, errs.ErrForbidden, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("order already started")

	assert.Equal(t, "conflict: order already started", err.Error())
	assert.Equal(t, errs.ErrConflict, err.Unwrap())
}

func TestValidationError(t *testing.T) {
	err := errs.NewValidationError("products", "product not available")

	assert.Equal(t, "products", err.Field)
	assert.Equal(t, "product not available", err.Message)
	assert.Equal(t, "validation failed: products: product not available", err.Error())
	assert.Equal(t, errs.ErrValidationFailed, err.Unwrap())
}

func TestErrorsCanBeClassified(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("address"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("userId"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewForbiddenError("denied"), errs.ErrForbidden)
	require.ErrorIs(t, errs.NewConflictError("already sent"), errs.ErrConflict)
	require.ErrorIs(t, errs.NewValidationError("products", "empty"), errs.ErrValidationFailed)
}

func TestSanitizeRemovesNewlines(t *testing.T) {
	err := errs.NewConflictError("line one\nline two")

	assert.Contains(t, err.Error(), "line one line two")
	assert.NotContains(t, err.Error(), "\n")
}
