package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NotFoundf("offer %s not found", "42"))

	appErr := FromError(wrapped)

	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "offer 42 not found", appErr.Message)
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	cause := errors.New("boom")

	appErr := FromError(cause)

	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.ErrorIs(t, appErr, cause)
}

func TestCloneDoesNotMutateOriginal(t *testing.T) {
	clone := Clone(ErrValidation, "invalid page_size parameter")

	assert.Equal(t, "invalid page_size parameter", clone.Message)
	assert.Equal(t, "validation failed", ErrValidation.Message)
	assert.Nil(t, FromError(nil))
}
