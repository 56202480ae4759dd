package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Type(t *testing.T) {
	assert.Equal(t, TypeClient, NotFound("missing").Type())
	assert.Equal(t, TypeClient, Unauthorized("no").Type())
	assert.Equal(t, TypeValidation, Validation("bad", "name is required").Type())
	assert.Equal(t, TypeServer, Internal(errors.New("boom")).Type())
}

func TestAppError_UnwrapAndAs(t *testing.T) {
	cause := errors.New("db down")
	err := fmt.Errorf("loading projects: %w", Internal(cause))

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, appErr.Error(), "db down")

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
