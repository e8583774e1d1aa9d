package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("42")
	assert.Equal(t, "Student 42 not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.True(t, errors.Is(err, ErrStudentNotFound))
	assert.False(t, errors.Is(err, ErrMissingStudentID))
}

func TestUnclassifiedKeepsUnderlyingText(t *testing.T) {
	cause := fmt.Errorf("read roster: %w", errors.New("connection reset"))
	err := Unclassified(cause)
	assert.Equal(t, "read roster: connection reset", err.Message)
	assert.Equal(t, "read roster: connection reset", err.Error())
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.ErrorIs(t, err, cause)
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))
	assert.Same(t, ErrConfiguration, FromError(ErrConfiguration))

	wrapped := fmt.Errorf("lookup: %w", ErrMissingStudentID)
	assert.Same(t, ErrMissingStudentID, FromError(wrapped))

	generic := FromError(errors.New("boom"))
	assert.Equal(t, ErrUnclassified.Code, generic.Code)
	assert.Equal(t, "boom", generic.Message)
}
