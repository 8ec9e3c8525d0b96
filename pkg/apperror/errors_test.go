package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOfWrappedError(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("doctor"))

	assert.Equal(t, CodeNotFound, CodeOf(err))
	assert.True(t, IsNotFound(err))
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
}

func TestValidationFields(t *testing.T) {
	err := ValidationField("version", "version is required")

	assert.True(t, IsValidation(err))
	assert.Equal(t, map[string]string{"version": "version is required"}, FieldsOf(err))
}

func TestFieldsOfNonValidation(t *testing.T) {
	assert.Nil(t, FieldsOf(errors.New("boom")))
}

func TestConflictUnwraps(t *testing.T) {
	cause := errors.New("row changed")
	err := Conflict("doctor", cause)

	assert.True(t, IsConflict(err))
	assert.ErrorIs(t, err, cause)
}

func TestReferencedMessageNamesResource(t *testing.T) {
	err := Referenced("patient", errors.New("fk"))

	assert.True(t, IsReferenced(err))
	assert.Contains(t, err.Error(), "patient")
}
