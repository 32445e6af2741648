package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundWrapsSentinel(t *testing.T) {
	err := NotFound("title")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "title: not found", err.Error())
}

func TestValidationErrorCollectsMessages(t *testing.T) {
	v := NewValidation()
	assert.NoError(t, v.OrNil())

	v.Add("score", "too high").Add("score", "not a number").Add("text", "required")

	err := v.OrNil()
	assert.Error(t, err)
	assert.Equal(t, []string{"too high", "not a number"}, v.Fields["score"])
	assert.Equal(t, "validation failed: score: too high; not a number, text: required", err.Error())
}

func TestTypedErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create review: %w", Invalid(NonFieldErrors, "duplicate"))

	var verr *ValidationError
	assert.True(t, errors.As(wrapped, &verr))
	assert.Equal(t, []string{"duplicate"}, verr.Fields[NonFieldErrors])

	var perr *PermissionDeniedError
	assert.True(t, errors.As(fmt.Errorf("x: %w", PermissionDenied("nope")), &perr))
	assert.Equal(t, "nope", perr.Message)
}
