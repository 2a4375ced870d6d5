package validator

import (
	"testing"

	domainerrors "joinme/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

type profileRequest struct {
	FirstName   string `json:"firstName" validate:"required,min=2,max=25"`
	Description string `json:"description" validate:"omitempty,min=25,max=300"`
	Platform    string `json:"platform" validate:"omitempty,oneof=ios android"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&profileRequest{FirstName: "Ada", Platform: "ios"}))
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Validate(&profileRequest{FirstName: "A", Description: "too short", Platform: "web"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Contains(t, err.Error(), "firstName must be at least 2 characters")
		assert.Contains(t, err.Error(), "description must be at least 25 characters")
		assert.Contains(t, err.Error(), "platform must be one of [ios android]")
	})

	t.Run("required", func(t *testing.T) {
		err := v.Validate(&profileRequest{})
		assert.Contains(t, err.Error(), "firstName is required")
	})
}
