package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"required,email"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{Name: "Priya", Email: "priya@example.com"})
		assert.Empty(t, errs)
	})

	t.Run("missing fields", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{})
		assert.Len(t, errs, 2)
		assert.Equal(t, "required", errs[0].Tag)
	})

	t.Run("bad email", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{Name: "Priya", Email: "not-an-email"})
		assert.Len(t, errs, 1)
		assert.Equal(t, "Email", errs[0].Field)
		assert.Contains(t, errs[0].Message, "valid email")
	})

	t.Run("too short", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{Name: "P", Email: "p@example.com"})
		assert.Len(t, errs, 1)
		assert.Equal(t, "min", errs[0].Tag)
	})
}
