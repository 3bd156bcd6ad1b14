package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"hillcrest-academy/app/models"
)

func TestStruct(t *testing.T) {
	type request struct {
		Email string `validate:"required,email"`
		Year  int    `validate:"min=0"`
	}

	assert.NoError(t, Struct(request{Email: "head@hillcrest.sch.uk", Year: 7}))

	err := Struct(request{Email: "not-an-email", Year: 7})
	var validationErr *models.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "Email", validationErr.Field)
}
