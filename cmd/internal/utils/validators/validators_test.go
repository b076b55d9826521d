package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func newValidate() *validator.Validate {
	validate := validator.New()
	Register(validate)
	return validate
}

func TestOnlyDigits(t *testing.T) {
	validate := newValidate()

	assert.NoError(t, validate.Var("1104007890", "required,onlydigits"))
	assert.NoError(t, validate.Var("", "onlydigits"))
	assert.Error(t, validate.Var("", "required,onlydigits"))
	assert.Error(t, validate.Var("11040a7890", "onlydigits"))
}
