package apierror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lookupRequest struct {
	Lastname string `validate:"required,max=5"`
	Query    string `validate:"min=2"`
}

func TestFromValidationError(t *testing.T) {
	err := validator.New().Struct(&lookupRequest{Query: "x"})
	require.Error(t, err)

	apierr := FromValidationError(err)
	require.NotNil(t, apierr)

	serr, ok := apierr.(*StructuredError)
	require.True(t, ok)

	assert.Equal(t, http.StatusBadRequest, serr.Code())
	assert.Equal(t, []string{"This field is required"}, serr.Errors["lastname"])
	assert.Equal(t, []string{"Value is too short, min: 2"}, serr.Errors["query"])
}

func TestFromValidationError_NotValidation(t *testing.T) {
	apierr := FromValidationError(errors.New("boom"))
	require.NotNil(t, apierr)

	assert.Equal(t, InternalServerError, apierr)
	assert.Equal(t, http.StatusInternalServerError, apierr.Code())
}

func TestFromValidationError_InvalidValidationInput(t *testing.T) {
	err := validator.New().Struct("not a struct")
	require.Error(t, err)

	apierr := FromValidationError(err)
	assert.Equal(t, http.StatusInternalServerError, apierr.Code())
}

func TestNewSimple(t *testing.T) {
	apierr := NewSimple(http.StatusBadGateway, "upstream %s failed", "mns")

	assert.Equal(t, http.StatusBadGateway, apierr.Code())
	assert.Equal(t, "upstream mns failed", apierr.Message)
}

func TestStructuredError_Add(t *testing.T) {
	serr := NewStructured(http.StatusBadRequest)
	serr.Add("inn", "Value must contain digits only")

	assert.Equal(t, http.StatusBadRequest, serr.Code())
	assert.Equal(t, []string{"Value must contain digits only"}, serr.Errors["inn"])
}
