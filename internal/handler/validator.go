package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// FormValidator adapts go-playground/validator to echo's Validator interface.
type FormValidator struct {
	validate *validator.Validate
}

func NewFormValidator() *FormValidator {
	return &FormValidator{
		validate: validator.New(),
	}
}

func (v *FormValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
