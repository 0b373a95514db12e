package validate

import (
	"net/http"

	"github.com/Astemirdum/lending-service/pkg/isbn"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	// checksum identical to the one used for seeding, keeps both sides honest
	_ = v.RegisterValidation("isbn13", func(fl validator.FieldLevel) bool {
		return isbn.Validate(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
