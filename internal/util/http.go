package util

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payloads that validate themselves
// after binding. Validation failures wrap interview.ErrValidation so the
// central error handler maps them to 400.
type Validatable interface {
	Validate() error
}

// BindAndValidateBody binds the request body onto v and runs its
// validation. Malformed bodies fail as bad requests before validation.
func BindAndValidateBody(c echo.Context, v Validatable) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindBody(c, v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}
	return v.Validate()
}

// ValidateAndReturn validates the response payload when it knows how and
// writes it as JSON.
func ValidateAndReturn(c echo.Context, status int, v interface{}) error {
	if validatable, ok := v.(Validatable); ok {
		if err := validatable.Validate(); err != nil {
			return err
		}
	}
	return c.JSON(status, v)
}
