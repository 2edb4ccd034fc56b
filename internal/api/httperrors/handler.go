package httperrors

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Error type identifiers carried in the envelope's "type" field.
const (
	TypeGeneric      = "generic"
	TypeValidation   = "validation_error"
	TypeNotFound     = "not_found"
	TypeConflict     = "conflict"
	TypeInvalidState = "invalid_state"
	TypeUnauthorized = "unauthorized"
)

// HTTPErrorHandlerWithConfig holds the error handler settings.
type HTTPErrorHandlerWithConfig struct {
	HideInternalServerErrorDetails bool
}

// HTTPErrorHandler maps domain sentinel errors and echo errors onto the
// JSON error envelope. Unclassified errors become opaque 500s.
func HTTPErrorHandler(config HTTPErrorHandlerWithConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *HTTPError

		switch {
		case errors.As(err, &httpErr):
			// already shaped
		case errors.Is(err, interview.ErrValidation):
			httpErr = NewHTTPErrorWithDetail(http.StatusBadRequest, TypeValidation, http.StatusText(http.StatusBadRequest), err.Error())
		case errors.Is(err, interview.ErrNotFound):
			httpErr = NewHTTPErrorWithDetail(http.StatusNotFound, TypeNotFound, http.StatusText(http.StatusNotFound), err.Error())
		case errors.Is(err, interview.ErrInvalidState):
			httpErr = NewHTTPErrorWithDetail(http.StatusConflict, TypeInvalidState, http.StatusText(http.StatusConflict), err.Error())
		case errors.Is(err, interview.ErrConflict):
			httpErr = NewHTTPErrorWithDetail(http.StatusConflict, TypeConflict, http.StatusText(http.StatusConflict), err.Error())
		default:
			var echoErr *echo.HTTPError
			if errors.As(err, &echoErr) {
				msg := http.StatusText(echoErr.Code)
				if s, ok := echoErr.Message.(string); ok {
					msg = s
				}
				httpErr = NewHTTPError(echoErr.Code, TypeGeneric, msg)
				httpErr.Internal = echoErr.Internal
			} else {
				httpErr = NewHTTPError(http.StatusInternalServerError, TypeGeneric, http.StatusText(http.StatusInternalServerError))
				if !config.HideInternalServerErrorDetails {
					httpErr.Detail = err.Error()
				}
			}
		}

		code := int(swag.Int64Value(httpErr.Code))
		if code >= http.StatusInternalServerError {
			log.Error().Err(err).Int("status", code).Str("path", c.Path()).Msg("Request failed")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, httpErr)
		}
		if writeErr != nil {
			log.Error().Err(writeErr).Msg("Failed to write error response")
		}
	}
}
