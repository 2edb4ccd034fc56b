package httperrors

import (
	"net/http"

	"github.com/go-openapi/swag"
)

// HTTPError is the JSON error envelope returned by every failing
// endpoint.
type HTTPError struct {
	Code   *int64  `json:"status"`
	Type   *string `json:"type"`
	Title  *string `json:"title"`
	Detail string  `json:"detail,omitempty"`

	Internal error `json:"-"`
}

// NewHTTPError creates an error envelope for the given status code.
func NewHTTPError(code int, errType, title string) *HTTPError {
	return &HTTPError{
		Code:  swag.Int64(int64(code)),
		Type:  swag.String(errType),
		Title: swag.String(title),
	}
}

// NewHTTPErrorWithDetail creates an error envelope carrying an extra
// human-readable detail string.
func NewHTTPErrorWithDetail(code int, errType, title, detail string) *HTTPError {
	e := NewHTTPError(code, errType, title)
	e.Detail = detail
	return e
}

func (e *HTTPError) Error() string {
	if e.Title == nil {
		return http.StatusText(int(swag.Int64Value(e.Code)))
	}
	return *e.Title
}
