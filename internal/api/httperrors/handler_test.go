package httperrors_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/intervia/go-interview-api/internal/api/httperrors"
	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error, hideInternals bool) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	c := e.NewContext(req, rec)

	handler := httperrors.HTTPErrorHandler(httperrors.HTTPErrorHandlerWithConfig{
		HideInternalServerErrorDetails: hideInternals,
	})
	handler(err, c)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestValidationErrorMapsToBadRequest(t *testing.T) {
	err := fmt.Errorf("%w: message is required", interview.ErrValidation)
	rec, body := handleError(t, err, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, httperrors.TypeValidation, body["type"])
	assert.Contains(t, body["detail"], "message is required")
}

func TestNotFoundErrorMapsTo404(t *testing.T) {
	err := errors.Wrap(interview.ErrNotFound, "session abc")
	rec, body := handleError(t, err, false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, httperrors.TypeNotFound, body["type"])
}

func TestInvalidStateMapsToConflict(t *testing.T) {
	err := fmt.Errorf("%w: session is not active", interview.ErrInvalidState)
	rec, body := handleError(t, err, false)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, httperrors.TypeInvalidState, body["type"])
}

func TestConflictMapsToConflict(t *testing.T) {
	err := fmt.Errorf("%w: feedback already exists for this session", interview.ErrConflict)
	rec, body := handleError(t, err, false)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, httperrors.TypeConflict, body["type"])
}

func TestEchoHTTPErrorPassesThrough(t *testing.T) {
	err := echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	rec, body := handleError(t, err, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "missing authorization header", body["title"])
}

func TestUnknownErrorBecomesOpaque500(t *testing.T) {
	err := errors.New("pq: connection refused")
	rec, body := handleError(t, err, true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, httperrors.TypeGeneric, body["type"])
	_, hasDetail := body["detail"]
	assert.False(t, hasDetail)
}

func TestInternalDetailsShownInDevelopment(t *testing.T) {
	err := errors.New("pq: connection refused")
	rec, body := handleError(t, err, false)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, body["detail"], "connection refused")
}
