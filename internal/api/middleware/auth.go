package middleware

import (
	"net/http"
	"strings"

	"github.com/intervia/go-interview-api/internal/auth"
	"github.com/labstack/echo/v4"
)

const (
	// CtxKeyUserID is the echo context key carrying the authenticated
	// user id.
	CtxKeyUserID = "auth_user_id"
	// CtxKeyUserEmail is the echo context key carrying the authenticated
	// user email.
	CtxKeyUserEmail = "auth_user_email"
)

// JWTAuth validates the bearer token and stores the authenticated
// identity on the echo context.
func JWTAuth(jwt *auth.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
			}

			claims, err := jwt.Validate(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token").SetInternal(err)
			}

			c.Set(CtxKeyUserID, claims.Subject)
			c.Set(CtxKeyUserEmail, claims.Email)
			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user id, empty when the
// request is unauthenticated.
func UserIDFromContext(c echo.Context) string {
	if id, ok := c.Get(CtxKeyUserID).(string); ok {
		return id
	}
	return ""
}
