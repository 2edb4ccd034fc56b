package sessions

import (
	"net/http"
	"strconv"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/interview/session"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func GetUserSessionsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Sessions.GET("/user/:userID", getUserSessionsHandler(s))
}

func getUserSessionsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		status := session.StatusCompleted
		if q := c.QueryParam("status"); q != "" {
			status = session.Status(q)
		}

		limit := 10
		if q := c.QueryParam("limit"); q != "" {
			if parsed, err := strconv.Atoi(q); err == nil {
				limit = parsed
			}
		}

		list, err := s.Orchestrator.ListUserSessions(ctx, c.Param("userID"), status, limit)
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, types.NewSessionListResponse(list))
	}
}
