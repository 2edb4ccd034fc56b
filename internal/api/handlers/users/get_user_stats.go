package users

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func GetUserStatsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Users.GET("/:id/stats", getUserStatsHandler(s))
}

func getUserStatsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		userStats, err := s.Stats.UserStats(ctx, c.Param("id"))
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, userStats)
	}
}
