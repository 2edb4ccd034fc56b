package users

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func GetUserRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Users.GET("/:id", getUserHandler(s))
}

func getUserHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		u, err := s.Auth.GetProfile(ctx, c.Param("id"))
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, types.NewUserResponse(u))
	}
}
