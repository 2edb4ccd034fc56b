package auth

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func PostLoginRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Auth.POST("/login", postLoginHandler(s))
}

func postLoginHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostLoginPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		u, token, err := s.Auth.Login(ctx, string(body.Email), body.Password)
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.AuthResponse{
			User:  types.NewUserResponse(u),
			Token: token,
		})
	}
}
