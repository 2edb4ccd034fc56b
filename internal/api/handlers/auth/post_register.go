package auth

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func PostRegisterRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Auth.POST("/register", postRegisterHandler(s))
}

func postRegisterHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostRegisterPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		u, err := s.Auth.Register(ctx, string(body.Email), body.Password, body.FirstName, body.LastName)
		if err != nil {
			return err
		}

		token, err := s.JWT.Generate(u.ID, u.Email)
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusCreated, &types.AuthResponse{
			User:  types.NewUserResponse(u),
			Token: token,
		})
	}
}
