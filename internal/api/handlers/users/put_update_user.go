package users

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/auth"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func PutUpdateUserRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Users.PUT("/:id", putUpdateUserHandler(s))
}

func putUpdateUserHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PutUpdateUserPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		u, err := s.Auth.UpdateProfile(ctx, c.Param("id"), auth.ProfileUpdate{
			FirstName:           body.FirstName,
			LastName:            body.LastName,
			PreferredDifficulty: body.PreferredDifficulty,
			AnxietyLevel:        body.AnxietyLevel,
			Password:            body.Password,
		})
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, types.NewUserResponse(u))
	}
}
