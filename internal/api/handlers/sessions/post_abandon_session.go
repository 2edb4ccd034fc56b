package sessions

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func PostAbandonSessionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Sessions.POST("/:id/abandon", postAbandonSessionHandler(s))
}

func postAbandonSessionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		sess, err := s.Orchestrator.AbandonSession(ctx, c.Param("id"))
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, types.NewSessionResponse(sess))
	}
}
