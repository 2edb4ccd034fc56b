package feedback

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func GetSessionFeedbackRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Feedback.GET("/session/:sessionID", getSessionFeedbackHandler(s))
}

func getSessionFeedbackHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		fb, err := s.Feedback.GetBySession(ctx, c.Param("sessionID"))
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, types.NewFeedbackResponse(fb))
	}
}
