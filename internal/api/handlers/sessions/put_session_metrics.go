package sessions

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/interview/metrics"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func PutSessionMetricsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Sessions.PUT("/:id/metrics", putSessionMetricsHandler(s))
}

func putSessionMetricsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PutSessionMetricsPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		sess, err := s.Orchestrator.UpdateSessionMetrics(ctx, c.Param("id"), metrics.Partial{
			TotalResponses:  body.TotalResponses,
			TotalWords:      body.TotalWords,
			AvgResponseTime: body.AvgResponseTime,
			SessionDuration: body.SessionDuration,
		})
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, types.NewSessionResponse(sess))
	}
}
