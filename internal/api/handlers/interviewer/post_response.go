package interviewer

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/interview/orchestrator"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func PostResponseRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Interviewer.POST("/response", postResponseHandler(s))
}

func postResponseHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostResponsePayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		sess, err := s.Orchestrator.SubmitResponse(ctx, body.SessionID, body.Message, body.ResponseTime)
		if err != nil {
			return err
		}

		quality := orchestrator.AnalyzeResponseQuality(body.Message)

		return util.ValidateAndReturn(c, http.StatusOK, &types.SubmitResponseResponse{
			Metrics: sess.Metrics,
			Quality: types.ResponseQualityResponse{
				WordCount:    quality.WordCount,
				QualityScore: quality.QualityScore,
			},
		})
	}
}
