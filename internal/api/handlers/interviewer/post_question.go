package interviewer

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func PostQuestionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Interviewer.POST("/question", postQuestionHandler(s))
}

func postQuestionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostQuestionPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		result, err := s.Orchestrator.NextQuestion(ctx, body.SessionID)
		if err != nil {
			return err
		}

		if result.FromFallback {
			log.Debug().Str("session_id", body.SessionID).Msg("Question served from fallback catalog")
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.QuestionResponse{
			Question:     result.Question,
			ResponseTime: result.ResponseTime,
			FromFallback: result.FromFallback,
		})
	}
}
