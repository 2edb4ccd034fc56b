package feedback

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func PostCreateFeedbackRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Feedback.POST("", postCreateFeedbackHandler(s))
}

func postCreateFeedbackHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostFeedbackPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		sess, err := s.Orchestrator.GetSession(ctx, body.SessionID)
		if err != nil {
			return err
		}

		fb, err := s.Feedback.Create(ctx, sess)
		if err != nil {
			return err
		}

		log.Info().
			Str("session_id", sess.ID).
			Float64("overall_score", fb.Scores.Overall).
			Msg("Feedback generated")
		return util.ValidateAndReturn(c, http.StatusCreated, types.NewFeedbackResponse(fb))
	}
}
