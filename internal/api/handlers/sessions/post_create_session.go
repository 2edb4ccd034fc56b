package sessions

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/interview/session"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func PostCreateSessionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Sessions.POST("", postCreateSessionHandler(s))
}

func postCreateSessionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostCreateSessionPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		sess, err := s.Orchestrator.CreateSession(ctx, body.UserID, body.ScenarioID, session.Config{
			DifficultyLevel:   body.DifficultyLevel,
			InterviewerAvatar: body.InterviewerAvatar,
			Environment:       body.Environment,
			CustomDescription: body.CustomDescription,
		})
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusCreated, types.NewSessionResponse(sess))
	}
}
