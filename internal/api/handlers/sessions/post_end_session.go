package sessions

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func PostEndSessionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Sessions.POST("/:id/end", postEndSessionHandler(s))
}

func postEndSessionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		sess, err := s.Orchestrator.EndSession(ctx, c.Param("id"))
		if err != nil {
			return err
		}

		log.Info().
			Str("session_id", sess.ID).
			Float64("duration_minutes", sess.Metrics.SessionDuration).
			Msg("Interview session completed")
		return util.ValidateAndReturn(c, http.StatusOK, types.NewSessionResponse(sess))
	}
}
