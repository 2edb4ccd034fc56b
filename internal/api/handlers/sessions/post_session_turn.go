package sessions

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/interview/ledger"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func PostSessionTurnRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Sessions.POST("/:id/turns", postSessionTurnHandler(s))
}

func postSessionTurnHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostTurnPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		sess, err := s.Orchestrator.RecordTurn(ctx, c.Param("id"), ledger.Speaker(body.Speaker), body.Message, body.ResponseTime)
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, types.NewSessionResponse(sess))
	}
}
