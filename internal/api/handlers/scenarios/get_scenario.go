package scenarios

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func GetScenarioRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Scenarios.GET("/:id", getScenarioHandler(s))
}

func getScenarioHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		sc, err := s.Store.GetScenario(ctx, c.Param("id"))
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, types.NewScenarioResponse(sc))
	}
}
