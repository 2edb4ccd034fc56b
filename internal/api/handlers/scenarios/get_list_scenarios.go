package scenarios

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func GetListScenariosRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Scenarios.GET("", getListScenariosHandler(s))
}

func getListScenariosHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		category := c.QueryParam("category")
		activeOnly := c.QueryParam("include_inactive") != "true"

		list, err := s.Store.ListScenarios(ctx, category, activeOnly)
		if err != nil {
			return err
		}

		out := make([]*types.ScenarioResponse, 0, len(list))
		for _, sc := range list {
			out = append(out, types.NewScenarioResponse(sc))
		}
		return util.ValidateAndReturn(c, http.StatusOK, out)
	}
}
