package scenarios

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func GetCategoriesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Scenarios.GET("/categories", getCategoriesHandler(s))
}

func getCategoriesHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		categories, err := s.Store.ListCategories(ctx)
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.CategoriesResponse{Categories: categories})
	}
}
