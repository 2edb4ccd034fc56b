package scenarios

import (
	"net/http"

	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/api/middleware"
	"github.com/intervia/go-interview-api/internal/interview/scenario"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/intervia/go-interview-api/internal/util"
	"github.com/labstack/echo/v4"
)

func PostCreateScenarioRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Scenarios.POST("", postCreateScenarioHandler(s), middleware.JWTAuth(s.JWT))
}

func postCreateScenarioHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostCreateScenarioPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		sc, err := scenario.New(body.Name, body.Description, body.Category, body.DifficultyLevels, body.SampleQuestions, s.Clock.Now())
		if err != nil {
			return err
		}
		if err := s.Store.SaveScenario(ctx, sc); err != nil {
			return err
		}

		log.Info().Str("scenario_id", sc.ID).Str("category", sc.Category).Msg("Scenario created")
		return util.ValidateAndReturn(c, http.StatusCreated, types.NewScenarioResponse(sc))
	}
}
