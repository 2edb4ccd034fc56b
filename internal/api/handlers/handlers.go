package handlers

import (
	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/api/handlers/auth"
	"github.com/intervia/go-interview-api/internal/api/handlers/common"
	"github.com/intervia/go-interview-api/internal/api/handlers/feedback"
	"github.com/intervia/go-interview-api/internal/api/handlers/interviewer"
	"github.com/intervia/go-interview-api/internal/api/handlers/scenarios"
	"github.com/intervia/go-interview-api/internal/api/handlers/sessions"
	"github.com/intervia/go-interview-api/internal/api/handlers/users"
	"github.com/labstack/echo/v4"
)

// AttachAllRoutes registers every route on the server's router.
func AttachAllRoutes(s *api.Server) {
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),

		auth.PostRegisterRoute(s),
		auth.PostLoginRoute(s),

		users.GetUserRoute(s),
		users.PutUpdateUserRoute(s),
		users.GetUserStatsRoute(s),

		scenarios.GetListScenariosRoute(s),
		scenarios.GetCategoriesRoute(s),
		scenarios.GetScenarioRoute(s),
		scenarios.PostCreateScenarioRoute(s),

		sessions.PostCreateSessionRoute(s),
		sessions.GetSessionRoute(s),
		sessions.GetUserSessionsRoute(s),
		sessions.PostSessionTurnRoute(s),
		sessions.PostEndSessionRoute(s),
		sessions.PostAbandonSessionRoute(s),
		sessions.PutSessionMetricsRoute(s),

		interviewer.PostQuestionRoute(s),
		interviewer.PostResponseRoute(s),

		feedback.PostCreateFeedbackRoute(s),
		feedback.GetFeedbackRoute(s),
		feedback.GetSessionFeedbackRoute(s),
	}
}
