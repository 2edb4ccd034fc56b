package router

import (
	"github.com/intervia/go-interview-api/internal/api"
	"github.com/intervia/go-interview-api/internal/api/handlers"
	"github.com/intervia/go-interview-api/internal/api/httperrors"
	"github.com/intervia/go-interview-api/internal/api/middleware"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the echo instance and attaches all routes onto the server.
func Init(s *api.Server) {
	s.Echo = echo.New()
	s.Echo.Debug = false
	s.Echo.HideBanner = true

	s.Echo.HTTPErrorHandler = httperrors.HTTPErrorHandler(httperrors.HTTPErrorHandlerWithConfig{
		HideInternalServerErrorDetails: s.Config.Env != "development",
	})

	s.Echo.Use(echoMiddleware.Recover())
	s.Echo.Use(echoMiddleware.RequestID())
	s.Echo.Use(echoMiddleware.CORS())
	s.Echo.Use(middleware.Logger())

	auth := middleware.JWTAuth(s.JWT)

	s.Router = &api.Router{
		Routes: nil, // will be populated by handlers.AttachAllRoutes(s)

		Root:             s.Echo.Group(""),
		Management:       s.Echo.Group("/-"),
		APIV1Auth:        s.Echo.Group("/api/v1/auth"),
		APIV1Scenarios:   s.Echo.Group("/api/v1/scenarios"),
		APIV1Users:       s.Echo.Group("/api/v1/users", auth),
		APIV1Sessions:    s.Echo.Group("/api/v1/sessions", auth),
		APIV1Interviewer: s.Echo.Group("/api/v1/interviewer", auth),
		APIV1Feedback:    s.Echo.Group("/api/v1/feedback", auth),
	}

	s.Router.Management.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handlers.AttachAllRoutes(s)
}
