package api

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/intervia/go-interview-api/internal/auth"
	"github.com/intervia/go-interview-api/internal/config"
	"github.com/intervia/go-interview-api/internal/infra/storage"
	"github.com/intervia/go-interview-api/internal/interview/feedback"
	"github.com/intervia/go-interview-api/internal/interview/orchestrator"
	"github.com/intervia/go-interview-api/internal/interview/stats"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	// Import postgres driver for database/sql package
	_ "github.com/lib/pq"
)

type Router struct {
	Routes           []*echo.Route
	Root             *echo.Group
	Management       *echo.Group
	APIV1Auth        *echo.Group
	APIV1Users       *echo.Group
	APIV1Scenarios   *echo.Group
	APIV1Sessions    *echo.Group
	APIV1Interviewer *echo.Group
	APIV1Feedback    *echo.Group
}

// Server is the central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of
// the components in the right order. To add a new component, 3 steps are
// required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be
// initialized after the InitNewServer* call.
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config config.Server
	DB     *sql.DB
	Clock  time2.Clock

	Store  *storage.PostgresStore
	Locker storage.SessionLocker
	JWT    *auth.JWTManager

	Auth         *auth.Service
	Orchestrator *orchestrator.Service
	Feedback     *feedback.Service
	Stats        *stats.Service
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be
// initialized separately. Components which shouldn't be handled must be
// labeled `wire:"-"` in the Server struct.
func newServerWithComponents(
	cfg config.Server,
	db *sql.DB,
	clock time2.Clock,
	store *storage.PostgresStore,
	locker storage.SessionLocker,
	jwt *auth.JWTManager,
	authService *auth.Service,
	orchestratorService *orchestrator.Service,
	feedbackService *feedback.Service,
	statsService *stats.Service,
) *Server {
	return &Server{
		Config:       cfg,
		DB:           db,
		Clock:        clock,
		Store:        store,
		Locker:       locker,
		JWT:          jwt,
		Auth:         authService,
		Orchestrator: orchestratorService,
		Feedback:     feedbackService,
		Stats:        statsService,
	}
}

func NewServer(config config.Server) *Server {
	return &Server{
		Config: config,
	}
}

func (s *Server) Ready() bool {
	return s.Echo != nil &&
		s.Router != nil &&
		s.DB != nil &&
		s.Clock != nil &&
		s.Store != nil &&
		s.Locker != nil &&
		s.JWT != nil &&
		s.Auth != nil &&
		s.Orchestrator != nil &&
		s.Feedback != nil &&
		s.Stats != nil
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	return s.Echo.Start(s.Config.Echo.ListenAddress)
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")
		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	if s.DB != nil {
		log.Debug().Msg("Closing database connection")
		if err := s.DB.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
			log.Error().Err(err).Msg("Failed to close database connection")
			errs = append(errs, err)
		}
	}

	return errs
}
