package config

import (
	"fmt"
	"time"

	"github.com/intervia/go-interview-api/internal/util"
)

// Database holds the PostgreSQL connection settings.
type Database struct {
	Host     string
	Port     int
	Username string
	Password string `json:"-"` // sensitive
	Database string
	SSLMode  string
}

// ConnectionString renders the lib/pq DSN.
func (d Database) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.Username, d.Password, d.Database, d.SSLMode)
}

// EchoServer holds the HTTP listener settings.
type EchoServer struct {
	ListenAddress string
}

// Redis holds the cache/lock store settings. When disabled the server
// falls back to an in-process session locker and skips the cache.
type Redis struct {
	Enabled  bool
	Endpoint string
}

// Auth holds the JWT settings.
type Auth struct {
	Secret        string `json:"-"` // sensitive
	Issuer        string
	TokenDuration time.Duration
}

// AI holds the question-provider settings. RequestTimeout bounds each
// generation call; on expiry the orchestrator serves from the fallback
// catalog.
type AI struct {
	APIKey          string `json:"-"` // sensitive
	Model           string
	Endpoint        string
	RequestTimeout  time.Duration
	Temperature     float64
	MaxOutputTokens int
}

// Logger holds the zerolog settings.
type Logger struct {
	Level              string
	PrettyPrintConsole bool
}

// Server is the full service configuration, assembled from the
// environment once at startup.
type Server struct {
	Env      string
	Echo     EchoServer
	Database Database
	Redis    Redis
	Auth     Auth
	AI       AI
	Logger   Logger
}

// DefaultServiceConfigFromEnv reads the configuration from environment
// variables, applying development defaults.
func DefaultServiceConfigFromEnv() Server {
	return Server{
		Env: util.GetEnv("SERVER_ENV", "development"),
		Echo: EchoServer{
			ListenAddress: util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
		},
		Database: Database{
			Host:     util.GetEnv("PGHOST", "localhost"),
			Port:     util.GetEnvAsInt("PGPORT", 5432),
			Username: util.GetEnv("PGUSER", "postgres"),
			Password: util.GetEnv("PGPASSWORD", ""),
			Database: util.GetEnv("PGDATABASE", "interview_api"),
			SSLMode:  util.GetEnv("PGSSLMODE", "disable"),
		},
		Redis: Redis{
			Enabled:  util.GetEnvAsBool("REDIS_ENABLED", false),
			Endpoint: util.GetEnv("REDIS_ENDPOINT", "localhost:6379"),
		},
		Auth: Auth{
			Secret:        util.GetEnv("AUTH_JWT_SECRET", "dev-secret-key-change-in-production"),
			Issuer:        util.GetEnv("AUTH_JWT_ISSUER", "interview-api"),
			TokenDuration: util.GetEnvAsDuration("AUTH_JWT_TOKEN_DURATION", 24*time.Hour),
		},
		AI: AI{
			APIKey:          util.GetEnv("AI_API_KEY", ""),
			Model:           util.GetEnv("AI_MODEL", "gemini-1.5-flash"),
			Endpoint:        util.GetEnv("AI_ENDPOINT", ""),
			RequestTimeout:  util.GetEnvAsDuration("AI_REQUEST_TIMEOUT", 3*time.Second),
			Temperature:     util.GetEnvAsFloat("AI_TEMPERATURE", 0.7),
			MaxOutputTokens: util.GetEnvAsInt("AI_MAX_OUTPUT_TOKENS", 150),
		},
		Logger: Logger{
			Level:              util.GetEnv("LOGGER_LEVEL", "info"),
			PrettyPrintConsole: util.GetEnvAsBool("LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
	}
}
