package config_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/intervia/go-interview-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintServiceEnv(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()
	_, err := json.MarshalIndent(cfg, "", "  ")

	if err != nil {
		t.Fatal(err)
	}
}

func TestDefaultsWithoutEnv(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()

	assert.Equal(t, ":8080", cfg.Echo.ListenAddress)
	assert.Equal(t, "interview_api", cfg.Database.Database)
	assert.Equal(t, 3*time.Second, cfg.AI.RequestTimeout)
	assert.Equal(t, "gemini-1.5-flash", cfg.AI.Model)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.False(t, cfg.Redis.Enabled)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ECHO_LISTEN_ADDRESS", ":9999")
	t.Setenv("AI_REQUEST_TIMEOUT", "5s")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("PGPORT", "5433")

	cfg := config.DefaultServiceConfigFromEnv()

	assert.Equal(t, ":9999", cfg.Echo.ListenAddress)
	assert.Equal(t, 5*time.Second, cfg.AI.RequestTimeout)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 5433, cfg.Database.Port)
}

func TestSensitiveFieldsHiddenFromJSON(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "super-secret")
	t.Setenv("PGPASSWORD", "db-password")
	t.Setenv("AI_API_KEY", "api-key")

	cfg := config.DefaultServiceConfigFromEnv()

	out, err := json.Marshal(cfg)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "super-secret")
	assert.NotContains(t, string(out), "db-password")
	assert.NotContains(t, string(out), "api-key")
}

func TestConnectionString(t *testing.T) {
	db := config.Database{
		Host:     "localhost",
		Port:     5432,
		Username: "postgres",
		Password: "pw",
		Database: "interview_api",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=localhost port=5432 user=postgres password=pw dbname=interview_api sslmode=disable", db.ConnectionString())
}
