package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/intervia/go-interview-api/internal/config"
	"github.com/intervia/go-interview-api/internal/infra/storage"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	_ "github.com/lib/pq"
)

func newMigrate() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema migrations",
		Run: func(_ *cobra.Command, _ []string) {
			cfg := config.DefaultServiceConfigFromEnv()

			conn, err := sql.Open("postgres", cfg.Database.ConnectionString())
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to open database")
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			if err := storage.Migrate(ctx, conn); err != nil {
				log.Fatal().Err(err).Msg("Failed to apply migrations")
			}

			log.Info().Msg("Migrations applied")
		},
	}
}
