package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/intervia/go-interview-api/internal/config"
	"github.com/intervia/go-interview-api/internal/infra/storage"
	"github.com/intervia/go-interview-api/internal/interview/scenario"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	_ "github.com/lib/pq"
)

func newSeed() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install the default scenario set on an empty database",
		Run: func(_ *cobra.Command, _ []string) {
			cfg := config.DefaultServiceConfigFromEnv()

			conn, err := sql.Open("postgres", cfg.Database.ConnectionString())
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to open database")
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			store := storage.NewPostgresStore(conn)

			count, err := store.CountScenarios(ctx)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to count scenarios")
			}
			if count > 0 {
				log.Info().Int("count", count).Msg("Scenarios already present, skipping seed")
				return
			}

			for _, sc := range scenario.Seed(time.Now()) {
				if err := store.SaveScenario(ctx, sc); err != nil {
					log.Fatal().Err(err).Str("name", sc.Name).Msg("Failed to seed scenario")
				}
				log.Info().Str("name", sc.Name).Str("category", sc.Category).Msg("Scenario seeded")
			}

			log.Info().Msg("Seed complete")
		},
	}
}
