package main

import (
	"os"

	"github.com/intervia/go-interview-api/cmd/db"
	"github.com/intervia/go-interview-api/cmd/server"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	// Missing .env is fine; the environment wins anyway.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "interview-api",
		Short: "Simulated job-interview backend",
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.AddCommand(
		server.New(),
		db.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
