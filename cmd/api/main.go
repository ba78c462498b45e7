package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/mcharewicz/oskplanner/internal/pkg/logger"
	"github.com/mcharewicz/oskplanner/internal/server"
)

// @title OSK Planner API
// @version 1.0
// @description Scheduling API for a driving school: lessons, calendar, groups and course progress

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Environment variables may come from a local .env file; a missing file
	// is fine in production where the environment is set by the platform.
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
